package errors

import (
	"errors"
)

var (
	// General Errors
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnsupportedValue = errors.New("unsupported parameter value")
	ErrOSNotSupported   = errors.New("operating system not supported")

	// Template Errors
	ErrTemplateNotFound     = errors.New("template not found")
	ErrMissingParameter     = errors.New("missing required parameter")
	ErrInvalidParameterType = errors.New("invalid parameter type")
	ErrInvalidChoiceValue   = errors.New("invalid choice value")
	ErrGenerationFailed     = errors.New("template generation failed")

	// Document Generation Errors
	ErrEmptyActions      = errors.New("shortcut must contain at least one action")
	ErrEncodingFailed    = errors.New("failed to encode shortcut document")
	ErrDecodingFailed    = errors.New("failed to decode shortcut document")
	ErrDirectoryCreation = errors.New("failed to create output directory")

	// File Errors
	ErrFileNotFound    = errors.New("file not found")
	ErrFileReadError   = errors.New("error reading file")
	ErrFileWriteError  = errors.New("error writing to file")
	ErrFileDeleteError = errors.New("error deleting file")

	// Host Integration Errors
	ErrHostCommandFailed = errors.New("shortcuts command failed")
	ErrSigningFailed     = errors.New("shortcut signing failed")
	ErrImportFailed      = errors.New("shortcut import failed")
)
