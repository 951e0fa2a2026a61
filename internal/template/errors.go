package template

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
)

// NotFoundError reports a lookup of an unregistered template name
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", errors.ErrTemplateNotFound.Error(), e.Name)
}

func (e *NotFoundError) Unwrap() error { return errors.ErrTemplateNotFound }

// MissingParameterError reports a required parameter with no default that
// the caller did not supply
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: %q", errors.ErrMissingParameter.Error(), e.Name)
}

func (e *MissingParameterError) Unwrap() error { return errors.ErrMissingParameter }

// InvalidTypeError reports a supplied value incompatible with the declared
// parameter type
type InvalidTypeError struct {
	Name     string
	Expected ParamType
	Got      ParamKind
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("%s: %q expects %s, got %s",
		errors.ErrInvalidParameterType.Error(), e.Name, e.Expected, e.Got)
}

func (e *InvalidTypeError) Unwrap() error { return errors.ErrInvalidParameterType }

// InvalidChoiceError reports a choice value outside the declared option set
type InvalidChoiceError struct {
	Name    string
	Value   string
	Options []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("%s: %q is %q, must be one of [%s]",
		errors.ErrInvalidChoiceValue.Error(), e.Name, e.Value, strings.Join(e.Options, ", "))
}

func (e *InvalidChoiceError) Unwrap() error { return errors.ErrInvalidChoiceValue }

// GenerationError wraps a failure raised inside a template's generator
// function
type GenerationError struct {
	Template string
	Reason   string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: template %q: %s",
		errors.ErrGenerationFailed.Error(), e.Template, e.Reason)
}

func (e *GenerationError) Unwrap() error { return errors.ErrGenerationFailed }

// isTemplateError reports whether err is already one of the recognized
// template error variants
func isTemplateError(err error) bool {
	sentinels := []error{
		errors.ErrTemplateNotFound,
		errors.ErrMissingParameter,
		errors.ErrInvalidParameterType,
		errors.ErrInvalidChoiceValue,
		errors.ErrGenerationFailed,
	}
	for _, sentinel := range sentinels {
		if stderrors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
