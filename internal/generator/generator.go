// Package generator assembles shortcut documents and writes them to disk
// with collision-resistant filenames.
package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/fsutil"
	"github.com/deploymenttheory/go-shortcut-composer/internal/shortcut"
)

// fallbackName replaces a display name that sanitizes to nothing
const fallbackName = "shortcut"

// maxNameLength caps the sanitized display name portion of a filename
const maxNameLength = 50

// Config controls where generated files land and the document metadata
// applied to every generation
type Config struct {
	OutputDir string
	Document  shortcut.DocumentConfig
}

// Result describes one successful generation
type Result struct {
	Path     string
	Size     int64
	Document *shortcut.Document
}

// Generator writes shortcut documents to storage
type Generator struct {
	cfg Config
}

// New creates a generator with the given configuration
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// BuildDocument assembles a document from the configured metadata and the
// given actions. Pure; no I/O.
func (g *Generator) BuildDocument(actions []*shortcut.Action) *shortcut.Document {
	return shortcut.NewDocument(g.cfg.Document, actions)
}

// Generate assembles, serializes and writes a shortcut document. The file
// is written only after serialization succeeds, so a failed generation
// never leaves a partial file behind.
func (g *Generator) Generate(actions []*shortcut.Action) (*Result, error) {
	if len(actions) == 0 {
		return nil, errors.ErrEmptyActions
	}

	doc := g.BuildDocument(actions)

	// Import questions address actions by position; a dangling index would
	// serialize cleanly but break the document at install time
	for i, q := range doc.ImportQuestions {
		if q.ActionIndex < 0 || q.ActionIndex >= len(doc.Actions) {
			return nil, fmt.Errorf("%w: import question %d references action index %d of %d actions",
				errors.ErrInvalidArgument, i, q.ActionIndex, len(doc.Actions))
		}
	}

	data, err := shortcut.Marshal(doc)
	if err != nil {
		return nil, err
	}

	if err := fsutil.CreateDirIfNotExists(g.cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errors.ErrDirectoryCreation, g.cfg.OutputDir, err.Error())
	}

	path := filepath.Join(g.cfg.OutputDir, buildFileName(doc.Name))
	if err := fsutil.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errors.ErrFileWriteError, path, err.Error())
	}

	return &Result{
		Path:     path,
		Size:     int64(len(data)),
		Document: doc,
	}, nil
}

// SanitizeName strips filesystem-hostile characters from a display name,
// replaces spaces with dashes, and truncates to a fixed length. An empty
// result falls back to a placeholder.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			// dropped
		case ' ':
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}

	sanitized := b.String()
	if runes := []rune(sanitized); len(runes) > maxNameLength {
		sanitized = string(runes[:maxNameLength])
	}
	if sanitized == "" {
		return fallbackName
	}
	return sanitized
}

// buildFileName appends a timestamp suffix so concurrent generations sharing
// a display name never collide
func buildFileName(name string) string {
	return fmt.Sprintf("%s-%d%s", SanitizeName(name), time.Now().UnixNano(), shortcut.FileExtension)
}
