// Package history keeps a local JSON record of generated shortcuts
package history

import (
	"sync"
	"time"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/fsutil"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/jsonutil"
)

// Entry records one generated shortcut
type Entry struct {
	Template    string    `json:"template,omitempty"`
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Store reads and appends history entries in a single JSON file
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// List returns all recorded entries, oldest first. A missing file is an
// empty history, not an error.
func (s *Store) List() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Append adds an entry to the history file
func (s *Store) Append(entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	return jsonutil.WriteJSONFile(s.path, entries)
}

func (s *Store) read() ([]Entry, error) {
	if !fsutil.FileExists(s.path) {
		return []Entry{}, nil
	}
	var entries []Entry
	if err := jsonutil.ReadJSONFile(s.path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
