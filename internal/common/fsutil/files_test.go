package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	cerrors "github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
)

func TestDeleteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "victim.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	if err := DeleteFile(path); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if FileExists(path) {
		t.Errorf("file still exists after delete")
	}

	// Deleting a missing file is not an error
	if err := DeleteFile(path); err != nil {
		t.Errorf("delete of missing file returned %v", err)
	}
}

func TestDeleteFileWrapsRemovalFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "occupied")
	if err := os.MkdirAll(filepath.Join(dir, "child"), 0755); err != nil {
		t.Fatalf("creating test directory: %v", err)
	}

	// Removing a non-empty directory fails; the error must carry the sentinel
	err := DeleteFile(dir)
	if !errors.Is(err, cerrors.ErrFileDeleteError) {
		t.Errorf("expected ErrFileDeleteError, got %v", err)
	}
}
