package host

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/fsutil"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/osutil"
	"github.com/deploymenttheory/go-shortcut-composer/internal/logger"
)

// DefaultGraceDelay is how long the importer waits after handing a file to
// the Shortcuts app before deleting a temporary copy. The app reads the file
// asynchronously, so deleting immediately would break the import.
const DefaultGraceDelay = 500 * time.Millisecond

// Importer hands generated files to the Shortcuts app for user-confirmed
// installation
type Importer struct {
	GraceDelay time.Duration
}

// NewImporter creates an importer with the default grace delay
func NewImporter() *Importer {
	return &Importer{GraceDelay: DefaultGraceDelay}
}

// ImportResult records the outcome of an import, including whether a
// requested cleanup actually removed the file
type ImportResult struct {
	Path    string
	Removed bool
}

// Import opens a shortcut file in the Shortcuts app. When deleteAfter is
// set, the file is removed after the grace delay; cleanup failure is
// recorded in the result and never surfaced as an error.
func (i *Importer) Import(ctx context.Context, path string, deleteAfter bool) (*ImportResult, error) {
	if !osutil.IsMacOS() {
		return nil, fmt.Errorf("%w: shortcut import is only available on macOS", errors.ErrOSNotSupported)
	}
	if !fsutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", errors.ErrFileNotFound, path)
	}

	cmd := exec.CommandContext(ctx, "open", "-a", "Shortcuts", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errors.ErrImportFailed, err.Error(), string(out))
	}

	result := &ImportResult{Path: path}
	if deleteAfter {
		time.Sleep(i.graceDelay())
		if err := fsutil.DeleteFile(path); err != nil {
			logger.LogWarn("Failed to clean up imported shortcut file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		} else {
			result.Removed = true
		}
	}
	return result, nil
}

func (i *Importer) graceDelay() time.Duration {
	if i.GraceDelay <= 0 {
		return DefaultGraceDelay
	}
	return i.GraceDelay
}
