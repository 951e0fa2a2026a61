package host

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/fsutil"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/osutil"
)

// SignMode selects who can receive a signed shortcut
type SignMode string

const (
	SignModeAnyone          SignMode = "anyone"
	SignModePeopleWhoKnowMe SignMode = "people-who-know-me"
)

// Signer signs generated shortcut files through `shortcuts sign`. Unsigned
// files cannot be shared between machines.
type Signer struct {
	Mode SignMode
}

// NewSigner creates a signer with the given mode; an empty mode signs for anyone
func NewSigner(mode SignMode) *Signer {
	if mode == "" {
		mode = SignModeAnyone
	}
	return &Signer{Mode: mode}
}

// Sign produces a signed copy of a shortcut file at outputPath
func (s *Signer) Sign(ctx context.Context, inputPath, outputPath string) error {
	if !osutil.IsMacOS() {
		return fmt.Errorf("%w: shortcut signing is only available on macOS", errors.ErrOSNotSupported)
	}
	if !fsutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", errors.ErrFileNotFound, inputPath)
	}

	cmd := exec.CommandContext(ctx, shortcutsBinary, "sign",
		"--mode", string(s.Mode),
		"--input", inputPath,
		"--output", outputPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s: %s", errors.ErrSigningFailed, err.Error(), string(out))
	}
	return nil
}
