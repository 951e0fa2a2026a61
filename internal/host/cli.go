// Package host wraps the macOS Shortcuts app integrations: the `shortcuts`
// command line tool, signing, and file hand-off for installation.
package host

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/deploymenttheory/go-shortcut-composer/internal/common/errors"
	"github.com/deploymenttheory/go-shortcut-composer/internal/common/osutil"
)

// shortcutsBinary is the macOS command line entry point for the Shortcuts app
const shortcutsBinary = "shortcuts"

// CLI wraps shortcut discovery and execution through the `shortcuts` binary
type CLI struct{}

// NewCLI creates a Shortcuts command line wrapper
func NewCLI() *CLI {
	return &CLI{}
}

// List returns the names of the shortcuts installed on this machine
func (c *CLI) List(ctx context.Context) ([]string, error) {
	if !osutil.IsMacOS() {
		return nil, fmt.Errorf("%w: shortcuts CLI is only available on macOS", errors.ErrOSNotSupported)
	}

	out, err := exec.CommandContext(ctx, shortcutsBinary, "list").Output()
	if err != nil {
		return nil, fmt.Errorf("%w: list: %s", errors.ErrHostCommandFailed, err.Error())
	}

	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Run executes an installed shortcut by name, optionally feeding it input
// text on stdin, and returns its output
func (c *CLI) Run(ctx context.Context, name, input string) (string, error) {
	if !osutil.IsMacOS() {
		return "", fmt.Errorf("%w: shortcuts CLI is only available on macOS", errors.ErrOSNotSupported)
	}

	cmd := exec.CommandContext(ctx, shortcutsBinary, "run", name)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: run %q: %s", errors.ErrHostCommandFailed, name, err.Error())
	}
	return string(out), nil
}
