// Package toolchain locates the external executables (git, python) the
// workflow shells out to. The lookup command differs per OS family, so the
// strategy is selected once at startup; running on an unsupported OS is a
// configuration error surfaced immediately rather than on first use.
package toolchain

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var Module = fx.Module("toolchain", fx.Provide(New))

type (
	// Toolchain resolves executable names to paths using the platform's
	// lookup command (which on Linux/macOS, where on Windows).
	Toolchain struct {
		lookup string
		run    runFunc
	}

	runFunc func(ctx context.Context, name string, args ...string) (string, error)
)

// New creates a Toolchain for the OS the process is running on. Unsupported
// OS families return an error so startup fails before any workflow runs.
func New() (*Toolchain, error) {
	return forOS(runtime.GOOS)
}

func forOS(goos string) (*Toolchain, error) {
	var lookup string

	switch goos {
	case "windows":
		lookup = "where"
	case "linux", "darwin":
		lookup = "which"
	default:
		return nil, errors.Errorf("executable lookup not implemented for %s", goos)
	}

	return &Toolchain{lookup: lookup, run: getOutput}, nil
}

// Locate resolves name to an executable path. A tool that cannot be found is
// not an error; it returns an empty path and the caller decides whether the
// absence is fatal.
func (t *Toolchain) Locate(ctx context.Context, name string) (string, error) {
	out, err := t.run(ctx, t.lookup, name)
	if err != nil {
		// The lookup command exits non-zero when nothing matches.
		if _, ok := err.(*exec.ExitError); ok {
			return "", nil
		}

		return "", errors.Wrapf(err, "failed to run %s %s", t.lookup, name)
	}

	// where can report several matches, one per line. Use the first.
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}

	return "", nil
}

func getOutput(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}
