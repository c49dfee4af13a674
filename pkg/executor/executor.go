package executor

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type (
	// Command describes a single external invocation: the executable to run,
	// its argument vector, and the working directory to run it in. Arguments
	// are always passed as discrete tokens; no shell is involved.
	Command struct {
		// Dir is the working directory for the invocation. Empty means the
		// current process directory.
		Dir string

		// Name is the executable to run. Resolved against PATH unless it
		// contains a path separator.
		Name string

		// Args are the arguments passed to the executable.
		Args []string
	}

	// Config contains configuration options for creating a new Executor.
	Config struct {
		// Stdout receives child process stdout when Verbose is set
		Stdout io.Writer

		// Stderr receives child process stderr when Verbose is set
		Stderr io.Writer

		// Verbose streams child output instead of capturing it
		Verbose bool
	}

	// Executor runs external commands on behalf of the workflow. By default
	// child output is captured and only surfaced as part of the error when an
	// invocation fails; in verbose mode it streams to the configured writers.
	//
	// Each invocation blocks until the child exits. No timeout is applied and
	// every invocation is attempted exactly once.
	Executor struct {
		stdout  io.Writer
		stderr  io.Writer
		verbose bool
	}
)

// New creates a new Executor with the provided configuration.
func New(cfg Config) *Executor {
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Executor{
		stdout:  stdout,
		stderr:  stderr,
		verbose: cfg.Verbose,
	}
}

// Run executes the command and waits for it to exit. A non-zero exit status
// is returned as an error; in quiet mode the captured output is folded into
// the error message.
func (e *Executor) Run(ctx context.Context, command Command) error {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir

	if e.verbose {
		cmd.Stdout = e.stdout
		cmd.Stderr = e.stderr

		if err := cmd.Run(); err != nil {
			return errors.Wrapf(err, "command failed: %s", command.Name)
		}

		return nil
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		if out := strings.TrimSpace(buf.String()); out != "" {
			return errors.Wrapf(err, "command failed: %s: %s", command.Name, out)
		}

		return errors.Wrapf(err, "command failed: %s", command.Name)
	}

	return nil
}
