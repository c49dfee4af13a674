// Package console renders user-facing messages and reads interactive input.
// It keeps all I/O behind injected readers/writers so the workflow packages
// stay testable without a real terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("console", fx.Provide(
	func() *Console {
		return New(os.Stdin, os.Stdout, os.Stderr)
	},
))

// Console writes informational and error messages in the tool's
// "INFO: ..."/"ERROR: ..." format and reads line-oriented input for
// interactive prompts.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	err io.Writer
}

// New creates a Console over the given input and output streams.
func New(in io.Reader, out, errW io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
		err: errW,
	}
}

// Infof writes an informational message to the output stream.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.out, "INFO: "+format+"\n", args...)
}

// Errorf writes an error message to the error stream.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintf(c.err, "ERROR: "+format+"\n", args...)
}

// Promptf writes a prompt line (no prefix) to the output stream.
func (c *Console) Promptf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// ReadLine reads the next input line with surrounding whitespace removed.
// Returns io.EOF when the input stream is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(c.in.Text()), nil
}

// Stdout returns the writer used for informational output. External commands
// running in verbose mode attach to it directly.
func (c *Console) Stdout() io.Writer { return c.out }

// Stderr returns the writer used for error output.
func (c *Console) Stderr() io.Writer { return c.err }
