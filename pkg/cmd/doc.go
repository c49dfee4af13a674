// Package cmd provides the CLI front end for the pyinit tool.
//
// The package implements a single-purpose command line: the root action
// validates positional arguments and flags, merges in user-config defaults,
// and hands a fully validated request to the project workflow. It owns the
// CLI error taxonomy: usage errors and fatal workflow errors exit 1, while
// best-effort version-control failures are reported without changing the
// exit code.
//
// # CLI Surface
//
//	pyinit [OPTIONS...] <project-name> [<target-dir>]
//
// Flags:
//   - -d, --description: project description, embedded in setup.py
//   - -a, --author: project author, embedded in setup.py
//   - -n, --no-git: skip the version-control stage
//   - -v, --verbose: stream output of external commands
//
// The application is wired through fx: Module provides the executable
// locator binding and registers Run as the start hook, and exit codes are
// delivered through fx.Shutdowner.
package cmd
