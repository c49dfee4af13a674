// Package executor provides the external-process invocation wrapper used by
// the project workflow.
//
// All external tooling (git, python, pip) runs through a single Executor so
// the policy around working directories, output suppression, and error
// reporting lives in one place. Commands are expressed as argument vectors
// rather than shell strings, which removes any quoting or injection concerns
// from values that originate in user input.
//
// Output handling follows the CLI's verbose flag: by default child output is
// captured and only included in the returned error when the command fails;
// with verbose enabled it streams directly to the configured writers.
package executor
