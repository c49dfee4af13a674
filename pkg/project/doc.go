// Package project implements the project materialization workflow: given a
// validated request it produces a ready-to-use python project directory.
//
// # Workflow
//
// Creation runs three stages in order:
//
//  1. Path resolution and safety gate — the project path (target directory
//     joined with the project name) is resolved once. A missing directory is
//     created; an existing non-empty directory triggers an interactive
//     confirmation before its contents are recursively removed. Declining
//     the cleanup does not abort the workflow; materialization proceeds over
//     the existing content.
//  2. Materialization — writes the templated setup.py manifest, creates the
//     sanitized package directory with an empty __init__.py marker, and
//     provisions a .venv virtual environment by running the python
//     interpreter and the environment's pip. Any failure here is fatal.
//  3. Version control — optionally initializes a git repository, writes
//     .gitignore, and creates the initial commit. Git failures are
//     best-effort: a missing git or a failing invocation is reported but
//     never fails the workflow. Failing to write .gitignore is a file-write
//     failure and stays fatal.
//
// # Collaborators
//
// External concerns are injected through small interfaces: a Locator that
// resolves executables, a Runner that invokes them, and a Console for
// messages and prompt input. Tests exercise the full workflow with fakes and
// never spawn a process.
//
// # Usage
//
//	proj := project.New(project.ProjectParams{
//		Name:      "my-app",
//		TargetDir: ".",
//		Tools:     tools,
//		Runner:    executor.New(executor.Config{}),
//		Console:   console.New(os.Stdin, os.Stdout, os.Stderr),
//	})
//
//	if err := proj.Create(ctx); err != nil {
//		// directory creation, cleanup, file writes, or environment
//		// provisioning failed
//	}
package project
