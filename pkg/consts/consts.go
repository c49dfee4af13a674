package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// SetupFile is the name of the generated project manifest
	SetupFile = "setup.py"

	// PackageMarkerFile marks the generated source directory as an importable package
	PackageMarkerFile = "__init__.py"

	// VenvDir is the directory name of the project-local virtual environment
	VenvDir = ".venv"

	// GitignoreFile is the name of the generated ignore-rules file
	GitignoreFile = ".gitignore"

	// InitialCommitMessage is the message used for the first commit in a new repository
	InitialCommitMessage = "initial commit"
)
