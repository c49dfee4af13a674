package project

import (
	"context"
	"path/filepath"

	"github.com/temme/pyinit/pkg/console"
	"github.com/temme/pyinit/pkg/executor"
)

type (
	// Locator resolves tool names to executable paths. An empty path with a
	// nil error means the tool is not installed.
	Locator interface {
		Locate(ctx context.Context, name string) (string, error)
	}

	// Runner executes external commands. Satisfied by *executor.Executor.
	Runner interface {
		Run(ctx context.Context, cmd executor.Command) error
	}

	// ProjectParams contains everything needed to create a project: the
	// request fields validated by the CLI plus the workflow's collaborators.
	ProjectParams struct {
		// Name is the project name, also used as the directory name. Never empty.
		Name string

		// TargetDir is the directory the project is created under. Defaults
		// to the current directory when empty.
		TargetDir string

		// Description is embedded in setup.py. The caller escapes embedded
		// double quotes before this point.
		Description string

		// Author is embedded in setup.py, escaped like Description.
		Author string

		// SkipGit disables the version-control stage entirely.
		SkipGit bool

		// Python overrides interpreter resolution when set.
		Python string

		// ExtraIgnoreRules are appended to the generated .gitignore.
		ExtraIgnoreRules []string

		// Tools resolves external executables.
		Tools Locator

		// Runner executes external commands.
		Runner Runner

		// Console renders messages and reads prompt input.
		Console *console.Console
	}

	// Project materializes a single new python project. All stages operate on
	// the path resolved at construction time; it is never recomputed.
	Project struct {
		name        string
		path        string
		description string
		author      string
		skipGit     bool
		python      string
		extraIgnore []string
		tools       Locator
		runner      Runner
		console     *console.Console
	}
)

// New creates a Project from the given parameters. The project path is the
// target directory joined with the project name.
func New(p ProjectParams) *Project {
	target := p.TargetDir
	if target == "" {
		target = "."
	}

	return &Project{
		name:        p.Name,
		path:        filepath.Join(target, p.Name),
		description: p.Description,
		author:      p.Author,
		skipGit:     p.SkipGit,
		python:      p.Python,
		extraIgnore: p.ExtraIgnoreRules,
		tools:       p.Tools,
		runner:      p.Runner,
		console:     p.Console,
	}
}

// Path returns the resolved project path.
func (p *Project) Path() string {
	return p.path
}

// Create runs the full workflow: resolve and prepare the project directory,
// materialize the project files and virtual environment, then initialize a
// git repository unless disabled. Gate, materialization, and file-write
// failures abort the workflow; failing git invocations are best-effort and
// never fail the result.
func (p *Project) Create(ctx context.Context) error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	p.console.Infof("Creating project: %s", p.path)

	if err := p.materialize(ctx); err != nil {
		return err
	}

	if !p.skipGit {
		if _, err := p.initGit(ctx); err != nil {
			return err
		}
	}

	p.console.Infof("Project %s is now created!", p.name)
	return nil
}
