package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/temme/pyinit/pkg/executor"
	"github.com/temme/pyinit/pkg/project"
	"github.com/urfave/cli/v3"
)

// newApp builds the root CLI command. pyinit has a single operation, so the
// workflow hangs off the root action rather than a subcommand.
func newApp(p Params) *cli.Command {
	// The built-in version flag aliases -v, which pyinit uses for verbose.
	cli.VersionFlag = &cli.BoolFlag{Name: "version"}

	return &cli.Command{
		Name:  "pyinit",
		Usage: "Create a new python project skeleton",
		Description: `pyinit creates the directory layout for a new python project: a templated
setup.py, an importable source package, a project-local virtual environment
(.venv), and, unless disabled, a git repository with an initial commit.`,
		ArgsUsage: "<project-name> [<target-dir>]",
		Version:   p.Version.Version,
		Writer:    p.Console.Stdout(),
		ErrWriter: p.Console.Stderr(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "the project description, will be added to setup.py in the final project",
			},
			&cli.StringFlag{
				Name:    "author",
				Aliases: []string{"a"},
				Usage:   "the project author, will be added to setup.py in the final project",
			},
			&cli.BoolFlag{
				Name:    "no-git",
				Aliases: []string{"n"},
				Usage:   "do not initialize a git repository",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable verbose output, shows all output of external commands as well",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			params, err := buildParams(cmd, p)
			if err != nil {
				return err
			}

			if err := project.New(params).Create(ctx); err != nil {
				p.Console.Errorf("Brutally failed to create python project: %s", params.Name)
				return err
			}

			return nil
		},
	}
}

// buildParams maps parsed CLI input onto a project request, applying
// user-config defaults where no flag was given. Flags always win.
func buildParams(cmd *cli.Command, p Params) (project.ProjectParams, error) {
	args := cmd.Args().Slice()
	if len(args) < 1 {
		printUsage(cmd, p)
		p.Console.Errorf("No project name specified")
		return project.ProjectParams{}, errors.New("no project name specified")
	}

	if len(args) > 2 {
		printUsage(cmd, p)
		p.Console.Errorf("unknown extra argument '%s'", args[2])
		return project.ProjectParams{}, errors.Errorf("unknown extra argument '%s'", args[2])
	}

	target := "."
	if len(args) == 2 {
		target = args[1]
	}

	author := cmd.String("author")

	var (
		python      string
		extraIgnore []string
	)
	if p.Config != nil {
		if author == "" {
			author = p.Config.Author
		}
		python = p.Config.Python
		extraIgnore = p.Config.Gitignore
	}

	runner := executor.New(executor.Config{
		Stdout:  p.Console.Stdout(),
		Stderr:  p.Console.Stderr(),
		Verbose: cmd.Bool("verbose"),
	})

	return project.ProjectParams{
		Name:             args[0],
		TargetDir:        target,
		Description:      escapeQuotes(cmd.String("description")),
		Author:           escapeQuotes(author),
		SkipGit:          cmd.Bool("no-git"),
		Python:           python,
		ExtraIgnoreRules: extraIgnore,
		Tools:            p.Tools,
		Runner:           runner,
		Console:          p.Console,
	}, nil
}

// printUsage writes the one-line usage header to the error stream. Emitted
// before the ERROR: message on argument errors; full help stays behind
// -h/--help.
func printUsage(cmd *cli.Command, p Params) {
	fmt.Fprintf(p.Console.Stderr(), "Usage: %s [OPTIONS...] %s\n", cmd.Name, cmd.ArgsUsage)
}

// escapeQuotes escapes double quotes so user-supplied values embed safely in
// the double-quoted fields of the generated setup.py.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
