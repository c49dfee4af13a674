package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/temme/pyinit/pkg/config"
	"github.com/temme/pyinit/pkg/console"
	"github.com/temme/pyinit/pkg/project"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
		Config     *config.Config
		Tools      project.Locator
		Console    *console.Console
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the pyinit CLI application with the given
// command-line arguments. The application is registered as an fx start hook;
// workflow failures and usage errors shut the process down with exit code 1,
// everything else with 0.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
