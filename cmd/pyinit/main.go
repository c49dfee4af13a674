package main

import (
	"context"
	"os"

	"github.com/temme/pyinit/pkg/cmd"
	"github.com/temme/pyinit/pkg/config"
	"github.com/temme/pyinit/pkg/console"
	"github.com/temme/pyinit/pkg/toolchain"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			func() context.Context { return context.Background() },
			func() []string { return os.Args },
			func() *cmd.Version {
				return &cmd.Version{Version: version, Commit: commit, Timestamp: date}
			},
		),
		config.Module,
		console.Module,
		toolchain.Module,
		cmd.Module,
	).Run()
}
