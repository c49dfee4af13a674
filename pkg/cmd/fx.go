package cmd

import (
	"github.com/temme/pyinit/pkg/project"
	"github.com/temme/pyinit/pkg/toolchain"
	"go.uber.org/fx"
)

var Module = fx.Module("cli",
	fx.Provide(
		func(t *toolchain.Toolchain) project.Locator { return t },
	),
	fx.Invoke(Run),
)
