package config

import (
	"os"

	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the user config file if it exists. Returns a
	// nil config when there is none (or no config directory can be
	// determined), so the tool works with zero configuration.
	func() (*Config, error) {
		path, err := DefaultPath()
		if err != nil {
			return nil, nil
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(path)
	},
))
