package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents optional per-user defaults for project creation. All
// fields may be empty; command-line flags always take precedence over values
// loaded from the config file.
type Config struct {
	// Author is the default project author when -a/--author is not given
	Author string `yaml:"author,omitempty"`

	// Python overrides the interpreter used to create virtual environments.
	// When empty the interpreter is resolved from PATH (python3, then python).
	Python string `yaml:"python,omitempty"`

	// Gitignore lists extra ignore rules appended to the generated .gitignore
	Gitignore []string `yaml:"gitignore,omitempty"`
}

// LoadConfig parses a user configuration from the provided io.Reader. The
// expected format is YAML; unknown keys are ignored.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader("author: temme\n"))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a user configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// DefaultPath returns the per-user config file location,
// <user config dir>/pyinit/pyinit.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}

	return filepath.Join(dir, "pyinit", "pyinit.yaml"), nil
}
