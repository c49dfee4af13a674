package project

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/temme/pyinit/pkg/consts"
)

// ensureDirectory makes sure the project path exists as a directory and
// handles pre-existing content. A missing path is created along with any
// missing ancestors. A non-empty existing directory triggers the interactive
// confirmation gate: an affirmative answer empties the directory, a negative
// answer leaves it untouched and the workflow continues over the existing
// content.
func (p *Project) ensureDirectory() error {
	info, err := os.Stat(p.path)
	if os.IsNotExist(err) {
		return errors.Wrapf(os.MkdirAll(p.path, consts.ModeDir), "failed to create directory %s", p.path)
	}

	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", p.path)
	}

	if !info.IsDir() {
		return errors.Errorf("%s exists and is not a directory", p.path)
	}

	entries, err := os.ReadDir(p.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read directory %s", p.path)
	}

	if len(entries) == 0 {
		return nil
	}

	p.console.Infof("Directory %s already exists and is not empty", p.path)

	ok, err := p.confirm("Clean directory and continue?")
	if err != nil {
		return err
	}

	if !ok {
		// User declined the recursive delete; materialization still proceeds
		// over whatever is in the directory.
		return nil
	}

	return p.cleanDir()
}

// confirm prompts until one of the literal responses y, Y, n, or N is read.
// Any other input is reported and the prompt repeats.
func (p *Project) confirm(prompt string) (bool, error) {
	for {
		p.console.Promptf("%s y/N", prompt)

		line, err := p.console.ReadLine()
		if err != nil {
			return false, errors.Wrap(err, "failed to read confirmation input")
		}

		switch line {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		default:
			p.console.Errorf("Invalid input '%s', please provide y/n", line)
		}
	}
}

// cleanDir removes every entry under the project path. The directory itself
// is never removed. Any removal failure aborts the workflow.
func (p *Project) cleanDir() error {
	entries, err := os.ReadDir(p.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read directory %s", p.path)
	}

	for _, entry := range entries {
		name := filepath.Join(p.path, entry.Name())
		if err := os.RemoveAll(name); err != nil {
			return errors.Wrapf(err, "failed to remove %s", name)
		}
	}

	return nil
}
