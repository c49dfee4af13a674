package project

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"text/template"

	"github.com/pkg/errors"
	"github.com/temme/pyinit/pkg/consts"
	"github.com/temme/pyinit/pkg/executor"
)

var (
	//go:embed embed/setup.py.tmpl
	setupTemplateText string

	setupTemplate = template.Must(template.New(consts.SetupFile).Parse(setupTemplateText))

	nonWordRuns = regexp.MustCompile(`[^A-Za-z0-9_]+`)
)

// PackageName derives the python package directory name from a project name
// by collapsing every run of characters outside [A-Za-z0-9_] into a single
// underscore.
func PackageName(name string) string {
	return nonWordRuns.ReplaceAllString(name, "_")
}

// materialize writes the project files and provisions the local virtual
// environment. Any failure here is fatal to the workflow.
func (p *Project) materialize(ctx context.Context) error {
	p.console.Infof("Creating setup.py...")
	if err := p.writeSetupFile(); err != nil {
		return err
	}

	p.console.Infof("Creating python source directory...")
	if err := p.writePackageDir(); err != nil {
		return err
	}

	p.console.Infof("Installing local environment...")
	return p.installEnvironment(ctx)
}

func (p *Project) writeSetupFile() error {
	path := filepath.Join(p.path, consts.SetupFile)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer func() { _ = f.Close() }()

	data := struct{ Name, Description, Author string }{
		Name:        p.name,
		Description: p.description,
		Author:      p.author,
	}

	if err := setupTemplate.Execute(f, data); err != nil {
		return errors.Wrapf(err, "failed to render %s", path)
	}

	return nil
}

func (p *Project) writePackageDir() error {
	dir := filepath.Join(p.path, PackageName(p.name))
	if err := os.MkdirAll(dir, consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	marker := filepath.Join(dir, consts.PackageMarkerFile)
	if err := os.WriteFile(marker, nil, consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write %s", marker)
	}

	return nil
}

// installEnvironment creates the .venv virtual environment and installs the
// project into it in editable mode. The pip invocation only runs when the
// venv creation succeeds; both run with the project path as working
// directory. A missing interpreter or a non-zero exit aborts the workflow.
func (p *Project) installEnvironment(ctx context.Context) error {
	python, err := p.resolvePython(ctx)
	if err != nil {
		return err
	}

	venv := executor.Command{
		Dir:  p.path,
		Name: python,
		Args: []string{"-m", "venv", consts.VenvDir},
	}
	if err := p.runner.Run(ctx, venv); err != nil {
		return errors.Wrap(err, "could not install local environment")
	}

	pip := executor.Command{
		Dir:  p.path,
		Name: p.venvPip(),
		Args: []string{"install", "-e", "."},
	}
	if err := p.runner.Run(ctx, pip); err != nil {
		return errors.Wrap(err, "could not install local environment")
	}

	return nil
}

// resolvePython picks the interpreter used to create the environment: the
// configured override when set, otherwise python3 then python from PATH.
func (p *Project) resolvePython(ctx context.Context) (string, error) {
	if p.python != "" {
		return p.python, nil
	}

	for _, candidate := range []string{"python3", "python"} {
		path, err := p.tools.Locate(ctx, candidate)
		if err != nil {
			return "", err
		}

		if path != "" {
			return path, nil
		}
	}

	return "", errors.New("no usable python interpreter found")
}

// venvPip returns the pip executable path relative to the project directory.
// The invocation runs with Dir set to the project path and exec resolves a
// relative path containing a separator against Dir, so this stays correct
// whether the project path itself is absolute or relative.
func (p *Project) venvPip() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(consts.VenvDir, "Scripts", "pip.exe")
	}

	return filepath.Join(consts.VenvDir, "bin", "pip")
}
