package project

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/temme/pyinit/pkg/consts"
	"github.com/temme/pyinit/pkg/executor"
)

//go:embed embed/gitignore
var gitignoreText string

// GitStatus is the terminal state of the version-control stage. Statuses
// describing a skipped or failed git invocation never fail the parent
// workflow; GitIgnoreFailed is the exception, a filesystem write failure that
// aborts it.
type GitStatus string

const (
	// GitToolUnavailable indicates no git executable could be located
	GitToolUnavailable GitStatus = "tool_unavailable"

	// GitRepoInitFailed indicates git init exited non-zero
	GitRepoInitFailed GitStatus = "repo_init_failed"

	// GitIgnoreFailed indicates the .gitignore file could not be written.
	// Unlike the git invocation failures this one is fatal to the workflow.
	GitIgnoreFailed GitStatus = "ignore_failed"

	// GitCommitFailed indicates staging or committing exited non-zero
	GitCommitFailed GitStatus = "commit_failed"

	// GitCommitted indicates the repository was initialized and the initial
	// commit was created
	GitCommitted GitStatus = "committed"
)

// initGit initializes a git repository at the project path, writes the
// ignore-rules file, and creates the initial commit. Git failures are
// best-effort: a missing tool or a failing invocation is reported and the
// stage stops, but the workflow still succeeds. A failure writing .gitignore
// is a file-write failure like any other and returns an error that aborts
// the workflow.
func (p *Project) initGit(ctx context.Context) (GitStatus, error) {
	git, err := p.tools.Locate(ctx, "git")
	if err != nil || git == "" {
		p.console.Infof("No usable git found, skipping...")
		return GitToolUnavailable, nil
	}

	p.console.Infof("Initializing git repository...")
	init := executor.Command{Dir: p.path, Name: git, Args: []string{"init", "."}}
	if err := p.runner.Run(ctx, init); err != nil {
		p.console.Errorf("Failed to initialize git repo at: %s: %v", p.path, err)
		return GitRepoInitFailed, nil
	}

	p.console.Infof("Writing .gitignore...")
	if err := p.writeGitignore(); err != nil {
		return GitIgnoreFailed, err
	}

	p.console.Infof("Adding files and making an initial commit with message:\n    %s", consts.InitialCommitMessage)

	add := executor.Command{Dir: p.path, Name: git, Args: []string{"add", "."}}
	if err := p.runner.Run(ctx, add); err != nil {
		p.console.Errorf("Failed to perform initial commit: %v", err)
		return GitCommitFailed, nil
	}

	commit := executor.Command{Dir: p.path, Name: git, Args: []string{"commit", "-m", consts.InitialCommitMessage}}
	if err := p.runner.Run(ctx, commit); err != nil {
		p.console.Errorf("Failed to perform initial commit: %v", err)
		return GitCommitFailed, nil
	}

	return GitCommitted, nil
}

func (p *Project) writeGitignore() error {
	content := gitignoreText
	if len(p.extraIgnore) > 0 {
		content += "\n# User rules\n" + strings.Join(p.extraIgnore, "\n") + "\n"
	}

	path := filepath.Join(p.path, consts.GitignoreFile)
	if err := os.WriteFile(path, []byte(content), consts.ModeFile); err != nil {
		return errors.Wrapf(err, "failed to write file %s", path)
	}

	return nil
}
