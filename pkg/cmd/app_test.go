package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/temme/pyinit/pkg/config"
	"github.com/temme/pyinit/pkg/console"
	"github.com/temme/pyinit/pkg/executor"
	"github.com/temme/pyinit/pkg/project"
	"github.com/urfave/cli/v3"
)

type stubLocator struct{}

func (stubLocator) Locate(_ context.Context, _ string) (string, error) {
	return "", nil
}

type testParams struct {
	params Params
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestParams(cfg *config.Config) *testParams {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)

	return &testParams{
		params: Params{
			Version: &Version{Version: "test"},
			Config:  cfg,
			Tools:   stubLocator{},
			Console: console.New(strings.NewReader(""), out, errOut),
		},
		out:    out,
		errOut: errOut,
	}
}

// runBuildParams parses args through the real app definition and captures
// what buildParams produces, without running the workflow.
func runBuildParams(t *testing.T, tp *testParams, args ...string) (project.ProjectParams, error) {
	t.Helper()

	var (
		got      project.ProjectParams
		buildErr error
	)

	app := newApp(tp.params)
	app.Action = func(ctx context.Context, cmd *cli.Command) error {
		got, buildErr = buildParams(cmd, tp.params)
		return nil
	}

	err := app.Run(context.Background(), append([]string{"pyinit"}, args...))
	require.NoError(t, err)

	return got, buildErr
}

func TestBuildParams_MissingName(t *testing.T) {
	tp := newTestParams(nil)

	_, err := runBuildParams(t, tp)
	require.Error(t, err)
	require.Contains(t, tp.errOut.String(), "Usage: pyinit [OPTIONS...] <project-name> [<target-dir>]")
	require.Contains(t, tp.errOut.String(), "ERROR: No project name specified")
}

func TestBuildParams_ExtraPositional(t *testing.T) {
	tp := newTestParams(nil)

	_, err := runBuildParams(t, tp, "demo", "target", "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown extra argument 'bogus'")
	require.Contains(t, tp.errOut.String(), "Usage: pyinit")
	require.Contains(t, tp.errOut.String(), "ERROR: unknown extra argument 'bogus'")
}

func TestBuildParams_Defaults(t *testing.T) {
	tp := newTestParams(nil)

	params, err := runBuildParams(t, tp, "demo")
	require.NoError(t, err)
	require.Equal(t, "demo", params.Name)
	require.Equal(t, ".", params.TargetDir)
	require.Empty(t, params.Description)
	require.Empty(t, params.Author)
	require.False(t, params.SkipGit)
	require.IsType(t, &executor.Executor{}, params.Runner)
}

func TestBuildParams_AllFlags(t *testing.T) {
	tp := newTestParams(nil)

	params, err := runBuildParams(t, tp,
		"-d", `say "hi"`,
		"-a", `the "author"`,
		"-n",
		"--verbose",
		"demo", "projects",
	)
	require.NoError(t, err)
	require.Equal(t, "demo", params.Name)
	require.Equal(t, "projects", params.TargetDir)
	require.Equal(t, `say \"hi\"`, params.Description)
	require.Equal(t, `the \"author\"`, params.Author)
	require.True(t, params.SkipGit)
}

func TestBuildParams_ConfigDefaults(t *testing.T) {
	tp := newTestParams(&config.Config{
		Author:    "temme",
		Python:    "/opt/python/bin/python3",
		Gitignore: []string{"*.log"},
	})

	params, err := runBuildParams(t, tp, "demo")
	require.NoError(t, err)
	require.Equal(t, "temme", params.Author)
	require.Equal(t, "/opt/python/bin/python3", params.Python)
	require.Equal(t, []string{"*.log"}, params.ExtraIgnoreRules)
}

func TestBuildParams_FlagWinsOverConfig(t *testing.T) {
	tp := newTestParams(&config.Config{Author: "temme"})

	params, err := runBuildParams(t, tp, "-a", "someone else", "demo")
	require.NoError(t, err)
	require.Equal(t, "someone else", params.Author)
}

func TestApp_Help(t *testing.T) {
	tp := newTestParams(nil)

	app := newApp(tp.params)
	err := app.Run(context.Background(), []string{"pyinit", "--help"})
	require.NoError(t, err)

	require.Contains(t, tp.out.String(), "pyinit")
	require.Contains(t, tp.out.String(), "--description")
	require.Contains(t, tp.out.String(), "--no-git")
}

func TestEscapeQuotes(t *testing.T) {
	require.Equal(t, `say \"hi\"`, escapeQuotes(`say "hi"`))
	require.Equal(t, "plain", escapeQuotes("plain"))
	require.Empty(t, escapeQuotes(""))
}
