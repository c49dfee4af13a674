package toolchain

import (
	"context"
	"os/exec"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestForOS(t *testing.T) {
	tests := []struct {
		goos   string
		lookup string
	}{
		{goos: "linux", lookup: "which"},
		{goos: "darwin", lookup: "which"},
		{goos: "windows", lookup: "where"},
	}

	for _, test := range tests {
		t.Run(test.goos, func(t *testing.T) {
			tc, err := forOS(test.goos)
			require.NoError(t, err)
			require.Equal(t, test.lookup, tc.lookup)
		})
	}
}

func TestForOS_Unsupported(t *testing.T) {
	_, err := forOS("plan9")
	require.Error(t, err)
	require.Contains(t, err.Error(), "plan9")
}

func TestLocate_FirstLine(t *testing.T) {
	tc := &Toolchain{
		lookup: "where",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			require.Equal(t, "where", name)
			require.Equal(t, []string{"git"}, args)
			return "C:\\tools\\git.exe\r\nC:\\other\\git.exe\r\n", nil
		},
	}

	path, err := tc.Locate(context.Background(), "git")
	require.NoError(t, err)
	require.Equal(t, "C:\\tools\\git.exe", path)
}

func TestLocate_NotFound(t *testing.T) {
	tc := &Toolchain{
		lookup: "which",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", &exec.ExitError{}
		},
	}

	path, err := tc.Locate(context.Background(), "git")
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestLocate_EmptyOutput(t *testing.T) {
	tc := &Toolchain{
		lookup: "which",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			return "\n", nil
		},
	}

	path, err := tc.Locate(context.Background(), "git")
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestLocate_LookupFailure(t *testing.T) {
	tc := &Toolchain{
		lookup: "which",
		run: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", errors.New("fork failed")
		},
	}

	_, err := tc.Locate(context.Background(), "git")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to run which git")
}

func TestLocate_RealLookup(t *testing.T) {
	tc, err := New()
	require.NoError(t, err)

	// sh is present anywhere these tests run
	path, err := tc.Locate(context.Background(), "sh")
	require.NoError(t, err)
	require.NotEmpty(t, path)
}
