package project

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestSetupManifestGolden(t *testing.T) {
	data := struct{ Name, Description, Author string }{
		Name:        "demo",
		Description: "A demo project",
		Author:      "temme",
	}

	var buf bytes.Buffer
	require.NoError(t, setupTemplate.Execute(&buf, data))

	golden.Assert(t, buf.String(), "setup.py.golden")
}
