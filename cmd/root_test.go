package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/hamkit/internal/buildinfo"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := RootCommand(buildinfo.NewContext("1.2.3", "2024-03-15"))

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"lookup", "band", "plan", "update", "serve", "version"} {
		assert.Contains(t, names, want)
	}

	for name := range flagBindings {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionSkipsInitialization(t *testing.T) {
	root := RootCommand(buildinfo.NewContext("1.2.3", "2024-03-15"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "hamkit 1.2.3 (built 2024-03-15)\n", out.String())
}
