package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// newTestCommand returns a command carrying fresh config flags, so Changed
// state never leaks between tests. Registering resets buildFlags to defaults.
func newTestCommand(t *testing.T, buildOnly bool) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().BoolP("verbose", "v", false, "")
	registerConfigFlags(cmd.Flags())
	if buildOnly {
		registerBuildOnlyFlags(cmd.Flags())
	}

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, &out
}

func setFlags(t *testing.T, cmd *cobra.Command, kv ...string) {
	t.Helper()
	require.Zero(t, len(kv)%2, "flag/value pairs")
	for i := 0; i < len(kv); i += 2 {
		require.NoError(t, cmd.Flags().Set(kv[i], kv[i+1]), kv[i])
	}
}

// writeCourse creates a small content root and returns its path.
func writeCourse(t *testing.T, files map[string]string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "course")
	for name, content := range files {
		p := filepath.Join(src, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return src
}
