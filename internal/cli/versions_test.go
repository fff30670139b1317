package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersions_Plain(t *testing.T) {
	versionsPlain = true
	t.Cleanup(func() { versionsPlain = false })

	var out strings.Builder
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, runVersions(cmd, nil))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"1.2", "1.2", "1.2", "4"}, strings.Split(lines[0], "\t"))
	assert.Equal(t, "2004.4\t2004 4th Edition\t2004.4, 2004 4th Edition, scorm20044thedition\t7", lines[2])
}

func TestVersionString(t *testing.T) {
	assert.True(t, strings.HasPrefix(versionString(), "scormpack dev (unknown, unknown) "), versionString())
}
