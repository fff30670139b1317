package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setManifestFlags(t *testing.T, withMetadata, listFiles bool) {
	t.Helper()
	manifestWithMetadata, manifestListFiles = withMetadata, listFiles
	t.Cleanup(func() { manifestWithMetadata, manifestListFiles = false, false })
}

func TestRunManifest(t *testing.T) {
	src := writeCourse(t, map[string]string{"index.html": "x", "img/logo.png": "png"})
	setManifestFlags(t, false, false)

	cmd, out := newTestCommand(t, false)
	setFlags(t, cmd, "title", "Intro", "identifier", "intro1", "scorm-version", "1.2")

	require.NoError(t, runManifest(cmd, []string{src}))

	manifest := out.String()
	assert.True(t, strings.HasPrefix(manifest, "<?xml"), manifest)
	assert.Contains(t, manifest, "<schemaversion>1.2</schemaversion>")
	assert.Contains(t, manifest, `href="img/logo.png"`)
	assert.NotContains(t, manifest, "---")
}

func TestRunManifest_WithMetadata(t *testing.T) {
	src := writeCourse(t, map[string]string{"index.html": "x"})
	setManifestFlags(t, true, false)

	cmd, out := newTestCommand(t, false)
	setFlags(t, cmd, "title", "Intro", "identifier", "intro1", "scorm-version", "2004.4")

	require.NoError(t, runManifest(cmd, []string{src}))

	parts := strings.SplitN(out.String(), "\n---\n", 2)
	require.Len(t, parts, 2, "manifest and metadata separated")
	assert.Contains(t, parts[0], "<schemaversion>2004 4th Edition</schemaversion>")
	assert.Contains(t, parts[1], "<lom")
}

func TestRunManifest_Files(t *testing.T) {
	src := writeCourse(t, map[string]string{
		"index.html":        "x",
		"img/logo.png":      "png",
		"drafts/notes.html": "wip",
	})
	setManifestFlags(t, false, true)

	cmd, out := newTestCommand(t, false)
	setFlags(t, cmd,
		"title", "Intro",
		"identifier", "intro1",
		"scorm-version", "2004.3",
		"exclude", "drafts/**",
	)

	require.NoError(t, runManifest(cmd, []string{src}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.ElementsMatch(t, []string{"index.html", "img/logo.png"}, lines)
}
