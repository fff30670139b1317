package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"SCORMPACK_TITLE":              "Intro",
		"SCORMPACK_SCORM_VERSION":      "2004.3",
		"SCORMPACK_MASTERY_SCORE":      "0",
		"SCORMPACK_CREATE_ZIP_ARCHIVE": "false",
		"SCORMPACK_SIMPLIFIED":         "true",
		"SCORMPACK_EXCLUDE":            "*.psd, drafts/** ,",
		"SCORMPACK_CATALOG":            "Courses",
		"SCORMPACK_ORGANIZATION":       "",
	}

	cfg := scormpack.PackageConfig{Identifier: "kept", Organization: "kept"}
	require.NoError(t, ApplyEnv(&cfg, env))

	assert.Equal(t, "Intro", cfg.Title)
	assert.Equal(t, "kept", cfg.Identifier)
	assert.Equal(t, "kept", cfg.Organization, "empty values are ignored")
	assert.Equal(t, "2004.3", cfg.Version)
	assert.False(t, cfg.ShouldZip())
	assert.True(t, cfg.Simplified)
	assert.Equal(t, []string{"*.psd", "drafts/**"}, cfg.Exclude)
	assert.Equal(t, "Courses", cfg.Metadata.CatalogValue)

	cfg.ApplyDefaults(scormpack.SystemClock{})
	assert.Equal(t, 0, cfg.MasteryScore)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mastery score", map[string]string{"SCORMPACK_MASTERY_SCORE": "high"}},
		{"bool", map[string]string{"SCORMPACK_FORCE": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := scormpack.PackageConfig{}
			err := ApplyEnv(&cfg, tt.env)
			assert.ErrorIs(t, err, scormpack.ErrInvalidConfig)
		})
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SCORMPACK_TITLE", "From process")
	t.Setenv("SCORMPACK_IDENTIFIER", "proc")
	t.Setenv("UNRELATED_VAR", "x")

	file := filepath.Join(t.TempDir(), "build.env")
	require.NoError(t, os.WriteFile(file, []byte("SCORMPACK_IDENTIFIER=from-file\nOTHER=1\n"), 0644))

	env, err := Environment([]string{file})
	require.NoError(t, err)

	assert.Equal(t, "From process", env["SCORMPACK_TITLE"])
	assert.Equal(t, "from-file", env["SCORMPACK_IDENTIFIER"], "env files override the process")
	assert.NotContains(t, env, "UNRELATED_VAR")
	assert.NotContains(t, env, "OTHER")
}

func TestEnvironment_MissingFile(t *testing.T) {
	_, err := Environment([]string{filepath.Join(t.TempDir(), "missing.env")})
	assert.ErrorIs(t, err, scormpack.ErrInvalidConfig)
}

func TestEnvironment_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile),
		[]byte("SCORMPACK_CATALOG=From dotenv\nSCORMPACK_TITLE=Ignored\n"), 0644))
	chdir(t, dir)

	t.Setenv("SCORMPACK_TITLE", "From process")
	// registers cleanup for the variable .env is about to set
	t.Setenv("SCORMPACK_CATALOG", "")
	require.NoError(t, os.Unsetenv("SCORMPACK_CATALOG"))

	env, err := Environment(nil)
	require.NoError(t, err)
	assert.Equal(t, "From dotenv", env["SCORMPACK_CATALOG"])
	assert.Equal(t, "From process", env["SCORMPACK_TITLE"], ".env never overrides the process")
}

func TestEnvironment_NoDotEnv(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Environment(nil)
	assert.NoError(t, err)
}

func TestEnvironment_UnreadableDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, DotEnvFile), 0755))
	chdir(t, dir)

	_, err := Environment(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, scormpack.ErrInvalidConfig)
	assert.Contains(t, err.Error(), DotEnvFile)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
