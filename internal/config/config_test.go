package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `title: Intro
identifier: intro1
scorm_version: "2004.4"
destination: dist
organization: Acme
mastery_score: 75
starting_page: start.html
package_filename: intro-course
random_filename: true
create_zip_archive: false
metadata_description: Internal build
simplified: true
exclude:
  - "*.psd"
  - drafts/**
metadata:
  entry_identifier: "7"
  catalog: Courses
  lifecycle_version: "2"
  classification: skill level
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Intro", cfg.Title)
	assert.Equal(t, "intro1", cfg.Identifier)
	assert.Equal(t, "2004.4", cfg.ScormVersion)
	assert.Equal(t, "dist", cfg.Destination)
	require.NotNil(t, cfg.MasteryScore)
	assert.Equal(t, 75, *cfg.MasteryScore)
	require.NotNil(t, cfg.CreateZipArchive)
	assert.False(t, *cfg.CreateZipArchive)
	assert.True(t, cfg.RandomFilename)
	assert.True(t, cfg.Simplified)
	assert.Equal(t, []string{"*.psd", "drafts/**"}, cfg.Exclude)
	assert.Equal(t, "Courses", cfg.Metadata.Catalog)
	assert.Equal(t, "skill level", cfg.Metadata.Classification)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("title: Intro\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Intro", cfg.Title)
	assert.Nil(t, cfg.MasteryScore)
	assert.Nil(t, cfg.CreateZipArchive)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, scormpack.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(""), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, ProjectConfig{}, *cfg)
}

func TestApply(t *testing.T) {
	score := 0
	zip := false
	project := &ProjectConfig{
		Title:            "Intro",
		Identifier:       "intro1",
		ScormVersion:     "1.2",
		Destination:      "dist",
		MasteryScore:     &score,
		CreateZipArchive: &zip,
		Exclude:          []string{"*.psd"},
		Metadata:         MetadataConfig{Catalog: "Courses"},
	}

	cfg := scormpack.PackageConfig{Organization: "kept", Exclude: []string{"drafts/**"}}
	project.Apply(&cfg, "/course")

	assert.Equal(t, "Intro", cfg.Title)
	assert.Equal(t, "intro1", cfg.Identifier)
	assert.Equal(t, "1.2", cfg.Version)
	assert.Equal(t, filepath.Join("/course", "dist"), cfg.Destination)
	assert.Equal(t, "kept", cfg.Organization)
	assert.False(t, cfg.ShouldZip())
	assert.Equal(t, []string{"drafts/**", "*.psd"}, cfg.Exclude)
	assert.Equal(t, "Courses", cfg.Metadata.CatalogValue)

	cfg.ApplyDefaults(scormpack.SystemClock{})
	assert.Equal(t, 0, cfg.MasteryScore, "explicit zero survives defaults")
}

func TestApply_AbsoluteDestination(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "out")
	cfg := scormpack.PackageConfig{}
	(&ProjectConfig{Destination: abs}).Apply(&cfg, "/course")
	assert.Equal(t, abs, cfg.Destination)
}
