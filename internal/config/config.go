package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type MetadataConfig struct {
	EntryIdentifier  string `yaml:"entry_identifier,omitempty"`
	Catalog          string `yaml:"catalog,omitempty"`
	LifeCycleVersion string `yaml:"lifecycle_version,omitempty"`
	Classification   string `yaml:"classification,omitempty"`
}

// ProjectConfig mirrors scormpack.yaml. Pointer fields distinguish an explicit
// zero value from an absent key.
type ProjectConfig struct {
	Title               string         `yaml:"title"`
	Identifier          string         `yaml:"identifier"`
	ScormVersion        string         `yaml:"scorm_version"`
	Destination         string         `yaml:"destination,omitempty"`
	Organization        string         `yaml:"organization,omitempty"`
	MasteryScore        *int           `yaml:"mastery_score,omitempty"`
	StartingPage        string         `yaml:"starting_page,omitempty"`
	PackageFilename     string         `yaml:"package_filename,omitempty"`
	RandomFilename      bool           `yaml:"random_filename,omitempty"`
	CreateZipArchive    *bool          `yaml:"create_zip_archive,omitempty"`
	MetadataDescription string         `yaml:"metadata_description,omitempty"`
	Simplified          bool           `yaml:"simplified,omitempty"`
	Exclude             []string       `yaml:"exclude,omitempty"`
	Metadata            MetadataConfig `yaml:"metadata,omitempty"`
}

const ConfigFileName = scormpack.ConfigFileName

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", configPath, scormpack.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// Apply copies every value set in the project file into cfg.
// A relative destination is resolved against sourcePath, the directory the
// file was loaded from.
func (p *ProjectConfig) Apply(cfg *scormpack.PackageConfig, sourcePath string) {
	setString(&cfg.Title, p.Title)
	setString(&cfg.Identifier, p.Identifier)
	setString(&cfg.Version, p.ScormVersion)
	if p.Destination != "" {
		dest := p.Destination
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(sourcePath, dest)
		}
		cfg.Destination = dest
	}
	setString(&cfg.Organization, p.Organization)
	if p.MasteryScore != nil {
		cfg.SetMasteryScore(*p.MasteryScore)
	}
	setString(&cfg.StartingPage, p.StartingPage)
	setString(&cfg.PackageFilename, p.PackageFilename)
	if p.RandomFilename {
		cfg.RandomFilename = true
	}
	if p.CreateZipArchive != nil {
		zip := *p.CreateZipArchive
		cfg.CreateZipArchive = &zip
	}
	setString(&cfg.MetadataDescription, p.MetadataDescription)
	if p.Simplified {
		cfg.Simplified = true
	}
	cfg.Exclude = append(cfg.Exclude, p.Exclude...)

	setString(&cfg.Metadata.EntryIdentifier, p.Metadata.EntryIdentifier)
	setString(&cfg.Metadata.CatalogValue, p.Metadata.Catalog)
	setString(&cfg.Metadata.LifeCycleVersion, p.Metadata.LifeCycleVersion)
	setString(&cfg.Metadata.Classification, p.Metadata.Classification)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
