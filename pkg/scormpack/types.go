package scormpack

import (
	"errors"
	"fmt"
)

// PackageConfig contains all parameters needed to build one SCORM package.
type PackageConfig struct {
	// Title is the course title shown by the LMS (required)
	Title string

	// Identifier is the course identifier; item and resource ids derive from it (required)
	Identifier string

	// Version is the raw SCORM version string, normalized by NormalizeVersion (required)
	Version string

	// Source is the content root that is described by the manifest and zipped (required)
	Source string

	// Destination is the directory receiving the archive (required)
	Destination string

	// Organization names the default organization; empty is allowed
	Organization string

	// MasteryScore is the passing score in percent (default 80)
	MasteryScore int

	// StartingPage is the launch page of the SCO (default index.html)
	StartingPage string

	// PackageFilename is the archive name without extension (default Identifier)
	PackageFilename string

	// RandomFilename names the archive with a random UUID instead of PackageFilename
	RandomFilename bool

	// CreateZipArchive controls archiving; nil means true
	CreateZipArchive *bool

	// MetadataDescription is embedded into 2004 4th Edition manifests
	// (default "Build Date: MM.DD.YYYY; Technology: html;")
	MetadataDescription string

	// Simplified selects the reduced 2004 4th Edition manifest layout
	Simplified bool

	// Exclude holds glob patterns of content files left out of the manifest and archive
	Exclude []string

	// Force overwrites an existing archive without asking for approval
	Force bool

	// Metadata holds the values of the LOM metadata document
	Metadata MetadataConfig

	masteryScoreSet bool
}

// MetadataConfig contains the caller-supplied values of the LOM metadata document.
type MetadataConfig struct {
	EntryIdentifier  string
	CatalogValue     string
	LifeCycleVersion string
	Classification   string
}

// SetMasteryScore records an explicit mastery score so that zero is not
// replaced by the default.
func (c *PackageConfig) SetMasteryScore(score int) {
	c.MasteryScore = score
	c.masteryScoreSet = true
}

// ShouldZip reports whether the package is archived after the build.
func (c *PackageConfig) ShouldZip() bool {
	return c.CreateZipArchive == nil || *c.CreateZipArchive
}

// ApplyDefaults fills every optional field left empty.
// The metadata description default is derived from clock.
func (c *PackageConfig) ApplyDefaults(clock Clock) {
	if c.MasteryScore == 0 && !c.masteryScoreSet {
		c.MasteryScore = DefaultMasteryScore
	}
	if c.StartingPage == "" {
		c.StartingPage = DefaultStartingPage
	}
	if c.PackageFilename == "" {
		c.PackageFilename = c.Identifier
	}
	if c.CreateZipArchive == nil {
		zip := true
		c.CreateZipArchive = &zip
	}
	if c.MetadataDescription == "" {
		if clock == nil {
			clock = SystemClock{}
		}
		c.MetadataDescription = DefaultMetadataDescription(clock)
	}
	if c.Metadata.EntryIdentifier == "" {
		c.Metadata.EntryIdentifier = DefaultEntryIdentifier
	}
	if c.Metadata.CatalogValue == "" {
		c.Metadata.CatalogValue = DefaultCatalogValue
	}
	if c.Metadata.LifeCycleVersion == "" {
		c.Metadata.LifeCycleVersion = DefaultLifeCycleVersion
	}
	if c.Metadata.Classification == "" {
		c.Metadata.Classification = DefaultClassification
	}
}

// Validate checks if the PackageConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *PackageConfig) Validate() error {
	var errs []error

	if c.Title == "" {
		errs = append(errs, &ConfigError{Field: "title", Err: ErrTitleNotSet})
	}
	if c.Identifier == "" {
		errs = append(errs, &ConfigError{Field: "identifier", Err: ErrIdentifierNotSet})
	}
	if c.Version == "" {
		errs = append(errs, &ConfigError{Field: "version", Err: ErrVersionNotSet})
	}
	if c.Source == "" {
		errs = append(errs, &ConfigError{Field: "source", Err: ErrSourceNotSet})
	}
	if c.Destination == "" {
		errs = append(errs, &ConfigError{Field: "destination", Err: ErrDestinationNotSet})
	}
	if c.MasteryScore < 0 || c.MasteryScore > 100 {
		errs = append(errs, fmt.Errorf("mastery score %d is outside 0..100: %w", c.MasteryScore, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// DefaultMetadataDescription returns the description used when none is configured.
func DefaultMetadataDescription(clock Clock) string {
	return "Build Date: " + clock.Now().Format(MetadataDescriptionDateLayout) + "; Technology: html;"
}

// BuildResult describes the artifacts of a finished build.
type BuildResult struct {
	// OutputPath is the archive path, or the source directory when zipping is disabled
	OutputPath string

	// Version is the canonical SCORM version the package was built for
	Version Version

	// ManifestPath is where imsmanifest.xml remains; empty when it was zipped and removed
	ManifestPath string

	// MetadataPath is where metadata.xml remains; empty when absent or removed
	MetadataPath string

	// FileCount is the number of content files listed in the manifest
	FileCount int

	// ContentBytes is the total size of the listed content files
	ContentBytes int64

	// ManifestChecksum is the normalized SHA-256 of the rendered manifest
	ManifestChecksum string

	// ArchiveChecksum is the SHA-256 of the archive; empty when zipping is disabled
	ArchiveChecksum string
}
