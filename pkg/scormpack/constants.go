package scormpack

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Package built successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Missing or invalid build configuration
	ExitUnsupportedVersion = 11 // SCORM version string not recognised
	ExitSchemaError        = 12 // Manifest tree failed serialization checks
	ExitFileAccessError    = 13 // Content root or output could not be read or written
	ExitApprovalDenied     = 14 // User refused to overwrite an existing archive
)

// Well-known file and directory names inside a package.
const (
	// ManifestFileName is the SCORM manifest written to the content root.
	ManifestFileName = "imsmanifest.xml"

	// MetadataFileName is the LOM metadata document referenced by 2004 4th Edition manifests.
	MetadataFileName = "metadata.xml"

	// DefinitionFilesDir is the content-root subdirectory receiving the bundled schema files.
	DefinitionFilesDir = "definitionFiles"

	// ArchiveExtension is appended to the package filename.
	ArchiveExtension = ".zip"

	// ConfigFileName is the optional project file read from the content root.
	ConfigFileName = "scormpack.yaml"
)

// Defaults applied by PackageConfig.ApplyDefaults.
const (
	DefaultMasteryScore     = 80
	DefaultStartingPage     = "index.html"
	DefaultEntryIdentifier  = "1"
	DefaultCatalogValue     = "Catalog"
	DefaultLifeCycleVersion = "1"
	DefaultClassification   = "educational objective"

	// MetadataDescriptionDateLayout renders the build date as MM.DD.YYYY.
	MetadataDescriptionDateLayout = "01.02.2006"
)
