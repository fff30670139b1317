package scormpack

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := packager.BuildPackage(ctx, cfg)
//	if errors.Is(err, scormpack.ErrTitleNotSet) {
//	    // Ask the user for a course title
//	}
var (
	// ErrInvalidConfig indicates the provided build configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTitleNotSet indicates the course title is missing.
	ErrTitleNotSet = errors.New("title is not set")

	// ErrIdentifierNotSet indicates the course identifier is missing.
	ErrIdentifierNotSet = errors.New("identifier is not set")

	// ErrVersionNotSet indicates the SCORM version is missing.
	ErrVersionNotSet = errors.New("version is not set")

	// ErrSourceNotSet indicates the content source directory is missing.
	ErrSourceNotSet = errors.New("source is not set")

	// ErrDestinationNotSet indicates the destination directory is missing.
	ErrDestinationNotSet = errors.New("destination is not set")

	// ErrUnsupportedVersion indicates the SCORM version string is not recognised.
	ErrUnsupportedVersion = errors.New("unsupported SCORM version")

	// ErrInvalidSchema indicates a manifest tree contains a node without a name.
	ErrInvalidSchema = errors.New("manifest schema is not valid")

	// ErrFileAccess indicates the content root or an output path could not be read or written.
	ErrFileAccess = errors.New("file access failed")

	// ErrApprovalDenied indicates the user refused to overwrite an existing archive.
	ErrApprovalDenied = errors.New("approval denied")
)

// ConfigError ties a missing or invalid PackageConfig field to its sentinel.
// It matches both ErrInvalidConfig and the field sentinel with errors.Is.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() []error {
	return []error{e.Err, ErrInvalidConfig}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnsupportedVersion):
		return ExitUnsupportedVersion
	case errors.Is(err, ErrInvalidSchema):
		return ExitSchemaError
	case errors.Is(err, ErrFileAccess):
		return ExitFileAccessError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"missing required argument",
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
}
