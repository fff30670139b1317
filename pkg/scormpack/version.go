package scormpack

import "fmt"

// Version is a canonical SCORM version. All packaging logic keys off this
// value, never off the raw string the user supplied.
type Version int

const (
	// Version12 is SCORM 1.2.
	Version12 Version = iota + 1
	// Version2004Ed3 is SCORM 2004 3rd Edition.
	Version2004Ed3
	// Version2004Ed4 is SCORM 2004 4th Edition.
	Version2004Ed4
)

// versionAliases is matched exactly, not case-insensitively.
var versionAliases = []struct {
	raw     string
	version Version
}{
	{"1.2", Version12},
	{"2004.3", Version2004Ed3},
	{"2004 3th Edition", Version2004Ed3},
	{"scorm20043rdedition", Version2004Ed3},
	{"2004.4", Version2004Ed4},
	{"2004 4th Edition", Version2004Ed4},
	{"scorm20044thedition", Version2004Ed4},
}

// NormalizeVersion maps a user-supplied version string to its canonical Version.
func NormalizeVersion(raw string) (Version, error) {
	for _, alias := range versionAliases {
		if alias.raw == raw {
			return alias.version, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", raw, ErrUnsupportedVersion)
}

// String returns the canonical form: "1.2", "2004.3" or "2004.4".
func (v Version) String() string {
	switch v {
	case Version12:
		return "1.2"
	case Version2004Ed3:
		return "2004.3"
	case Version2004Ed4:
		return "2004.4"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// DisplayName returns the literal written into the manifest's schemaversion element.
func (v Version) DisplayName() string {
	switch v {
	case Version12:
		return "1.2"
	case Version2004Ed3:
		return "2004 3rd Edition"
	case Version2004Ed4:
		return "2004 4th Edition"
	default:
		return ""
	}
}

// Aliases returns every accepted input string for v, canonical form first.
func (v Version) Aliases() []string {
	var out []string
	for _, alias := range versionAliases {
		if alias.version == v {
			out = append(out, alias.raw)
		}
	}
	return out
}

// SupportedVersions lists the canonical versions in ascending order.
func SupportedVersions() []Version {
	return []Version{Version12, Version2004Ed3, Version2004Ed4}
}
