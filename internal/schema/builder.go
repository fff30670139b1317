package schema

import (
	"fmt"

	"github.com/romanpravda/scormpack/internal/manifest"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// FileLister enumerates the regular files under a content root.
// Returned paths are relative to root and use the platform separator.
type FileLister interface {
	ListFiles(root string) ([]string, error)
}

// Params carries everything a manifest builder reads.
type Params struct {
	Title        string
	Identifier   string
	Organization string

	// DisplayVersion is the literal written into the schemaversion element.
	DisplayVersion string

	MasteryScore int
	StartingPage string

	// Source is the content root listed into the resource's file entries.
	Source string

	// MetadataDescription is only read by the 2004 4th Edition builder.
	MetadataDescription string

	// Simplified selects the reduced 2004 4th Edition layout.
	Simplified bool

	Files FileLister
}

// MetadataParams carries the caller-supplied values of the LOM document.
type MetadataParams struct {
	Title            string
	EntryIdentifier  string
	CatalogValue     string
	LifeCycleVersion string
	Classification   string
}

// Builder produces the node trees of one SCORM version.
type Builder interface {
	// Manifest returns the imsmanifest.xml tree.
	Manifest(p Params) ([]*manifest.Node, error)

	// Metadata returns the metadata.xml tree, or nil without error when the
	// version has no companion metadata document.
	Metadata(p MetadataParams) ([]*manifest.Node, error)
}

var builders = map[scormpack.Version]Builder{
	scormpack.Version12:      scorm12{},
	scormpack.Version2004Ed3: scorm2004Ed3{},
	scormpack.Version2004Ed4: scorm2004Ed4{},
}

// For returns the builder of a canonical version.
func For(v scormpack.Version) (Builder, error) {
	b, ok := builders[v]
	if !ok {
		return nil, fmt.Errorf("no schema builder for %s: %w", v, scormpack.ErrUnsupportedVersion)
	}
	return b, nil
}

// noMetadata is embedded by builders whose version has no metadata document.
type noMetadata struct{}

func (noMetadata) Metadata(MetadataParams) ([]*manifest.Node, error) {
	return nil, nil
}
