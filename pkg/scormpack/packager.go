package scormpack

import "context"

// Packager builds SCORM packages.
type Packager interface {
	// BuildPackage writes the manifest, metadata and definition files into the
	// content root and, unless disabled, archives the tree into the destination.
	BuildPackage(ctx context.Context, config PackageConfig) (BuildResult, error)
}
