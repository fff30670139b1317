// Package scanner enumerates the content files of a SCORM package.
//
// The scanner walks a content root through filesystem.FileSystemProvider,
// returns regular files in stable lexical order with platform separators, and
// leaves out anything matching the configured glob exclusions. The generated
// imsmanifest.xml and metadata.xml and the definitionFiles directory are
// always skipped so that rebuilding an unzipped package does not list them.
package scanner
