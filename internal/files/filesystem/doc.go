// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// Packaging reads a content root, writes generated files into it and writes an
// archive next to it. All of that goes through the interfaces here so that the
// whole build can run against an in-memory tree in tests.
//
// Key interfaces:
//   - FileSystemProvider: read access (Open, ReadFile, ReadDir, Stat)
//   - WritableFileSystem: FileSystemProvider plus MkdirAll, WriteFile, Create, Remove, RemoveAll
//   - Directory: a directory that can be walked
//   - File: one walked entry with metadata and content
//
// Implementations:
//   - OSFileSystem: the operating system filesystem (writable)
//   - MemoryFileSystem: an in-memory tree for tests (writable)
//   - EmbedFileSystem: a read-only view of an fs.FS such as embed.FS
//
// Missing paths are reported with errors matching fs.ErrNotExist in every implementation.
package filesystem
