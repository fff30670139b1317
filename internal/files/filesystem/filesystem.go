package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual walked entry with its metadata and content accessor
type File interface {
	// Path returns the full path to the entry
	Path() string

	// RelativePath returns the path relative to the walked directory,
	// using the platform separator. The directory itself is ".".
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the full path to the directory
	Path() string

	// Walk visits the directory itself and every entry below it in lexical
	// order, each directory's entries before its following siblings.
	// Returning fs.SkipDir for a directory skips its contents; for a file it
	// skips the remaining entries of the parent. fs.SkipAll stops the walk
	// without error. Any other error stops walking and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider gives read access to a filesystem
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir returns the entries directly inside path, sorted by name
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// WritableFileSystem is a FileSystemProvider that can also create and delete entries
type WritableFileSystem interface {
	FileSystemProvider

	// MkdirAll creates path and any missing parents
	MkdirAll(path string) error

	// WriteFile creates or truncates the file at path; the parent must exist
	WriteFile(path string, data []byte) error

	// Create opens a new or truncated file for streaming writes;
	// the content becomes visible when the writer is closed
	Create(path string) (io.WriteCloser, error)

	// Remove deletes a file or an empty directory
	Remove(path string) error

	// RemoveAll deletes path and everything below it; a missing path is not an error
	RemoveAll(path string) error
}
