package scormpack

// FileScanner discovers the content files of a package.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// ScanDirectory recursively lists every regular file under sourcePath.
	ScanDirectory(sourcePath string) (FileScanResult, error)

	// ListFiles returns the relative paths of every regular file under sourcePath,
	// in stable lexical order per directory.
	ListFiles(sourcePath string) ([]string, error)
}

// FileScanResult contains the results of scanning a directory.
type FileScanResult struct {
	Files []ContentFile
}

// Paths returns the relative path of every scanned file, in scan order.
func (r FileScanResult) Paths() []string {
	paths := make([]string, 0, len(r.Files))
	for _, f := range r.Files {
		paths = append(paths, f.RelativePath)
	}
	return paths
}

// TotalBytes sums the size of every scanned file.
func (r FileScanResult) TotalBytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.SizeBytes
	}
	return n
}

// ContentFile describes one file under the content root.
type ContentFile struct {
	// RelativePath uses the platform path separator
	RelativePath string
	SizeBytes    int64
}
