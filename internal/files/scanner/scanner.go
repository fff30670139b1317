package scanner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/romanpravda/scormpack/internal/files/filesystem"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// Scanner discovers content files under a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	excludes   []glob.Glob
}

// NewScanner creates a new file scanner over the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{fsProvider: filesystem.NewOSFileSystem()}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{fsProvider: fsProvider}
}

// WithExcludes returns a copy of s that skips files whose slash-separated
// relative path matches any of patterns. Patterns use glob syntax with '/'
// as separator, so "*.psd" matches only top-level files and "**.psd" any depth.
func (s *Scanner) WithExcludes(patterns []string) (*Scanner, error) {
	out := *s
	out.excludes = make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		out.excludes = append(out.excludes, g)
	}
	return &out, nil
}

// ListFiles returns the relative path of every content file under sourcePath.
func (s *Scanner) ListFiles(sourcePath string) ([]string, error) {
	var paths []string
	err := s.walk(sourcePath, func(file filesystem.File) error {
		paths = append(paths, file.RelativePath())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// ScanDirectory recursively scans a directory and returns the path and size
// of every content file. File contents are not read.
func (s *Scanner) ScanDirectory(sourcePath string) (scormpack.FileScanResult, error) {
	var files []scormpack.ContentFile

	err := s.walk(sourcePath, func(file filesystem.File) error {
		files = append(files, scormpack.ContentFile{
			RelativePath: file.RelativePath(),
			SizeBytes:    file.Info().Size(),
		})
		return nil
	})
	if err != nil {
		return scormpack.FileScanResult{}, err
	}

	return scormpack.FileScanResult{Files: files}, nil
}

func (s *Scanner) walk(sourcePath string, visit func(filesystem.File) error) error {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}

	return dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		relPath := file.RelativePath()
		if relPath == "." {
			return nil
		}
		unixPath := filepath.ToSlash(relPath)

		if file.Info().IsDir() {
			if unixPath == scormpack.DefinitionFilesDir {
				return filepath.SkipDir
			}
			return nil
		}

		if isGenerated(unixPath) || s.Excluded(unixPath) {
			return nil
		}

		return visit(file)
	})
}

// isGenerated reports whether unixPath is a file the packager writes itself.
func isGenerated(unixPath string) bool {
	return unixPath == scormpack.ManifestFileName ||
		unixPath == scormpack.MetadataFileName ||
		strings.HasPrefix(unixPath, scormpack.DefinitionFilesDir+"/")
}

// Excluded reports whether the slash-separated relative path matches an
// exclude pattern.
func (s *Scanner) Excluded(unixPath string) bool {
	for _, g := range s.excludes {
		if g.Match(unixPath) {
			return true
		}
	}
	return false
}

var _ scormpack.FileScanner = (*Scanner)(nil)
