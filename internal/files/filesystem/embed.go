package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// embedFile implements File interface for an fs.FS entry
type embedFile struct {
	fsys    fs.FS
	absPath string // path within fsys, always forward slashes
	relPath string
	info    fs.FileInfo
}

func (f *embedFile) Path() string         { return f.absPath }
func (f *embedFile) RelativePath() string { return f.relPath }
func (f *embedFile) Info() FileInfo       { return f.info }

func (f *embedFile) ReadContent() ([]byte, error) {
	return fs.ReadFile(f.fsys, f.absPath)
}

// embedDirectory implements Directory interface for an fs.FS
type embedDirectory struct {
	fsys    fs.FS
	absPath string
}

func (d *embedDirectory) Path() string { return d.absPath }

func (d *embedDirectory) Walk(fn func(File, error) error) error {
	return fs.WalkDir(d.fsys, d.absPath, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fn(nil, err)
		}

		info, err := entry.Info()
		if err != nil {
			return fn(nil, fmt.Errorf("failed to get file info for %s: %w", filePath, err))
		}

		rel := "."
		if filePath != d.absPath {
			rel = strings.TrimPrefix(filePath, d.absPath+"/")
			if d.absPath == "." {
				rel = filePath
			}
		}

		return fn(&embedFile{
			fsys:    d.fsys,
			absPath: filePath,
			relPath: filepath.FromSlash(rel),
			info:    info,
		}, nil)
	})
}

// EmbedFileSystem is a read-only FileSystemProvider over an fs.FS, typically an embed.FS.
// Paths are slash-separated and resolve against root; a leading slash is ignored.
type EmbedFileSystem struct {
	fsys fs.FS
	root string
}

// NewEmbedFileSystem wraps fsys, treating root as the top directory.
func NewEmbedFileSystem(fsys fs.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{
		fsys: fsys,
		root: path.Clean(filepath.ToSlash(root)),
	}
}

func (efs *EmbedFileSystem) resolve(p string) string {
	p = strings.TrimPrefix(filepath.ToSlash(p), "/")
	if p == "" || p == "." {
		return efs.root
	}
	return path.Join(efs.root, p)
}

// Open implements FileSystemProvider.Open
func (efs *EmbedFileSystem) Open(openPath string) (Directory, error) {
	absPath := efs.resolve(openPath)

	info, err := fs.Stat(efs.fsys, absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", openPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &embedDirectory{fsys: efs.fsys, absPath: absPath}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := fs.ReadFile(efs.fsys, efs.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (efs *EmbedFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	entries, err := fs.ReadDir(efs.fsys, efs.resolve(dirPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}

	out := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to get file info for %s: %w", entry.Name(), err)
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (efs *EmbedFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(efs.fsys, efs.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}
