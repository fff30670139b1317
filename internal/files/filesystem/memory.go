package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// memoryFile implements File for a walked in-memory entry
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	skipped := ""
	for _, entry := range d.fs.snapshotUnder(d.absPath) {
		if skipped != "" && isUnder(entry.absPath, skipped) {
			continue
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(entry, nil)
		}()

		switch {
		case callbackErr == nil:
		case errors.Is(callbackErr, fs.SkipDir) && entry.info.IsDir():
			skipped = entry.absPath
		case errors.Is(callbackErr, fs.SkipDir):
			skipped = path.Dir(entry.absPath)
		case errors.Is(callbackErr, fs.SkipAll):
			return nil
		default:
			return callbackErr
		}
	}

	return nil
}

// MemoryFileSystem implements WritableFileSystem in memory.
// Paths use forward slashes internally; relative paths resolve against the root.
// It is safe for concurrent use.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root directory exists.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.mkdirAllLocked(root, time.Now())

	return mfs
}

// Root returns the directory relative paths resolve against.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file, creating missing parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.mkdirAllLocked(path.Dir(absPath), modTime)
	mfs.putFileLocked(absPath, []byte(content), modTime)
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) mkdirAllLocked(dir string, modTime time.Time) {
	for {
		if _, exists := mfs.entries[dir]; exists {
			return
		}
		mfs.entries[dir] = &memoryEntry{info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    dirPerm | fs.ModeDir,
			modTime: modTime,
		}}
		parent := path.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func (mfs *MemoryFileSystem) putFileLocked(absPath string, content []byte, modTime time.Time) {
	mfs.entries[absPath] = &memoryEntry{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    filePerm,
			modTime: modTime,
		},
	}
}

// walkKey orders paths so that a directory's subtree sorts before its later
// siblings ("a/b" before "a.html"), matching filepath.Walk.
func walkKey(p string) string {
	return strings.ReplaceAll(p, "/", "\x00")
}

func isUnder(p, base string) bool {
	if base == "/" {
		return strings.HasPrefix(p, "/")
	}
	return p == base || strings.HasPrefix(p, base+"/")
}

func (mfs *MemoryFileSystem) snapshotUnder(base string) []*memoryFile {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var out []*memoryFile
	for p, e := range mfs.entries {
		if !isUnder(p, base) {
			continue
		}
		rel := "."
		if p != base {
			rel = filepath.FromSlash(strings.TrimPrefix(strings.TrimPrefix(p, base), "/"))
		}
		out = append(out, &memoryFile{
			absPath: p,
			relPath: rel,
			content: bytes.Clone(e.content),
			info:    e.info,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return walkKey(out[i].absPath) < walkKey(out[j].absPath)
	})
	return out
}

func notExist(op, p string) error {
	return &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	mfs.mu.RLock()
	e, exists := mfs.entries[absPath]
	mfs.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("failed to access path: %w", notExist("open", openPath))
	}
	if !e.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	e, exists := mfs.entries[absPath]
	if !exists {
		return nil, notExist("read", filePath)
	}
	if e.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return bytes.Clone(e.content), nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.resolve(dirPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	e, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w", notExist("readdir", dirPath))
	}
	if !e.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var out []FileInfo
	for p, child := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			out = append(out, child.info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })

	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	e, exists := mfs.entries[absPath]
	if !exists {
		return nil, notExist("stat", statPath)
	}

	return e.info, nil
}

// MkdirAll implements WritableFileSystem.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	absPath := mfs.resolve(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	for p := absPath; ; p = path.Dir(p) {
		if e, exists := mfs.entries[p]; exists && !e.info.IsDir() {
			return fmt.Errorf("mkdir %s: %s is a file", dirPath, p)
		}
		if path.Dir(p) == p {
			break
		}
	}

	mfs.mkdirAllLocked(absPath, time.Now())
	return nil
}

func (mfs *MemoryFileSystem) checkParentLocked(op, absPath, original string) error {
	parent, exists := mfs.entries[path.Dir(absPath)]
	if !exists {
		return notExist(op, original)
	}
	if !parent.info.IsDir() {
		return fmt.Errorf("%s %s: parent is not a directory", op, original)
	}
	if e, exists := mfs.entries[absPath]; exists && e.info.IsDir() {
		return fmt.Errorf("%s %s: is a directory", op, original)
	}
	return nil
}

// WriteFile implements WritableFileSystem.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	absPath := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if err := mfs.checkParentLocked("write", absPath, filePath); err != nil {
		return err
	}
	mfs.putFileLocked(absPath, bytes.Clone(data), time.Now())
	return nil
}

// memoryWriter buffers a Create until Close
type memoryWriter struct {
	fs      *MemoryFileSystem
	absPath string
	buf     bytes.Buffer
	closed  bool
}

func (w *memoryWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	return w.buf.Write(p)
}

func (w *memoryWriter) Close() error {
	if w.closed {
		return fs.ErrClosed
	}
	w.closed = true

	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()
	w.fs.putFileLocked(w.absPath, w.buf.Bytes(), time.Now())
	return nil
}

// Create implements WritableFileSystem.Create
func (mfs *MemoryFileSystem) Create(filePath string) (io.WriteCloser, error) {
	absPath := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if err := mfs.checkParentLocked("create", absPath, filePath); err != nil {
		return nil, err
	}
	mfs.putFileLocked(absPath, nil, time.Now())

	return &memoryWriter{fs: mfs, absPath: absPath}, nil
}

// Remove implements WritableFileSystem.Remove
func (mfs *MemoryFileSystem) Remove(filePath string) error {
	absPath := mfs.resolve(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	e, exists := mfs.entries[absPath]
	if !exists {
		return notExist("remove", filePath)
	}
	if e.info.IsDir() {
		for p := range mfs.entries {
			if p != absPath && isUnder(p, absPath) {
				return &fs.PathError{Op: "remove", Path: filePath, Err: errors.New("directory not empty")}
			}
		}
	}

	delete(mfs.entries, absPath)
	return nil
}

// RemoveAll implements WritableFileSystem.RemoveAll
func (mfs *MemoryFileSystem) RemoveAll(dirPath string) error {
	absPath := mfs.resolve(dirPath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	for p := range mfs.entries {
		if isUnder(p, absPath) {
			delete(mfs.entries, p)
		}
	}
	return nil
}
