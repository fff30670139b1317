package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romanpravda/scormpack/internal/files/filesystem"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	mfs := filesystem.NewMemoryFileSystem("/course")
	return NewScannerWithFS(mfs), mfs
}

func TestNewScannerWithFS_NilArgs(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil filesystem", func() { NewScannerWithFS(nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestListFiles_Order(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("index.html", "<html></html>")
	mfs.AddFile("img/logo.png", "png")
	mfs.AddFile("a.html", "a")
	mfs.AddFile("a/deep/x.js", "x")

	files, err := s.ListFiles("/course")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("a", "deep", "x.js"),
		"a.html",
		filepath.Join("img", "logo.png"),
		"index.html",
	}, files)
}

func TestListFiles_SkipsGeneratedFiles(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("index.html", "x")
	mfs.AddFile("imsmanifest.xml", "<manifest/>")
	mfs.AddFile("metadata.xml", "<lom/>")
	mfs.AddFile("definitionFiles/imscp_v1p1.xsd", "<xs:schema/>")
	mfs.AddFile("lessons/metadata.xml", "<kept/>")

	files, err := s.ListFiles("/course")
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", filepath.Join("lessons", "metadata.xml")}, files)
}

func TestListFiles_Excludes(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("index.html", "x")
	mfs.AddFile("notes.psd", "x")
	mfs.AddFile("img/raw/logo.psd", "x")
	mfs.AddFile("img/logo.png", "x")
	mfs.AddFile(".git/HEAD", "ref")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "no patterns",
			patterns: nil,
			want: []string{
				filepath.Join(".git", "HEAD"),
				filepath.Join("img", "logo.png"),
				filepath.Join("img", "raw", "logo.psd"),
				"index.html",
				"notes.psd",
			},
		},
		{
			name:     "single star stays in one directory",
			patterns: []string{"*.psd"},
			want: []string{
				filepath.Join(".git", "HEAD"),
				filepath.Join("img", "logo.png"),
				filepath.Join("img", "raw", "logo.psd"),
				"index.html",
			},
		},
		{
			name:     "super star crosses directories",
			patterns: []string{"**.psd", ".git/**"},
			want: []string{
				filepath.Join("img", "logo.png"),
				"index.html",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scoped, err := s.WithExcludes(tt.patterns)
			require.NoError(t, err)

			files, err := scoped.ListFiles("/course")
			require.NoError(t, err)
			assert.Equal(t, tt.want, files)
		})
	}
}

func TestWithExcludes_InvalidPattern(t *testing.T) {
	s, _ := newTestScanner()

	_, err := s.WithExcludes([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestScanDirectory(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("index.html", "abc")
	mfs.AddFile("img/logo.png", "")

	result, err := s.ScanDirectory("/course")
	require.NoError(t, err)
	require.Len(t, result.Files, 2)

	assert.Equal(t, []string{filepath.Join("img", "logo.png"), "index.html"}, result.Paths())

	assert.Equal(t, int64(3), result.Files[1].SizeBytes)
	assert.Equal(t, int64(3), result.TotalBytes())
}

// unreadableFS fails every content read, so a scan that reads files breaks.
type unreadableFS struct {
	*filesystem.MemoryFileSystem
}

func (f unreadableFS) ReadFile(string) ([]byte, error) {
	return nil, errors.New("content must not be read")
}

func (f unreadableFS) Open(path string) (filesystem.Directory, error) {
	dir, err := f.MemoryFileSystem.Open(path)
	if err != nil {
		return nil, err
	}
	return unreadableDir{dir}, nil
}

type unreadableDir struct {
	filesystem.Directory
}

func (d unreadableDir) Walk(fn func(filesystem.File, error) error) error {
	return d.Directory.Walk(func(f filesystem.File, err error) error {
		if f == nil {
			return fn(f, err)
		}
		return fn(unreadableFile{f}, err)
	})
}

type unreadableFile struct {
	filesystem.File
}

func (unreadableFile) ReadContent() ([]byte, error) {
	return nil, errors.New("content must not be read")
}

func TestScanDirectory_SizesWithoutReading(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/course")
	mfs.AddFile("video/intro.mp4", "0123456789")
	mfs.AddFile("index.html", "abc")

	result, err := NewScannerWithFS(unreadableFS{mfs}).ScanDirectory("/course")
	require.NoError(t, err)
	assert.Equal(t, int64(13), result.TotalBytes())
}

func TestScanDirectory_EmptyDirectory(t *testing.T) {
	s, _ := newTestScanner()

	result, err := s.ScanDirectory("/course")
	require.NoError(t, err)
	assert.Empty(t, result.Files)
}

func TestScanDirectory_NonexistentPath(t *testing.T) {
	s, _ := newTestScanner()

	_, err := s.ScanDirectory("/nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = s.ListFiles("/nonexistent")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestListFiles_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.png"), []byte("y"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "definitionFiles"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "definitionFiles", "lom.xsd"), []byte("z"), 0o644))

	files, err := NewScanner().ListFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("img", "logo.png"), "index.html"}, files)
}
