// Package archive writes a directory tree into a zip file.
package archive

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"go.uber.org/multierr"

	"github.com/romanpravda/scormpack/internal/checksum"
	"github.com/romanpravda/scormpack/internal/files/filesystem"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// Writer creates zip archives through a filesystem provider.
// Writer is safe for concurrent use when the provider is.
type Writer struct {
	fsys   filesystem.WritableFileSystem
	logger scormpack.Logger
	skip   func(string) bool
}

// NewWriter creates an archive writer.
// Panics if fsys or logger is nil.
func NewWriter(fsys filesystem.WritableFileSystem, logger scormpack.Logger) *Writer {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Writer{fsys: fsys, logger: logger}
}

// WithFilter returns a copy of w that leaves out every file for which skip
// reports true. skip receives the slash-separated path relative to the source.
func (w *Writer) WithFilter(skip func(string) bool) *Writer {
	out := *w
	out.skip = skip
	return &out
}

// Result describes a written archive.
type Result struct {
	Path    string
	Entries []string
	// Checksum is the SHA-256 of the archive bytes, taken while writing
	Checksum string
}

// Write stores every regular file under sourceDir in a new zip at archivePath,
// named by its slash-separated path relative to sourceDir. Directories get no
// entries of their own. If archivePath lies inside sourceDir it is not added to
// itself. An existing file at archivePath is replaced. On failure the partial
// archive is removed.
func (w *Writer) Write(ctx context.Context, sourceDir, archivePath string) (res Result, err error) {
	dir, err := w.fsys.Open(sourceDir)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open %s: %w", sourceDir, err)
	}

	out, err := w.fsys.Create(archivePath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create archive %s: %w", archivePath, err)
	}

	defer func() {
		if err != nil {
			res = Result{}
			_ = w.fsys.Remove(archivePath)
		}
	}()
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	digest := checksum.NewDigest()
	zw := zip.NewWriter(io.MultiWriter(out, digest))

	self := samePathKey(archivePath)
	var entries []string

	walkErr := dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		info := file.Info()
		if info.IsDir() || samePathKey(file.Path()) == self {
			return nil
		}

		name := filepath.ToSlash(file.RelativePath())
		if w.skip != nil && w.skip(name) {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("failed to create header for %s: %w", name, err)
		}
		header.Name = name
		header.Method = zip.Deflate

		entry, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("failed to create entry %s: %w", name, err)
		}
		if _, err := entry.Write(content); err != nil {
			return fmt.Errorf("failed to write entry %s: %w", name, err)
		}

		entries = append(entries, name)
		w.logger.Verbose("Archived %s (%d bytes)", name, len(content))
		return nil
	})
	if walkErr != nil {
		_ = zw.Close()
		return Result{}, fmt.Errorf("failed to archive %s: %w", sourceDir, walkErr)
	}

	// Close writes the central directory, which must be in the digest.
	if err := zw.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to finish archive %s: %w", archivePath, err)
	}

	return Result{Path: archivePath, Entries: entries, Checksum: digest.Sum()}, nil
}

func samePathKey(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.ToSlash(filepath.Clean(p))
}
