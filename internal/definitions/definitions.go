// Package definitions bundles the schema definition files shipped inside every
// SCORM package and copies them into a content root.
package definitions

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"

	"github.com/romanpravda/scormpack/internal/files/filesystem"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

//go:embed assets
var assetsFS embed.FS

// Assets returns the bundled files as a read-only provider rooted at the
// per-version directories ("1.2", "2004.3", "2004.4").
func Assets() *filesystem.EmbedFileSystem {
	return filesystem.NewEmbedFileSystem(assetsFS, "assets")
}

// Copier copies a version's definition files into a target directory.
type Copier struct {
	assets filesystem.FileSystemProvider
	target filesystem.WritableFileSystem
	logger scormpack.Logger
}

// NewCopier creates a Copier reading from assets and writing to target.
// Panics if any argument is nil.
func NewCopier(assets filesystem.FileSystemProvider, target filesystem.WritableFileSystem, logger scormpack.Logger) *Copier {
	if assets == nil {
		panic("assets cannot be nil")
	}
	if target == nil {
		panic("target cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Copier{assets: assets, target: target, logger: logger}
}

// Files lists the definition files of v relative to the version directory,
// using the platform separator.
func (c *Copier) Files(v scormpack.Version) ([]string, error) {
	dir, err := c.assets.Open(v.String())
	if err != nil {
		return nil, fmt.Errorf("no definition files for %s: %w", v, err)
	}

	var files []string
	err = dir.Walk(func(f filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list definition files for %s: %w", v, err)
	}
	return files, nil
}

// Copy writes every definition file of v below targetDir, creating
// directories as needed and overwriting existing files. It returns the number
// of files written.
func (c *Copier) Copy(v scormpack.Version, targetDir string) (int, error) {
	dir, err := c.assets.Open(v.String())
	if err != nil {
		return 0, fmt.Errorf("no definition files for %s: %w", v, err)
	}

	if err := c.target.MkdirAll(targetDir); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w: %w", targetDir, scormpack.ErrFileAccess, err)
	}

	count := 0
	err = dir.Walk(func(f filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if f.RelativePath() == "." {
			return nil
		}

		dst := filepath.Join(targetDir, f.RelativePath())
		if f.Info().IsDir() {
			return c.target.MkdirAll(dst)
		}

		content, err := f.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path.Join(v.String(), filepath.ToSlash(f.RelativePath())), err)
		}
		if err := c.target.WriteFile(dst, content); err != nil {
			return fmt.Errorf("failed to write %s: %w: %w", dst, scormpack.ErrFileAccess, err)
		}

		c.logger.Verbose("Copied definition file %s", f.RelativePath())
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to copy definition files for %s: %w", v, err)
	}

	return count, nil
}
