package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/romanpravda/scormpack/internal/archive"
	"github.com/romanpravda/scormpack/internal/checksum"
	"github.com/romanpravda/scormpack/internal/definitions"
	"github.com/romanpravda/scormpack/internal/files/filesystem"
	"github.com/romanpravda/scormpack/internal/files/scanner"
	"github.com/romanpravda/scormpack/internal/manifest"
	"github.com/romanpravda/scormpack/internal/schema"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// PackageService implements the Packager interface.
// It keeps no per-build state, so concurrent BuildPackage calls are safe as
// long as they use distinct source and destination directories.
type PackageService struct {
	fsys       filesystem.WritableFileSystem
	assets     filesystem.FileSystemProvider
	approver   scormpack.Approver
	logger     scormpack.Logger
	clock      scormpack.Clock
	calculator checksum.Calculator
	newName    func() string
}

// NewPackageService creates a PackageService with all dependencies injected.
// assets holds the definition files keyed by canonical version directory,
// normally definitions.Assets().
// Panics on nil dependencies.
func NewPackageService(
	fsys filesystem.WritableFileSystem,
	assets filesystem.FileSystemProvider,
	approver scormpack.Approver,
	logger scormpack.Logger,
	clock scormpack.Clock,
) *PackageService {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if assets == nil {
		panic("assets cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if clock == nil {
		panic("clock cannot be nil")
	}

	return &PackageService{
		fsys:       fsys,
		assets:     assets,
		approver:   approver,
		logger:     logger,
		clock:      clock,
		calculator: checksum.New(),
		newName:    uuid.NewString,
	}
}

// Preview holds rendered documents without anything written to disk.
type Preview struct {
	Version  scormpack.Version
	Manifest string
	// Metadata is empty for versions without a metadata document
	Metadata string
	Files    []string
}

// rendered is the outcome of the pure part of a build.
type rendered struct {
	version  scormpack.Version
	manifest string
	metadata string
	files    []string
	bytes    int64
	lister   *scanner.Scanner
}

// BuildPackage writes the manifest, definition files and metadata into the
// content root and archives it unless zipping is disabled.
// Nothing is rolled back when a step fails.
func (s *PackageService) BuildPackage(ctx context.Context, config scormpack.PackageConfig) (scormpack.BuildResult, error) {
	config.ApplyDefaults(s.clock)
	if err := config.Validate(); err != nil {
		return scormpack.BuildResult{}, err
	}

	doc, err := s.render(config)
	if err != nil {
		return scormpack.BuildResult{}, err
	}
	s.logger.Info("Building SCORM %s package %q from %s", doc.version, config.Identifier, config.Source)

	if err := s.fsys.MkdirAll(config.Destination); err != nil {
		return scormpack.BuildResult{}, fileAccess("failed to create destination "+config.Destination, err)
	}

	var archivePath string
	if config.ShouldZip() {
		archivePath, err = s.resolveArchivePath(ctx, config)
		if err != nil {
			return scormpack.BuildResult{}, err
		}
	}

	if err := ctx.Err(); err != nil {
		return scormpack.BuildResult{}, err
	}

	manifestPath := filepath.Join(config.Source, scormpack.ManifestFileName)
	if err := s.fsys.WriteFile(manifestPath, []byte(doc.manifest)); err != nil {
		return scormpack.BuildResult{}, fileAccess("failed to write manifest", err)
	}
	s.logger.Verbose("Wrote %s (%d files listed)", manifestPath, len(doc.files))

	definitionsDir := filepath.Join(config.Source, scormpack.DefinitionFilesDir)
	copied, err := definitions.NewCopier(s.assets, s.fsys, s.logger).Copy(doc.version, definitionsDir)
	if err != nil {
		return scormpack.BuildResult{}, err
	}
	s.logger.Verbose("Copied %d definition files to %s", copied, definitionsDir)

	var metadataPath string
	if doc.metadata != "" {
		metadataPath = filepath.Join(config.Source, scormpack.MetadataFileName)
		if err := s.fsys.WriteFile(metadataPath, []byte(doc.metadata)); err != nil {
			return scormpack.BuildResult{}, fileAccess("failed to write metadata", err)
		}
		s.logger.Verbose("Wrote %s", metadataPath)
	}

	result := scormpack.BuildResult{
		OutputPath:       config.Source,
		Version:          doc.version,
		ManifestPath:     manifestPath,
		MetadataPath:     metadataPath,
		FileCount:        len(doc.files),
		ContentBytes:     doc.bytes,
		ManifestChecksum: s.calculator.CalculateNormalized([]byte(doc.manifest)),
	}

	if !config.ShouldZip() {
		s.logger.Info("Package prepared in %s", config.Source)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return scormpack.BuildResult{}, err
	}

	written, err := archive.NewWriter(s.fsys, s.logger).
		WithFilter(doc.lister.Excluded).
		Write(ctx, config.Source, archivePath)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return scormpack.BuildResult{}, err
		}
		return scormpack.BuildResult{}, fileAccess("failed to create archive", err)
	}

	result.ArchiveChecksum = written.Checksum

	if err := s.cleanup(manifestPath, definitionsDir, metadataPath); err != nil {
		return scormpack.BuildResult{}, err
	}

	result.OutputPath = written.Path
	result.ManifestPath = ""
	result.MetadataPath = ""

	s.logger.Info("Package written to %s (%d entries)", written.Path, len(written.Entries))
	return result, nil
}

// Preview renders the manifest and metadata of config without writing anything.
// An empty destination is allowed.
func (s *PackageService) Preview(config scormpack.PackageConfig) (Preview, error) {
	if config.Destination == "" {
		config.Destination = config.Source
	}
	config.ApplyDefaults(s.clock)
	if err := config.Validate(); err != nil {
		return Preview{}, err
	}

	doc, err := s.render(config)
	if err != nil {
		return Preview{}, err
	}

	return Preview{
		Version:  doc.version,
		Manifest: doc.manifest,
		Metadata: doc.metadata,
		Files:    doc.files,
	}, nil
}

func (s *PackageService) render(config scormpack.PackageConfig) (rendered, error) {
	version, err := scormpack.NormalizeVersion(config.Version)
	if err != nil {
		return rendered{}, err
	}

	builder, err := schema.For(version)
	if err != nil {
		return rendered{}, err
	}

	lister, err := scanner.NewScannerWithFS(s.fsys).WithExcludes(config.Exclude)
	if err != nil {
		return rendered{}, fmt.Errorf("%w: %w", scormpack.ErrInvalidConfig, err)
	}

	scan, err := lister.ScanDirectory(config.Source)
	if err != nil {
		return rendered{}, fileAccess("failed to list content root "+config.Source, err)
	}
	files := scan.Paths()

	nodes, err := builder.Manifest(schema.Params{
		Title:               config.Title,
		Identifier:          config.Identifier,
		Organization:        config.Organization,
		DisplayVersion:      version.DisplayName(),
		MasteryScore:        config.MasteryScore,
		StartingPage:        config.StartingPage,
		Source:              config.Source,
		MetadataDescription: config.MetadataDescription,
		Simplified:          config.Simplified,
		Files:               fixedLister(files),
	})
	if err != nil {
		return rendered{}, err
	}

	manifestXML, err := manifest.Render(nodes)
	if err != nil {
		return rendered{}, err
	}

	metaNodes, err := builder.Metadata(schema.MetadataParams{
		Title:            config.Title,
		EntryIdentifier:  config.Metadata.EntryIdentifier,
		CatalogValue:     config.Metadata.CatalogValue,
		LifeCycleVersion: config.Metadata.LifeCycleVersion,
		Classification:   config.Metadata.Classification,
	})
	if err != nil {
		return rendered{}, err
	}

	var metadataXML string
	if len(metaNodes) > 0 {
		if metadataXML, err = manifest.Render(metaNodes); err != nil {
			return rendered{}, err
		}
	}

	return rendered{
		version:  version,
		manifest: manifestXML,
		metadata: metadataXML,
		files:    files,
		bytes:    scan.TotalBytes(),
		lister:   lister,
	}, nil
}

// resolveArchivePath names the archive and asks for approval when it would
// replace an existing file.
func (s *PackageService) resolveArchivePath(ctx context.Context, config scormpack.PackageConfig) (string, error) {
	name := config.PackageFilename
	if config.RandomFilename {
		name = s.newName()
	}
	archivePath := filepath.Join(config.Destination, name+scormpack.ArchiveExtension)

	info, err := s.fsys.Stat(archivePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return archivePath, nil
	case err != nil:
		return "", fileAccess("failed to check "+archivePath, err)
	case info.IsDir():
		return "", fmt.Errorf("%s is a directory: %w", archivePath, scormpack.ErrFileAccess)
	case config.Force:
		s.logger.Verbose("Replacing existing archive %s", archivePath)
		return archivePath, nil
	}

	approved, err := s.approver.RequestApproval(ctx, archivePath)
	if err != nil {
		return "", fmt.Errorf("approval failed: %w", err)
	}
	if !approved {
		return "", fmt.Errorf("%s already exists: %w", archivePath, scormpack.ErrApprovalDenied)
	}
	return archivePath, nil
}

// cleanup removes the generated files from the content root after zipping.
// Every removal is attempted; failures are reported together.
func (s *PackageService) cleanup(manifestPath, definitionsDir, metadataPath string) error {
	err := s.fsys.Remove(manifestPath)
	err = multierr.Append(err, s.fsys.RemoveAll(definitionsDir))
	if metadataPath != "" {
		err = multierr.Append(err, s.fsys.Remove(metadataPath))
	}
	if err != nil {
		return fileAccess("failed to clean up content root", err)
	}
	return nil
}

func fileAccess(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, scormpack.ErrFileAccess, err)
}

// fixedLister serves a listing taken once per build, so the manifest and the
// reported file count come from the same walk.
type fixedLister []string

func (l fixedLister) ListFiles(string) ([]string, error) {
	return l, nil
}

var _ scormpack.Packager = (*PackageService)(nil)
