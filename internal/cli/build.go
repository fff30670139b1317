package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/romanpravda/scormpack/internal/config"
	"github.com/romanpravda/scormpack/internal/definitions"
	"github.com/romanpravda/scormpack/internal/files/filesystem"
	"github.com/romanpravda/scormpack/internal/logging"
	"github.com/romanpravda/scormpack/internal/services"
	"github.com/romanpravda/scormpack/internal/tui"
	"github.com/romanpravda/scormpack/internal/ui"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

var buildCmd = &cobra.Command{
	Use:   "build <source>",
	Short: "Build a SCORM package from a content directory",
	Long: `Build writes imsmanifest.xml and the schema definition files into <source>
and zips the directory into <destination>/<package-filename>.zip.

Configuration is layered, lowest priority first:
  1. scormpack.yaml in <source>
  2. SCORMPACK_* environment variables (.env and --env-file are loaded first)
  3. command-line flags

After zipping, the generated files are removed from <source> again. Use
--no-zip to keep them and skip the archive.

Examples:
  # SCORM 1.2 package in ./dist/intro1.zip
  scormpack build ./course --title "Intro" --identifier intro1 --scorm-version 1.2 -d ./dist

  # 2004 4th Edition, values from scormpack.yaml, overwrite without asking
  scormpack build ./course --force

  # Prepare the directory for an LMS that imports folders
  scormpack build ./course --no-zip`,
	Args:              RequireSourcePath,
	ValidArgsFunction: completeDirectories,
	RunE:              runBuild,
}

type buildFlagValues struct {
	title, identifier, scormVersion, destination, organization string
	masteryScore                                               int
	startingPage, packageFilename                              string
	randomFilename, noZip, simplified, force                   bool
	metadataDescription                                        string
	entryIdentifier, catalog, lifecycleVersion, classification string
	exclude, envFiles                                          []string
	timeout                                                    time.Duration
}

var buildFlags buildFlagValues

func init() {
	rootCmd.AddCommand(buildCmd)

	registerConfigFlags(buildCmd.Flags())
	registerBuildOnlyFlags(buildCmd.Flags())

	_ = buildCmd.RegisterFlagCompletionFunc("scorm-version", completeVersions)
}

func registerBuildOnlyFlags(f *pflag.FlagSet) {
	f.BoolVar(&buildFlags.noZip, "no-zip", false, "Leave the generated files in <source> and skip the archive")
	f.BoolVar(&buildFlags.force, "force", false, "Overwrite an existing archive without asking")
	f.DurationVar(&buildFlags.timeout, "timeout", 5*time.Minute, "Abort the build after this long")
}

// registerConfigFlags adds the flags that feed a PackageConfig. build and
// manifest share them so both resolve configuration alike.
func registerConfigFlags(f *pflag.FlagSet) {
	f.StringVar(&buildFlags.title, "title", "", "Course title (required)")
	f.StringVar(&buildFlags.identifier, "identifier", "", "Course identifier; item and resource ids derive from it (required)")
	f.StringVar(&buildFlags.scormVersion, "scorm-version", "",
		"SCORM version (required)\n"+
			"Accepted: 1.2, 2004.3, \"2004 3th Edition\", scorm20043rdedition,\n"+
			"2004.4, \"2004 4th Edition\", scorm20044thedition")
	f.StringVarP(&buildFlags.destination, "destination", "d", "", "Directory receiving the archive (required)")
	f.StringVar(&buildFlags.organization, "organization", "", "Default organization name")
	f.IntVar(&buildFlags.masteryScore, "mastery-score", scormpack.DefaultMasteryScore, "Passing score in percent (0-100)")
	f.StringVar(&buildFlags.startingPage, "starting-page", scormpack.DefaultStartingPage, "Launch page of the SCO")
	f.StringVar(&buildFlags.packageFilename, "package-filename", "", "Archive name without .zip (default: identifier)")
	f.BoolVar(&buildFlags.randomFilename, "random-filename", false, "Name the archive with a random UUID")
	f.StringVar(&buildFlags.metadataDescription, "metadata-description", "",
		"Description embedded in 2004 4th Edition manifests\n"+
			"(default: \"Build Date: MM.DD.YYYY; Technology: html;\")")
	f.StringVar(&buildFlags.entryIdentifier, "entry-identifier", scormpack.DefaultEntryIdentifier, "LOM metadata entry identifier")
	f.StringVar(&buildFlags.catalog, "catalog", scormpack.DefaultCatalogValue, "LOM metadata catalog")
	f.StringVar(&buildFlags.lifecycleVersion, "lifecycle-version", scormpack.DefaultLifeCycleVersion, "LOM metadata lifecycle version")
	f.StringVar(&buildFlags.classification, "classification", scormpack.DefaultClassification, "LOM metadata classification purpose")
	f.BoolVar(&buildFlags.simplified, "simplified", false, "Use the reduced 2004 4th Edition manifest layout")
	f.StringArrayVar(&buildFlags.exclude, "exclude", nil,
		"Glob of content files to leave out (repeatable)\n"+
			"Matched against slash-separated paths relative to <source>; ** crosses directories")
	f.StringArrayVar(&buildFlags.envFiles, "env-file", nil, "Load SCORMPACK_* variables from a .env file (repeatable, later files win)")
}

// buildPackageConfig layers scormpack.yaml, the environment and explicitly set
// flags into one PackageConfig. Flag defaults never override the lower layers.
func buildPackageConfig(cmd *cobra.Command, sourcePath string, verbose bool) (scormpack.PackageConfig, error) {
	cfg := scormpack.PackageConfig{Source: sourcePath}

	projectCfg, err := loadProjectConfig(sourcePath)
	if err != nil {
		return scormpack.PackageConfig{}, err
	}
	if projectCfg != nil {
		projectCfg.Apply(&cfg, sourcePath)
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %s from %s\n", config.ConfigFileName, sourcePath)
		}
	}

	env, err := config.Environment(buildFlags.envFiles)
	if err != nil {
		return scormpack.PackageConfig{}, err
	}
	if err := config.ApplyEnv(&cfg, env); err != nil {
		return scormpack.PackageConfig{}, err
	}
	if verbose && len(env) > 0 {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Applied %d SCORMPACK_* variable(s)\n", len(env))
	}

	applyBuildFlags(cmd, &cfg)
	return cfg, nil
}

func applyBuildFlags(cmd *cobra.Command, cfg *scormpack.PackageConfig) {
	changed := cmd.Flags().Changed

	strs := []struct {
		name string
		dst  *string
		val  string
	}{
		{"title", &cfg.Title, buildFlags.title},
		{"identifier", &cfg.Identifier, buildFlags.identifier},
		{"scorm-version", &cfg.Version, buildFlags.scormVersion},
		{"destination", &cfg.Destination, buildFlags.destination},
		{"organization", &cfg.Organization, buildFlags.organization},
		{"starting-page", &cfg.StartingPage, buildFlags.startingPage},
		{"package-filename", &cfg.PackageFilename, buildFlags.packageFilename},
		{"metadata-description", &cfg.MetadataDescription, buildFlags.metadataDescription},
		{"entry-identifier", &cfg.Metadata.EntryIdentifier, buildFlags.entryIdentifier},
		{"catalog", &cfg.Metadata.CatalogValue, buildFlags.catalog},
		{"lifecycle-version", &cfg.Metadata.LifeCycleVersion, buildFlags.lifecycleVersion},
		{"classification", &cfg.Metadata.Classification, buildFlags.classification},
	}
	for _, s := range strs {
		if changed(s.name) {
			*s.dst = s.val
		}
	}

	if changed("mastery-score") {
		cfg.SetMasteryScore(buildFlags.masteryScore)
	}
	if changed("random-filename") {
		cfg.RandomFilename = buildFlags.randomFilename
	}
	if changed("no-zip") {
		zip := !buildFlags.noZip
		cfg.CreateZipArchive = &zip
	}
	if changed("simplified") {
		cfg.Simplified = buildFlags.simplified
	}
	if changed("force") {
		cfg.Force = buildFlags.force
	}
	cfg.Exclude = append(cfg.Exclude, buildFlags.exclude...)
}

// loadProjectConfig returns nil if scormpack.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// selectApprover picks how an existing archive is handled: --force replaces
// it, a terminal gets a prompt, anything else replaces it as scripted builds
// always have.
func selectApprover(force, verbose bool) scormpack.Approver {
	switch {
	case force:
		return ui.NewForcedApprover(verbose)
	case tui.IsInteractive():
		return ui.NewInteractiveApprover(verbose)
	default:
		return ui.NewNonInteractiveApprover()
	}
}

func newPackageService(approver scormpack.Approver, verbose bool) *services.PackageService {
	return services.NewPackageService(
		filesystem.NewOSFileSystem(),
		definitions.Assets(),
		approver,
		logging.NewConsoleLogger(verbose),
		scormpack.SystemClock{},
	)
}

func runBuild(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	verbose := getVerboseFlag(cmd)

	cfg, err := buildPackageConfig(cmd, sourcePath, verbose)
	if err != nil {
		return err
	}

	svc := newPackageService(selectApprover(cfg.Force, verbose), verbose)

	ctx, cancel := context.WithTimeout(context.Background(), buildFlags.timeout)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling build...")
			cancel()
		case <-ctx.Done():
		}
	}()

	result, err := svc.BuildPackage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] SCORM %s, %d content file(s) (%d bytes), manifest sha256 %s\n",
			result.Version.DisplayName(), result.FileCount, result.ContentBytes, result.ManifestChecksum)
		if result.ArchiveChecksum != "" {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Archive sha256 %s\n", result.ArchiveChecksum)
		}
	}

	// Output path goes to stdout for pipeline consumption.
	fmt.Fprintln(cmd.OutOrStdout(), result.OutputPath)
	return nil
}
