package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/romanpravda/scormpack/internal/ui"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <source>",
	Short: "Print the manifest a build would write",
	Long: `Render imsmanifest.xml for <source> and print it to stdout without touching
the filesystem. Configuration is resolved exactly as for 'scormpack build';
--destination is not required.

Examples:
  scormpack manifest ./course --scorm-version 2004.4 --title Intro --identifier intro1
  scormpack manifest ./course --metadata > preview.xml`,
	Args:              RequireSourcePath,
	ValidArgsFunction: completeDirectories,
	RunE:              runManifest,
}

var (
	manifestWithMetadata bool
	manifestListFiles    bool
)

func init() {
	rootCmd.AddCommand(manifestCmd)

	registerConfigFlags(manifestCmd.Flags())
	_ = manifestCmd.RegisterFlagCompletionFunc("scorm-version", completeVersions)

	manifestCmd.Flags().BoolVar(&manifestWithMetadata, "metadata", false, "Also print metadata.xml (2004 4th Edition only)")
	manifestCmd.Flags().BoolVar(&manifestListFiles, "files", false, "Print the listed content files instead of the manifest")
}

func runManifest(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]
	verbose := getVerboseFlag(cmd)

	cfg, err := buildPackageConfig(cmd, sourcePath, verbose)
	if err != nil {
		return err
	}

	preview, err := newPackageService(ui.NewNonInteractiveApprover(), verbose).Preview(cfg)
	if err != nil {
		return fmt.Errorf("manifest failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if manifestListFiles {
		for _, f := range preview.Files {
			fmt.Fprintln(out, f)
		}
		return nil
	}

	fmt.Fprint(out, preview.Manifest)
	if manifestWithMetadata {
		if preview.Metadata == "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "SCORM %s packages have no metadata document\n", preview.Version.DisplayName())
			return nil
		}
		fmt.Fprintln(out, "---")
		fmt.Fprint(out, preview.Metadata)
	}
	return nil
}
