package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = ` ___  ___ ___  _ __ _ __ ___  _ __   __ _  ___| | __
/ __|/ __/ _ \| '__| '_ ` + "`" + ` _ \| '_ \ / _` + "`" + ` |/ __| |/ /
\__ \ (_| (_) | |  | | | | | | |_) | (_| | (__|   <
|___/\___\___/|_|  |_| |_| |_| .__/ \__,_|\___|_|\_\
                             |_|`

var rootCmd = &cobra.Command{
	Use:   "scormpack",
	Short: "SCORM package builder",
	Long: asciiLogo + `

scormpack turns a directory of web content into a SCORM package: it writes
imsmanifest.xml for SCORM 1.2, 2004 3rd Edition or 2004 4th Edition, copies the
schema definition files next to it and zips the result.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Unsupported SCORM version
  12 - Manifest could not be serialized
  13 - File access failed
  14 - User denied archive overwrite`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
