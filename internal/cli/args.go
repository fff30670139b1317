package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireSourcePath validates that exactly one <source> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireSourcePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <source>

Usage: %s

Example:
  %s ./course --title "Intro" --identifier intro1 --scorm-version 1.2 -d ./dist`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireTargetPath validates that exactly one <target_path> argument is provided.
func RequireTargetPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <target_path>

Usage: %s

Examples:
  %s .           # Current directory
  %s ./mycourse  # Subdirectory

Use '%s --list' to see available templates`, cmd.UseLine(), cmd.CommandPath(), cmd.CommandPath(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
