package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/romanpravda/scormpack/internal/scaffold"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// completeTemplateNames provides shell completion for template names.
func completeTemplateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return withPrefix(templates, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeVersions provides shell completion for --scorm-version.
// Only the short canonical forms are offered; the longer aliases still parse.
func completeVersions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var versions []string
	for _, v := range scormpack.SupportedVersions() {
		versions = append(versions, v.String())
	}
	return withPrefix(versions, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

func withPrefix(values []string, prefix string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			matches = append(matches, v)
		}
	}
	return matches
}
