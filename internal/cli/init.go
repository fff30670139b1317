package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/romanpravda/scormpack/internal/logging"
	"github.com/romanpravda/scormpack/internal/scaffold"
	"github.com/romanpravda/scormpack/internal/tui"
	"github.com/romanpravda/scormpack/internal/tui/wizards"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

var initCmd = &cobra.Command{
	Use:   "init <target_path>",
	Short: "Initialize a new course directory",
	Long: `Initialize a course content root with a scormpack.yaml project file and a
launch page.

In a terminal, a short wizard asks for the title, SCORM version and template.
Otherwise (or with --no-wizard) the values come from the flags.

Target directory must be empty or non-existent.

Examples:
  scormpack init ./intro
  scormpack init ./intro --title "Intro" --scorm-version 2004.4 --no-wizard
  scormpack init --list`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

var (
	initTemplate     string
	initTitle        string
	initIdentifier   string
	initScormVersion string
	initList         bool
	initNoWizard     bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", scaffold.DefaultTemplate, "Template to use (basic, api-wrapper)")
	initCmd.Flags().StringVar(&initTitle, "title", "", "Course title (default: directory name)")
	initCmd.Flags().StringVar(&initIdentifier, "identifier", "", "Course identifier (default: derived from the title)")
	initCmd.Flags().StringVar(&initScormVersion, "scorm-version", "1.2", "SCORM version written to scormpack.yaml")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available templates")
	initCmd.Flags().BoolVar(&initNoWizard, "no-wizard", false, "Never start the interactive wizard")

	_ = initCmd.RegisterFlagCompletionFunc("template", completeTemplateNames)
	_ = initCmd.RegisterFlagCompletionFunc("scorm-version", completeVersions)
}

func runInit(cmd *cobra.Command, args []string) error {
	if initList {
		return runTemplatesList(cmd)
	}
	if err := RequireTargetPath(cmd, args); err != nil {
		return err
	}

	targetPath := args[0]
	verbose := getVerboseFlag(cmd)

	title := initTitle
	if title == "" {
		title = defaultProjectName(targetPath)
	}

	project := scaffold.Project{Name: title, Identifier: initIdentifier}
	template := initTemplate

	if !initNoWizard && tui.IsInteractive() && !cmd.Flags().Changed("scorm-version") {
		result, err := wizards.RunInitWizard(targetPath, title)
		if err != nil {
			return fmt.Errorf("init wizard failed: %w", err)
		}
		if result.Cancelled {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return nil
		}
		project.Name = result.Name
		project.Version = result.Version
		template = result.Template
	} else {
		v, err := scormpack.NormalizeVersion(initScormVersion)
		if err != nil {
			return err
		}
		project.Version = v
	}

	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	if !slices.Contains(templates, template) {
		return fmt.Errorf("invalid template '%s'. Available templates: %v\n\nUse 'scormpack init --list' for descriptions", template, templates)
	}

	scaffolder := scaffold.NewScaffolder(logging.NewConsoleLogger(verbose))
	if err := scaffolder.CreateProject(project, template, targetPath); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	errOut := cmd.ErrOrStderr()
	tree, err := scaffold.BuildFileTree(targetPath)
	if err != nil {
		fmt.Fprintf(errOut, "\n%s Course initialized in '%s' using template '%s'\n\n", tui.SymbolCheck, targetPath, template)
	} else {
		fmt.Fprintf(errOut, "\n%s Course initialized using template '%s'\n\n", tui.SymbolCheck, template)
		fmt.Fprintln(errOut, "Created structure:")
		fmt.Fprint(errOut, tree)
	}

	fmt.Fprintln(errOut, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(errOut, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(errOut, "  scormpack build .")

	return nil
}

// defaultProjectName uses the target directory name, or the working
// directory's name for "." and "..".
func defaultProjectName(targetPath string) string {
	name := filepath.Base(targetPath)
	if name == "." || name == ".." {
		cwd, err := os.Getwd()
		if err != nil {
			return "course"
		}
		name = filepath.Base(cwd)
	}
	return name
}

func runTemplatesList(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available templates:")
	fmt.Fprintln(out)
	for _, t := range wizards.DefaultTemplates() {
		fmt.Fprintf(out, "  %-12s %s\n", t.Name, t.Description)
	}
	return nil
}
