package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/romanpravda/scormpack/internal/definitions"
	"github.com/romanpravda/scormpack/internal/files/filesystem"
	"github.com/romanpravda/scormpack/internal/logging"
	"github.com/romanpravda/scormpack/internal/tui"
	"github.com/romanpravda/scormpack/pkg/scormpack"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List supported SCORM versions",
	Long: `List the SCORM versions scormpack can build, the strings accepted by
--scorm-version for each, and the definition files shipped with the package.`,
	Args: cobra.NoArgs,
	RunE: runVersions,
}

var versionsPlain bool

func init() {
	rootCmd.AddCommand(versionsCmd)
	versionsCmd.Flags().BoolVar(&versionsPlain, "plain", false, "Print tab-separated rows without styling")
}

func runVersions(cmd *cobra.Command, args []string) error {
	copier := definitions.NewCopier(definitions.Assets(), filesystem.NewMemoryFileSystem("/"), logging.NewNullLogger())

	var rows [][]string
	for _, v := range scormpack.SupportedVersions() {
		files, err := copier.Files(v)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			v.String(),
			v.DisplayName(),
			strings.Join(v.Aliases(), ", "),
			fmt.Sprintf("%d", len(files)),
		})
	}

	out := cmd.OutOrStdout()
	if versionsPlain || !tui.IsInteractive() {
		for _, r := range rows {
			fmt.Fprintln(out, strings.Join(r, "\t"))
		}
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.TableHeaderStyle
			}
			return tui.TableCellStyle
		}).
		Headers("VERSION", "NAME", "ACCEPTED AS", "DEFINITION FILES").
		Rows(rows...)

	fmt.Fprintln(out, t.Render())
	return nil
}
