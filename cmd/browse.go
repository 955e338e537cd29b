package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leonardomso/problemgrid/internal/ui"
)

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:   "browse [dir]",
	Short: "Browse problem records in an interactive TUI",
	Long: `Launch a terminal UI listing every problem in natural order.

Type / to fuzzy-search, f to cycle filters (all, with link, without link,
warnings), v to switch between the grid and tile variants, and r to rescan
the directory. The panel under the list shows every field of the selected
problem, its resolved solution link and any warning for its file.

Examples:
  problemgrid browse
  problemgrid browse docs/problems --variant=tile`,
	Args: cobra.MaximumNArgs(1),
	Run:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, args []string) {
	v, err := resolveVariant(variantName)
	exitOnError(err, "Invalid flags")

	ext, err := NewExtension(getDirArg(args, problemsDir), nil)
	exitOnError(err, "")

	p := tea.NewProgram(ui.New(ext, ext.Options().ProblemsDir, v), tea.WithAltScreen())
	_, err = p.Run()
	exitOnError(err, "Error running TUI")
}
