package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leonardomso/problemgrid/internal/extension"
	"github.com/leonardomso/problemgrid/internal/output"
	"github.com/leonardomso/problemgrid/internal/render"
	"github.com/leonardomso/problemgrid/internal/stats"
)

// Flag variables for the list command.
var (
	listFormat string
	listOutput string
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List problem records in natural order",
	Long: `Load every problem document in a directory and print the records in
the order the card grid would show them, with defaults for the selected
variant applied and the solution link resolved.

If no directory is given, --problems-dir or the config value is used.

Examples:
  problemgrid list                          # Text table
  problemgrid list docs/problems --variant=tile
  problemgrid list --format=json            # JSON to stdout
  problemgrid list --output=problems.toml   # Format inferred from extension

Note: --format and --output are mutually exclusive.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"Output format for stdout: "+strings.Join(output.ValidFormats(), ", ")+" (default table)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "",
		"Write listing to file (format inferred from extension: .json, .yaml, .toml, .md, .txt)")
}

// runList is the main entry point for the list command.
func runList(cmd *cobra.Command, args []string) {
	perf := stats.New()
	perf.Begin()

	exitOnError(validateListFlags(), "Invalid flags")

	v, err := resolveVariant(variantName)
	exitOnError(err, "Invalid flags")

	ext, err := NewExtension(getDirArg(args, problemsDir), perf)
	exitOnError(err, "")

	report, err := buildListReport(ext, v)
	exitOnError(err, "Error loading problems")

	perf.Finish()
	if showStats {
		report.Stats = perf.ToMap()
	}
	if verbose {
		printDiagnostics(cmd.ErrOrStderr(), report.Diagnostics)
	}

	if listOutput != "" {
		exitOnError(output.WriteToFile(report, listOutput), "Error writing file")
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d problem(s) to %s\n", len(report.Entries), listOutput)
	} else {
		format := output.FormatTable
		if listFormat != "" {
			format = output.Format(strings.ToLower(listFormat))
		}
		data, err := output.FormatReport(report, format)
		exitOnError(err, "Error formatting output")
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	}

	printStats(cmd.ErrOrStderr(), perf)
}

// buildListReport loads the records for v and wraps them in a report.
func buildListReport(ext *extension.Extension, v render.Variant) (*output.Report, error) {
	problems, err := ext.Problems(v)
	if err != nil {
		return nil, err
	}
	return output.NewReport(ext.Options().ProblemsDir, v, ext.Conventions(v), problems, ext.Diagnostics()), nil
}

// validateListFlags checks for invalid flag combinations.
func validateListFlags() error {
	if listFormat != "" && listOutput != "" {
		return fmt.Errorf("--format and --output are mutually exclusive; " +
			"use --format for stdout output, or --output for file output")
	}

	if listFormat != "" && !output.IsValidFormat(listFormat) {
		return fmt.Errorf("invalid format %q; valid formats: %s",
			listFormat, strings.Join(output.ValidFormats(), ", "))
	}

	return nil
}
