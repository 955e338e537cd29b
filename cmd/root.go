package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set by main.go via SetVersion.
var version = "dev"

// Flags shared by every subcommand.
var (
	problemsDir string
	variantName string
	noConfig    bool
	verbose     bool
	showStats   bool
)

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "problemgrid",
	Short:   "Expand problem-list tags in Markdown into card grids",
	Version: version,
	Long: `problemgrid is a Markdown preprocessor for documentation sites that
catalogue competitive programming problems.

It reads every problem document in a directory, takes the title, source,
difficulty and tags from each document's YAML (---) or TOML (+++) header,
and replaces the marker tags "!problemlist" and "!problem_all" with HTML
card markup linking to each solution page.

Examples:
  problemgrid render docs/index.md              # Expand tags, print to stdout
  problemgrid render - < page.md > out.md       # Read from stdin
  problemgrid render page.md --html -o page.html
  problemgrid list --format=json                # Dump the sorted records
  problemgrid browse docs/problems              # Launch interactive TUI

Config file (.problemgridrc.yaml):
  problems_dir: docs/problems
  priority: 175
  scan:
    exclude: ["draft-*"]
  defaults:
    grid:
      source: Unknown`,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&problemsDir, "problems-dir", "p", "",
		"Directory of problem documents (default from config, else docs/problems)")
	flags.StringVar(&variantName, "variant", "",
		"Card variant for list and browse: grid or tile (default grid)")
	flags.BoolVar(&noConfig, "no-config", false,
		"Skip loading .problemgridrc.yaml config file")
	flags.BoolVar(&verbose, "verbose", false,
		"Print per-file warnings to stderr")
	flags.BoolVar(&showStats, "stats", false,
		"Show run statistics on stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1) //nolint:revive // deep-exit is acceptable for CLI entry points
	}
}
