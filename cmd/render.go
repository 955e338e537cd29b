package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leonardomso/problemgrid/internal/extension"
	"github.com/leonardomso/problemgrid/internal/markdown"
	"github.com/leonardomso/problemgrid/internal/stats"
)

// Flag variables for the render command.
var (
	renderOutput     string
	renderHTML       bool
	renderStandalone bool
	renderTitle      string
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Expand problem-list tags in a Markdown document",
	Long: `Read a Markdown document, replace every line containing "!problemlist"
or "!problem_all" with the generated card markup, and write the result.

The problems directory is rescanned for every tag, so a page with two tags
reads it twice. Lines without a tag pass through unchanged.

If no file is given, or the file is "-", the document is read from stdin.

Exit codes:
  0 - Document written
  1 - Problems directory missing, invalid config, or I/O error

Examples:
  problemgrid render docs/index.md
  problemgrid render docs/index.md -o site/index.md
  problemgrid render docs/index.md --html --standalone -o preview.html
  cat page.md | problemgrid render --problems-dir=problems`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"Write the result to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderHTML, "html", false,
		"Convert the expanded document to HTML with goldmark")
	renderCmd.Flags().BoolVar(&renderStandalone, "standalone", false,
		"With --html, wrap the result in a complete HTML page")
	renderCmd.Flags().StringVar(&renderTitle, "title", "",
		"Page title for --standalone (default: input file name)")
}

// renderOptions holds everything renderDocument needs besides the extension.
type renderOptions struct {
	HTML       bool
	Standalone bool
	Title      string

	// Log receives the preprocessor chain when set.
	Log io.Writer
}

// runRender is the main entry point for the render command.
func runRender(cmd *cobra.Command, args []string) {
	perf := stats.New()
	perf.Begin()

	if renderStandalone && !renderHTML {
		exitOnError(fmt.Errorf("--standalone requires --html"), "Invalid flags")
	}

	lc, err := LoadConfig(noConfig)
	exitOnError(err, "")
	ext := extension.New(lc.BuildOptions(problemsDir), perf)

	var log io.Writer
	if verbose {
		log = cmd.ErrOrStderr()
		printConfigSummary(log, lc)
	}

	input, name, err := readInput(cmd.InOrStdin(), args)
	exitOnError(err, "Error reading input")

	title := renderTitle
	if title == "" {
		title = name
	}

	result, err := renderDocument(ext, input, renderOptions{
		HTML:       renderHTML,
		Standalone: renderStandalone,
		Title:      title,
		Log:        log,
	})
	if verbose {
		printDiagnostics(cmd.ErrOrStderr(), ext.Diagnostics())
	}
	exitOnError(err, "Error rendering document")

	exitOnError(writeOutput(cmd.OutOrStdout(), renderOutput, result), "Error writing output")

	perf.Finish()
	printStats(cmd.ErrOrStderr(), perf)
}

// renderDocument runs the tag preprocessors over input and optionally
// converts the result to HTML.
func renderDocument(ext *extension.Extension, input string, opts renderOptions) ([]byte, error) {
	registry, err := extension.NewRegistry(ext)
	if err != nil {
		return nil, err
	}
	if opts.Log != nil {
		printPreprocessors(opts.Log, registry)
	}

	expanded, err := registry.Process(input)
	if err != nil {
		return nil, err
	}

	if !opts.HTML {
		return []byte(expanded), nil
	}

	body, err := markdown.ToHTML([]byte(expanded))
	if err != nil {
		return nil, err
	}
	if opts.Standalone {
		return markdown.Page(opts.Title, body), nil
	}
	return body, nil
}

// readInput reads the document named by args, or stdin when args is empty
// or "-". The returned name is used as the default page title.
func readInput(stdin io.Reader, args []string) (content, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	base := filepath.Base(args[0])
	return string(data), strings.TrimSuffix(base, filepath.Ext(base)), nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}
