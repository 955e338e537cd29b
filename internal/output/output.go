// Package output provides formatting and file writing for problem listings.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leonardomso/problemgrid/internal/helpers"
	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
)

// Format represents an output format type.
type Format string

const (
	// FormatTable outputs a human-readable text table.
	FormatTable Format = "table"
	// FormatJSON outputs as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs as YAML.
	FormatYAML Format = "yaml"
	// FormatTOML outputs as TOML.
	FormatTOML Format = "toml"
	// FormatMarkdown outputs as a Markdown report.
	FormatMarkdown Format = "markdown"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatTable),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTOML),
		string(FormatMarkdown),
	}
}

// IsValidFormat checks if a format string is valid.
func IsValidFormat(s string) bool {
	switch Format(strings.ToLower(s)) {
	case FormatTable, FormatJSON, FormatYAML, FormatTOML, FormatMarkdown:
		return true
	default:
		return false
	}
}

// Entry is one problem as it appears in a listing, with its solution link
// already resolved for the variant.
type Entry struct {
	ID         string
	Title      string
	Source     string
	Difficulty string
	Tags       string
	Link       string
	Solution   string
	Path       string
}

// Summary holds aggregate counts for a listing.
type Summary struct {
	Problems    int
	WithLink    int
	Sources     int
	Diagnostics int
}

// Report contains all data needed for output formatting.
type Report struct {
	GeneratedAt time.Time
	Dir         string
	Variant     string
	Entries     []Entry
	Diagnostics []problem.Diagnostic

	// Stats is included in structured output when set.
	Stats map[string]any
}

// NewReport builds a report from loaded problems. The problems are expected
// to be sorted already; their order is kept.
func NewReport(
	dir string,
	variant render.Variant,
	conv render.Conventions,
	problems []problem.Problem,
	diags []problem.Diagnostic,
) *Report {
	entries := make([]Entry, 0, len(problems))
	for _, p := range problems {
		entries = append(entries, Entry{
			ID:         p.ID,
			Title:      p.Title,
			Source:     p.Source,
			Difficulty: p.Difficulty,
			Tags:       p.Tags,
			Link:       p.Link,
			Solution:   conv.SolutionURL(p),
			Path:       p.Path,
		})
	}
	return &Report{
		GeneratedAt: time.Now(),
		Dir:         dir,
		Variant:     variant.String(),
		Entries:     entries,
		Diagnostics: diags,
	}
}

// Summary computes aggregate counts.
func (r *Report) Summary() Summary {
	s := Summary{
		Problems:    len(r.Entries),
		Diagnostics: len(r.Diagnostics),
	}
	sources := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		if e.Link != "" {
			s.WithLink++
		}
		sources = append(sources, e.Source)
	}
	s.Sources = helpers.CountUniqueStrings(sources)
	return s
}

// Formatter is the interface that output formatters implement.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// GetFormatter returns the appropriate formatter for a format.
func GetFormatter(format Format) (Formatter, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatTable:
		return &TableFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatTOML:
		return &TOMLFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// FormatReport formats a report using the specified format.
func FormatReport(report *Report, format Format) ([]byte, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	return formatter.Format(report)
}

// InferFormat determines the output format from a filename extension.
func InferFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".txt":
		return FormatTable, nil
	default:
		return "", fmt.Errorf(
			"cannot infer format from extension %q (supported: .json, .yaml, .yml, .toml, .md, .markdown, .txt)",
			ext,
		)
	}
}

// WriteToFile writes a formatted report to a file.
func WriteToFile(report *Report, filename string) error {
	format, err := InferFormat(filename)
	if err != nil {
		return err
	}

	data, err := FormatReport(report, format)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
