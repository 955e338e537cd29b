package output

import (
	"fmt"
	"strings"

	"github.com/leonardomso/problemgrid/internal/helpers"
)

// MarkdownFormatter formats reports as Markdown.
type MarkdownFormatter struct{}

// Format implements Formatter.
func (*MarkdownFormatter) Format(report *Report) ([]byte, error) {
	// ~150 bytes per row plus the header block
	var b strings.Builder
	b.Grow(len(report.Entries)*150 + 500)

	s := report.Summary()

	b.WriteString("# Problem Listing\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s  \n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Directory:** `%s`  \n", report.Dir))
	b.WriteString(fmt.Sprintf("**Variant:** %s\n\n", report.Variant))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count |\n")
	b.WriteString("|--------|-------|\n")
	b.WriteString(fmt.Sprintf("| Problems | %d |\n", s.Problems))
	b.WriteString(fmt.Sprintf("| With link | %d |\n", s.WithLink))
	b.WriteString(fmt.Sprintf("| Sources | %d |\n", s.Sources))
	if s.Diagnostics > 0 {
		b.WriteString(fmt.Sprintf("| Warnings | %d |\n", s.Diagnostics))
	}
	b.WriteString("\n")

	if len(report.Entries) > 0 {
		b.WriteString(fmt.Sprintf("## Problems (%d)\n\n", len(report.Entries)))
		b.WriteString("| ID | Title | Source | Difficulty | Solution |\n")
		b.WriteString("|----|-------|--------|------------|----------|\n")
		for _, e := range report.Entries {
			title := helpers.EscapeTableCell(e.Title)
			if e.Link != "" {
				title = fmt.Sprintf("[%s](%s)", title, e.Link)
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				helpers.EscapeTableCell(e.ID),
				title,
				helpers.EscapeTableCell(e.Source),
				helpers.EscapeTableCell(e.Difficulty),
				e.Solution))
		}
		b.WriteString("\n")
	}

	if len(report.Diagnostics) > 0 {
		b.WriteString(fmt.Sprintf("## Warnings (%d)\n\n", len(report.Diagnostics)))
		for _, d := range report.Diagnostics {
			msg := ""
			if d.Err != nil {
				msg = d.Err.Error()
			}
			b.WriteString(fmt.Sprintf("- `%s` (%s): %s\n", d.Path, d.Kind, helpers.EscapeTableCell(msg)))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}
