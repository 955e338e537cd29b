package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leonardomso/problemgrid/internal/helpers"
)

// TableFormatter formats reports as a rounded text table for terminals.
type TableFormatter struct{}

// Format implements Formatter.
func (*TableFormatter) Format(report *Report) ([]byte, error) {
	writer := table.NewWriter()
	writer.SetStyle(table.StyleRounded)
	writer.Style().Format.Footer = text.FormatDefault
	writer.AppendHeader(table.Row{"#", "ID", "TITLE", "SOURCE", "DIFFICULTY", "SOLUTION"})

	for i, e := range report.Entries {
		writer.AppendRow(table.Row{
			i + 1,
			e.ID,
			helpers.TruncateText(e.Title, 40),
			helpers.TruncateText(e.Source, 24),
			e.Difficulty,
			helpers.TruncateURL(e.Solution, 40),
		})
	}

	s := report.Summary()
	writer.AppendFooter(table.Row{"", "", fmt.Sprintf("%d problems", s.Problems), fmt.Sprintf("%d sources", s.Sources)})

	var b strings.Builder
	b.WriteString(writer.Render())
	b.WriteString("\n")

	if len(report.Diagnostics) > 0 {
		b.WriteString(fmt.Sprintf("\n%d warning(s):\n", len(report.Diagnostics)))
		for _, d := range report.Diagnostics {
			b.WriteString("  " + d.String() + "\n")
		}
	}

	return []byte(b.String()), nil
}
