package ui

import (
	"fmt"
	"strings"

	"github.com/leonardomso/problemgrid/internal/helpers"
	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
)

// ProblemItem wraps a problem.Problem to implement list.Item interface.
type ProblemItem struct {
	Problem  problem.Problem
	Solution string
	Warnings []problem.Diagnostic
}

// FilterValue returns the string used for filtering.
// Implements list.Item interface.
func (i ProblemItem) FilterValue() string {
	return i.Problem.ID + " " + i.Problem.Title + " " + i.Problem.Source + " " + i.Problem.Tags
}

// Title returns the main display text for the item.
// Implements list.DefaultItem interface.
func (i ProblemItem) Title() string {
	p := i.Problem
	title := p.ID
	if p.Title != p.ID {
		title = fmt.Sprintf("%s  %s", p.ID, helpers.TruncateText(p.Title, 60))
	}
	if len(i.Warnings) > 0 {
		title += " " + WarningStyle.Render("!")
	}
	return title
}

// Description returns secondary text for the item.
// Implements list.DefaultItem interface.
func (i ProblemItem) Description() string {
	p := i.Problem
	parts := make([]string, 0, 3)
	if p.Source != "" {
		parts = append(parts, helpers.TruncateText(p.Source, 30))
	}
	if p.Difficulty != "" {
		parts = append(parts, "difficulty "+p.Difficulty)
	}
	if p.Tags != "" {
		parts = append(parts, helpers.TruncateText(p.Tags, 40))
	}
	return strings.Join(parts, " | ")
}

// DetailView returns an expanded detail view for the selected item.
func (i ProblemItem) DetailView() string {
	p := i.Problem
	var b strings.Builder

	b.WriteString("┌─ Details ─────────────────────────────────────────────────────────────\n")
	writeField(&b, "ID:", p.ID)
	writeField(&b, "Title:", p.Title)
	writeField(&b, "Source:", p.Source)
	writeField(&b, "Difficulty:", p.Difficulty)
	writeField(&b, "Tags:", p.Tags)

	b.WriteString("│\n")
	if p.HasLink() {
		writeField(&b, "Statement:", p.Link)
	}
	writeField(&b, "Solution:", i.Solution)
	writeField(&b, "File:", p.Path)

	if len(i.Warnings) > 0 {
		b.WriteString("│\n")
		for _, d := range i.Warnings {
			b.WriteString(fmt.Sprintf("│ %s  %s\n",
				WarningBadge.Render(strings.ToUpper(d.Kind)),
				DetailNoteStyle.Render(fmt.Sprint(d.Err))))
		}
	}

	b.WriteString("└────────────────────────────────────────────────────────────────────────\n")

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		value = MutedStyle.Render("(none)")
	}
	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render(label), value))
}

// ProblemsToItems converts sorted problems to ProblemItems, resolving each
// solution link with conv and attaching any diagnostics for the same file.
func ProblemsToItems(
	problems []problem.Problem,
	diags []problem.Diagnostic,
	conv render.Conventions,
) []ProblemItem {
	byPath := make(map[string][]problem.Diagnostic, len(diags))
	for _, d := range diags {
		byPath[d.Path] = append(byPath[d.Path], d)
	}

	items := make([]ProblemItem, len(problems))
	for i, p := range problems {
		items[i] = ProblemItem{
			Problem:  p,
			Solution: conv.SolutionURL(p),
			Warnings: byPath[p.Path],
		}
	}
	return items
}
