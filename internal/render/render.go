// Package render turns problem records into the HTML card fragments that
// replace marker tags in a document.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/leonardomso/problemgrid/internal/problem"
)

// Renderer produces the fragment for one variant. Render never fails: records
// carrying only default values still render.
type Renderer struct {
	Variant     Variant
	Conventions Conventions
}

// New creates a Renderer using the variant's default conventions.
func New(v Variant) *Renderer {
	return &Renderer{Variant: v, Conventions: DefaultConventions(v)}
}

// Render returns the container fragment for problems, in the order given.
func (r *Renderer) Render(problems []problem.Problem) string {
	if r.Variant == TileCard {
		return r.renderTiles(problems)
	}
	return r.renderGrid(problems)
}

// renderGrid emits the "grid cards" list. Each card is a Markdown list item, so
// the container carries the markdown attribute for the host to expand it.
func (r *Renderer) renderGrid(problems []problem.Problem) string {
	rows := make([]string, 0, len(problems)*4)
	for _, p := range problems {
		title := html.EscapeString(p.Title)
		if p.HasLink() {
			rows = append(rows, fmt.Sprintf(
				`-   <a href="%s" target="_blank" rel="noopener noreferrer">**%s**</a>`,
				html.EscapeString(p.Link), title))
		} else {
			rows = append(rows, "-   **"+title+"**")
		}
		rows = append(rows,
			"    **Source**: "+html.EscapeString(p.Source),
			"    **Difficulty**: "+html.EscapeString(p.Difficulty),
			fmt.Sprintf(
				`    <a href="%s" target="_blank" rel="noopener noreferrer">**View Solution** :material-open-in-new:</a>`,
				html.EscapeString(r.Conventions.SolutionURL(p))),
		)
	}

	var b strings.Builder
	b.Grow(len(problems)*300 + 64)
	b.WriteString(`<div class="` + GridList.ContainerClass() + `" markdown>` + "\n")
	b.WriteString(strings.Join(rows, "\n\n"))
	b.WriteString("\n\n</div>")
	return b.String()
}

// renderTiles emits the "problem-grid" tiles.
func (r *Renderer) renderTiles(problems []problem.Problem) string {
	cards := make([]string, 0, len(problems))
	for _, p := range problems {
		cards = append(cards, r.tile(p))
	}
	return `<div class="` + TileCard.ContainerClass() + `">` + "\n" + strings.Join(cards, "\n") + "\n</div>"
}

func (r *Renderer) tile(p problem.Problem) string {
	var b strings.Builder
	b.Grow(400)

	b.WriteString("\n<div class=\"problem-card\">\n")
	b.WriteString("  <div class=\"header\">\n")
	b.WriteString("    <span class=\"title\">" + html.EscapeString(p.Title) + "</span>\n")
	b.WriteString("    <span class=\"source\">" + html.EscapeString(p.Source) + "</span>\n")
	b.WriteString("  </div>\n")
	b.WriteString("  <details class=\"tags-spoiler\">\n")
	b.WriteString("    <summary>Tags</summary>\n")
	b.WriteString("    <div class=\"tags\">" + html.EscapeString(p.Tags) + "</div>\n")
	b.WriteString("  </details>\n")
	b.WriteString("  <div class=\"view-solution\"><a href=\"" +
		html.EscapeString(r.Conventions.SolutionURL(p)) +
		"\" target=\"_blank\">View Solution</a></div>\n")
	b.WriteString("</div>\n")

	return b.String()
}
