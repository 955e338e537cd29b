package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
)

// Source supplies per-variant loaders and conventions to the browser.
type Source interface {
	Loader(v render.Variant) *problem.Loader
	Conventions(v render.Variant) render.Conventions
}

// LoadProblemsCmd returns a command that loads and sorts the problems for v.
func LoadProblemsCmd(src Source, v render.Variant) tea.Cmd {
	return func() tea.Msg {
		problems, diags, err := src.Loader(v).LoadSorted()
		return ProblemsLoadedMsg{
			Err:         err,
			Variant:     v,
			Problems:    problems,
			Diagnostics: diags,
		}
	}
}
