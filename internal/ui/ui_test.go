package ui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
	"github.com/leonardomso/problemgrid/internal/scanner"
)

type dirSource struct {
	dir string
}

func (s dirSource) Loader(v render.Variant) *problem.Loader {
	return problem.NewLoader(s.dir, scanner.Options{}, render.DefaultConventions(v).Defaults)
}

func (dirSource) Conventions(v render.Variant) render.Conventions {
	return render.DefaultConventions(v)
}

func writeProblems(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"toi10.md": "---\ntitle: Ten\n---\n",
		"toi2.md":  "---\ntitle: Two\nlink: https://example.com/2\n---\n",
		"bad.md":   "---\ntitle: [unclosed\n---\n",
		"index.md": "# index\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func loaded(t *testing.T, m Model, v render.Variant) Model {
	t.Helper()
	msg := LoadProblemsCmd(m.source, v)()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestLoadProblemsCmd(t *testing.T) {
	t.Parallel()

	t.Run("Sorted", func(t *testing.T) {
		t.Parallel()
		msg := LoadProblemsCmd(dirSource{dir: writeProblems(t)}, render.GridList)()
		loadedMsg, ok := msg.(ProblemsLoadedMsg)
		require.True(t, ok)
		require.NoError(t, loadedMsg.Err)

		ids := make([]string, 0, len(loadedMsg.Problems))
		for _, p := range loadedMsg.Problems {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"bad", "toi2", "toi10"}, ids)
		assert.Len(t, loadedMsg.Diagnostics, 1)
	})

	t.Run("MissingDir", func(t *testing.T) {
		t.Parallel()
		msg := LoadProblemsCmd(dirSource{dir: filepath.Join(t.TempDir(), "nope")}, render.GridList)()
		loadedMsg := msg.(ProblemsLoadedMsg)
		assert.True(t, errors.Is(loadedMsg.Err, problem.ErrProblemsDirNotFound))
	})
}

func TestModel_ProblemsLoaded(t *testing.T) {
	t.Parallel()

	m := New(dirSource{dir: writeProblems(t)}, "problems", render.GridList)
	assert.Equal(t, stateLoading, m.state)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = sized.(Model)

	m = loaded(t, m, render.GridList)
	assert.Equal(t, stateResults, m.state)
	require.Len(t, m.items, 3)
	assert.Equal(t, "/problems/toi2/", m.items[1].Solution)
	assert.Len(t, m.items[0].Warnings, 1)
	assert.Contains(t, m.View(), "Loaded 3 problem(s)")
}

func TestModel_FilterCycle(t *testing.T) {
	t.Parallel()

	m := loaded(t, New(dirSource{dir: writeProblems(t)}, "problems", render.GridList), render.GridList)

	press := func(m Model, k string) Model {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
		return next.(Model)
	}

	m = press(m, "f")
	assert.Equal(t, filterLinked, m.filter)
	assert.Len(t, m.filteredItems(), 1)

	m = press(m, "f")
	assert.Equal(t, filterUnlinked, m.filter)
	assert.Len(t, m.filteredItems(), 2)

	m = press(m, "f")
	assert.Equal(t, filterWarnings, m.filter)
	require.Len(t, m.filteredItems(), 1)
	assert.Equal(t, "bad", m.filteredItems()[0].Problem.ID)

	m = press(m, "f")
	assert.Equal(t, filterAll, m.filter)
}

func TestModel_VariantSwitch(t *testing.T) {
	t.Parallel()

	m := loaded(t, New(dirSource{dir: writeProblems(t)}, "problems", render.GridList), render.GridList)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	m = next.(Model)
	assert.Equal(t, render.TileCard, m.variant)
	assert.Equal(t, stateLoading, m.state)
	assert.NotNil(t, cmd)

	m = loaded(t, m, render.TileCard)
	assert.Equal(t, "/problems/toi2", m.items[1].Solution)
	assert.Equal(t, "?", m.items[2].Problem.Source)
}

func TestModel_LoadError(t *testing.T) {
	t.Parallel()

	m := New(dirSource{dir: filepath.Join(t.TempDir(), "missing")}, "missing", render.GridList)
	m = loaded(t, m, render.GridList)
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m := New(dirSource{dir: t.TempDir()}, "x", render.GridList)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
	assert.Equal(t, "Goodbye!\n", next.(Model).View())
}

func TestProblemItem(t *testing.T) {
	t.Parallel()

	p := problem.Problem{
		ID: "toi2", Title: "Bridges", Source: "TOI 2", Difficulty: "3",
		Tags: "graph", Link: "https://example.com", Path: "p/toi2.md",
	}
	items := ProblemsToItems([]problem.Problem{p},
		[]problem.Diagnostic{{Path: "p/other.md", Kind: problem.DiagnosticRead, Err: errors.New("x")}},
		render.DefaultConventions(render.GridList))
	require.Len(t, items, 1)
	item := items[0]

	assert.Empty(t, item.Warnings)
	assert.Contains(t, item.FilterValue(), "Bridges")
	assert.Contains(t, item.FilterValue(), "graph")
	assert.Equal(t, "toi2  Bridges", item.Title())
	assert.Equal(t, "TOI 2 | difficulty 3 | graph", item.Description())

	detail := item.DetailView()
	assert.Contains(t, detail, "/problems/toi2/")
	assert.Contains(t, detail, "https://example.com")
	assert.Contains(t, detail, "p/toi2.md")
}

func TestFilterTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "All", filterAll.String())
	assert.Equal(t, "Warnings", filterWarnings.String())
	assert.Equal(t, "Unknown", filterType(99).String())
	assert.Equal(t, filterAll, filterWarnings.Next())
}
