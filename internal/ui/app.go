package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leonardomso/problemgrid/internal/problem"
	"github.com/leonardomso/problemgrid/internal/render"
)

// =============================================================================
// STATE MACHINE
// =============================================================================

type appState int

const (
	stateLoading appState = iota // Reading the problems directory
	stateResults                 // Showing problems (list view)
)

// =============================================================================
// FILTER TYPES
// =============================================================================

type filterType int

const (
	filterAll      filterType = iota // Every problem
	filterLinked                     // Problems with a statement link
	filterUnlinked                   // Problems without a statement link
	filterWarnings                   // Problems whose file produced a diagnostic
)

const filterCount = 4

func (f filterType) String() string {
	switch f {
	case filterAll:
		return "All"
	case filterLinked:
		return "With Link"
	case filterUnlinked:
		return "Without Link"
	case filterWarnings:
		return "Warnings"
	default:
		return "Unknown"
	}
}

func (f filterType) Next() filterType {
	return (f + 1) % filterCount
}

func (f filterType) matches(item ProblemItem) bool {
	switch f {
	case filterLinked:
		return item.Problem.HasLink()
	case filterUnlinked:
		return !item.Problem.HasLink()
	case filterWarnings:
		return len(item.Warnings) > 0
	default:
		return true
	}
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the main application model.
type Model struct {
	// State
	state    appState
	quitting bool
	err      error

	// Data
	items       []ProblemItem
	diagnostics []problem.Diagnostic

	// Filter
	filter  filterType
	variant render.Variant

	// Components
	spinner spinner.Model
	list    list.Model
	help    help.Model
	keys    KeyMap

	// UI state
	width    int
	height   int
	showHelp bool

	// Config
	source Source
	dir    string
}

// New creates a Model that browses the problems supplied by src.
// dir is only used for display.
func New(src Source, dir string, v render.Variant) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle()

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.Styles.SelectedTitle = SelectedStyle
	delegate.Styles.SelectedDesc = StatusStyle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Problems"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false) // We use our own help
	l.Styles.Title = TitleStyle

	return Model{
		state:   stateLoading,
		spinner: s,
		list:    l,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		filter:  filterAll,
		variant: v,
		source:  src,
		dir:     dir,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, LoadProblemsCmd(m.source, m.variant))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Reserve space for header, summary, and detail panel
		listHeight := max(msg.Height-16, 5)
		m.list.SetSize(msg.Width, listHeight)
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProblemsLoadedMsg:
		return m.handleProblemsLoaded(msg)
	}

	if m.state == stateResults {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a fuzzy filter every key belongs to the list.
	if m.state == stateResults && m.list.FilterState() == list.Filtering && msg.String() != "ctrl+c" {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.state != stateResults {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.updateListItems()
		return m, nil

	case key.Matches(msg, m.keys.Variant):
		m.variant = nextVariant(m.variant)
		return m.reload()

	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.state = stateLoading
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, LoadProblemsCmd(m.source, m.variant))
}

func (m Model) handleProblemsLoaded(msg ProblemsLoadedMsg) (tea.Model, tea.Cmd) {
	m.state = stateResults
	if msg.Err != nil {
		m.err = msg.Err
		return m, nil
	}
	m.variant = msg.Variant
	m.diagnostics = msg.Diagnostics
	m.items = ProblemsToItems(msg.Problems, msg.Diagnostics, m.source.Conventions(msg.Variant))
	m.updateListItems()
	return m, nil
}

// updateListItems updates the list with filtered problems.
func (m *Model) updateListItems() {
	filtered := m.filteredItems()
	items := make([]list.Item, len(filtered))
	for i, it := range filtered {
		items[i] = it
	}
	m.list.SetItems(items)
}

// filteredItems returns problems matching the current filter, in natural order.
func (m *Model) filteredItems() []ProblemItem {
	if m.filter == filterAll {
		return m.items
	}
	var out []ProblemItem
	for _, it := range m.items {
		if m.filter.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

func nextVariant(v render.Variant) render.Variant {
	variants := render.Variants()
	for i, candidate := range variants {
		if candidate == v {
			return variants[(i+1)%len(variants)]
		}
	}
	return variants[0]
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("problemgrid"))
	b.WriteString("  " + VariantBadge.Render(m.variant.String()))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("Press q to quit"))
		return b.String()
	}

	switch m.state {
	case stateLoading:
		b.WriteString(m.spinner.View() + fmt.Sprintf(" Loading problems from %s...", m.dir))
	case stateResults:
		b.WriteString(m.renderResults())
	}

	if m.showHelp {
		b.WriteString("\n\n" + m.help.View(m.keys))
	} else {
		b.WriteString("\n\n" + m.renderShortHelp())
	}

	return b.String()
}

func (m Model) renderResults() string {
	var b strings.Builder

	linked := 0
	for _, it := range m.items {
		if it.Problem.HasLink() {
			linked++
		}
	}

	b.WriteString(fmt.Sprintf("Loaded %d problem(s) from %s\n\n", len(m.items), m.dir))
	b.WriteString(fmt.Sprintf("%s | %s\n\n",
		SuccessStyle.Render(fmt.Sprintf("✓ %d with link", linked)),
		WarningStyle.Render(fmt.Sprintf("⚠ %d warning(s)", len(m.diagnostics)))))

	if len(m.items) == 0 {
		b.WriteString(MutedStyle.Render("No problem documents found."))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Filter: %s (%d/%d)\n\n",
		SelectedStyle.Render(m.filter.String()),
		len(m.filteredItems()),
		len(m.items)))

	b.WriteString(m.list.View())

	if selected := m.list.SelectedItem(); selected != nil {
		if item, ok := selected.(ProblemItem); ok {
			b.WriteString("\n" + item.DetailView())
		}
	}

	return b.String()
}

func (Model) renderShortHelp() string {
	return HelpStyle.Render("↑/↓ navigate • / search • f filter • v variant • r reload • ? help • q quit")
}
