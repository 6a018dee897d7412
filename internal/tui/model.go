package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/benplan/benplan/internal/calculation"
	"github.com/benplan/benplan/internal/config"
	"github.com/benplan/benplan/internal/domain"
)

// keyMap defines the bundle browser key bindings.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Scenario key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings for the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Scenario, k.Help, k.Quit}
}

// FullHelp returns the bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Scenario},
		{k.Help, k.Quit},
	}
}

var defaultKeys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous bundle"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next bundle"),
	),
	Scenario: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "toggle worst case"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// loadedMsg carries the engine output once the input file has been
// processed.
type loadedMsg struct {
	resp     domain.BundleResponse
	analyses []domain.PlanAnalysis
	err      error
}

// Model is the bundle browser state.
type Model struct {
	inputPath string

	resp     *domain.BundleResponse
	analyses []domain.PlanAnalysis
	keys     []string // present bundle keys, display order
	selected int

	showWorstCase bool

	width  int
	height int

	keymap keyMap
	help   help.Model

	err error
}

// NewModel creates a bundle browser for an input file.
func NewModel(inputPath string) Model {
	return Model{
		inputPath: inputPath,
		keymap:    defaultKeys,
		help:      help.New(),
	}
}

// Init kicks off input loading.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd parses the input file and runs the engine.
func (m Model) loadCmd() tea.Cmd {
	path := m.inputPath
	return func() tea.Msg {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(path)
		if err != nil {
			return loadedMsg{err: err}
		}

		engine := calculation.NewRecommendationEngineWithRates(input.EffectiveRates())
		resp, err := engine.Recommend(&input.Profile, input.Plans, input.Prescriptions)
		if err != nil {
			return loadedMsg{err: err}
		}

		return loadedMsg{
			resp:     resp,
			analyses: engine.AnalyzePlans(&input.Profile, input.Plans, input.Prescriptions),
		}
	}
}

// selectedBundle returns the currently highlighted bundle, or nil before
// loading finishes.
func (m *Model) selectedBundle() *domain.BundleRecommendation {
	if m.resp == nil || len(m.keys) == 0 {
		return nil
	}
	return m.resp.Bundles.Get(m.keys[m.selected])
}

// analysisFor finds the per-plan analysis backing a bundle's plan.
func (m *Model) analysisFor(planID string) *domain.PlanAnalysis {
	for i := range m.analyses {
		if m.analyses[i].Plan.ID == planID {
			return &m.analyses[i]
		}
	}
	return nil
}
