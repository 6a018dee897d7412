package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		resp := msg.resp
		m.resp = &resp
		m.analyses = msg.analyses
		m.keys = resp.Bundles.Keys()

		// Start on the best-fit bundle.
		for i, k := range m.keys {
			if k == resp.BestFit {
				m.selected = i
				break
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Left):
			if len(m.keys) > 0 {
				m.selected = (m.selected - 1 + len(m.keys)) % len(m.keys)
			}
			return m, nil

		case key.Matches(msg, m.keymap.Right):
			if len(m.keys) > 0 {
				m.selected = (m.selected + 1) % len(m.keys)
			}
			return m, nil

		case key.Matches(msg, m.keymap.Scenario):
			m.showWorstCase = !m.showWorstCase
			return m, nil

		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	return m, nil
}
