package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary    = lipgloss.Color("#7D56F4")
	colorSuccess    = lipgloss.Color("#04B575")
	colorWarning    = lipgloss.Color("#FFB454")
	colorForeground = lipgloss.Color("#FAFAFA")
	colorMuted      = lipgloss.Color("#626262")
	colorBorder     = lipgloss.Color("#3C3C3C")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	selectedCardStyle = cardStyle.
				BorderForeground(colorPrimary)

	bestFitBadgeStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSuccess)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorForeground)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorForeground)

	netCostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5F87"))
)
