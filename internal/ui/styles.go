package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorSecondary = lipgloss.Color("#87CEEB") // Sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red
	colorWarning   = lipgloss.Color("#FFD93D") // Yellow
	colorSuccess   = lipgloss.Color("#6BCF7F") // Green
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	// Tab bar styles
	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	// Condition badge styles, keyed by badge label
	badgeStyles = map[string]lipgloss.Style{
		"Small":  lipgloss.NewStyle().Foreground(colorMuted).Bold(true),
		"Okay":   lipgloss.NewStyle().Foreground(colorSecondary).Bold(true),
		"Good":   lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		"Firing": lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
	}

	// Wind relation styles
	offshoreStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	onshoreStyle  = lipgloss.NewStyle().Foreground(colorDanger)
	sideStyle     = lipgloss.NewStyle().Foreground(colorWarning)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Section header styles
	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)
)

func badgeStyle(label string) lipgloss.Style {
	if s, ok := badgeStyles[label]; ok {
		return s
	}
	return mutedStyle
}

func relationStyle(rel string) lipgloss.Style {
	switch rel {
	case "offshore":
		return offshoreStyle
	case "onshore":
		return onshoreStyle
	default:
		return sideStyle
	}
}
