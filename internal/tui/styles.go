package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#2563EB")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(1, 2).
			Width(cardWidth)

	FocusedCardStyle = CardStyle.
				BorderForeground(colorPrimary)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	BarStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

func RenderTitle(title string) string {
	return TitleStyle.Render(title)
}

func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
