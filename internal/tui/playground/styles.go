package playground

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
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

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(20)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	TokenStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Background(lipgloss.Color("#374151")).
			Padding(0, 1).
			MarginRight(1)

	EmptyTokenStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true)

	OptionOnStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	OptionOffStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)
)

// RenderTokens renders tokens as a row of badges; empty tokens are shown
// as a placeholder so they stay visible.
func RenderTokens(tokens []string) string {
	if len(tokens) == 0 {
		return EmptyTokenStyle.Render("(no tokens)")
	}

	badges := make([]string, len(tokens))
	for i, token := range tokens {
		if token == "" {
			badges[i] = TokenStyle.Inherit(EmptyTokenStyle).Render(`""`)
			continue
		}
		badges[i] = TokenStyle.Render(token)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}
