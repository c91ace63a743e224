package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/appwall/internal/theme"
)

type styles struct {
	heading  lipgloss.Style
	card     lipgloss.Style
	key      lipgloss.Style
	helpDesc lipgloss.Style
}

func stylesFor(m theme.Mode) styles {
	p := theme.PaletteFor(m)
	return styles{
		heading: lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			BorderBackground(p.CardBg).
			Background(p.CardBg).
			Foreground(p.CardText).
			Bold(true).
			Padding(2, 6),
		key:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		helpDesc: lipgloss.NewStyle().Foreground(p.Muted),
	}
}
