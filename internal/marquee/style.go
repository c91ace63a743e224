package marquee

import "github.com/charmbracelet/lipgloss"

func styleFor(c cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.hasFg {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if c.hasBg {
		st = st.Background(lipgloss.Color(c.bg.Hex()))
	}
	return st
}
