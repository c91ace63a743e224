package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/appwall/internal/tui/widgets"
)

const (
	headerRows  = 2
	laneSpacing = 1
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.Render(m.width, m.height)
}

// Render draws one frame at the given size. A height of zero or less uses
// the natural height of the page.
func (m Model) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	st := stylesFor(m.mode)

	header := st.heading.Render(ansi.Truncate(m.cfg.UI.Heading, width, "…"))
	body := m.renderLanes(width)
	body = widgets.Callout(body, widgets.Card(m.cfg.UI.Callout, st.card), width, lipgloss.Height(body))
	footer := renderHelp(m, st, width)

	view := strings.Join([]string{header, "", body, "", footer}, "\n")
	if height > 0 {
		view = widgets.Fit(view, width, height)
	}
	return view
}

func (m Model) renderLanes(width int) string {
	rows := make([]string, 0, len(m.strips)*2)
	for i, s := range m.strips {
		if i > 0 {
			for k := 0; k < laneSpacing; k++ {
				rows = append(rows, "")
			}
		}
		rows = append(rows, s.Render(width))
	}
	return strings.Join(rows, "\n")
}

func renderHelp(m Model, st styles, width int) string {
	parts := make([]string, 0, 4)
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, st.key.Render(h.Key)+" "+st.helpDesc.Render(h.Desc))
	}
	parts = append(parts, st.helpDesc.Render(m.mode.String()))
	return ansi.Truncate(strings.Join(parts, st.helpDesc.Render(" · ")), width, "")
}

// laneAt maps a screen row to a lane index, or -1 outside every lane.
func (m Model) laneAt(y int) int {
	top := headerRows
	for i, s := range m.strips {
		if y >= top && y < top+s.Height() {
			return i
		}
		top += s.Height() + laneSpacing
	}
	return -1
}
