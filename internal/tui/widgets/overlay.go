package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Card renders text inside the call-out box style.
func Card(text string, style lipgloss.Style) string {
	return style.Render(text)
}

// Callout fits base to width x height and composites card on top of it,
// centered both ways. Base rows outside the card are kept intact.
func Callout(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := Fit(base, width, height)
	cardLines := strings.Split(card, "\n")
	cardWidth := maxLineWidth(cardLines)
	if cardWidth <= 0 || card == "" {
		return canvas
	}
	x := max(0, (width-cardWidth)/2)
	y := max(0, (height-len(cardLines))/2)
	return overlayAt(canvas, cardLines, x, y, width)
}

// Fit pads or truncates s to exactly height lines of width columns.
func Fit(s string, width, height int) string {
	lines := fitLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// overlayAt writes overlay lines onto base starting at column x, row y.
// Rows and columns past the canvas are clipped.
func overlayAt(base string, overlay []string, x, y, width int) string {
	rows := strings.Split(base, "\n")
	overlayWidth := maxLineWidth(overlay)
	for i, line := range overlay {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		target := padRight(rows[row], width)

		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		mid := padRight(line, min(overlayWidth, width-x))
		end := x + ansi.StringWidth(mid)
		right := dropColumns(target, end)
		if gap := width - end - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}
		rows[row] = left + mid + right
	}
	return strings.Join(rows, "\n")
}

func fitLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// dropColumns removes the first cols display columns of s, keeping styles.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

// padRight truncates s to width and pads it with spaces to exactly width.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
