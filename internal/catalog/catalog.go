// Package catalog defines the logo badges shown on the wall. Items are
// immutable values; each renders to a fixed-size Tile without configuration.
package catalog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	// GlyphRows is the number of glyph rows inside a badge.
	GlyphRows = 3
	// InnerWidth is the number of columns inside a badge border.
	InnerWidth = 10
	// TileWidth and TileHeight are the outer badge dimensions.
	TileWidth  = InnerWidth + 2
	TileHeight = GlyphRows + 3
)

// Renderable produces a visual unit. Implementations take no parameters and
// cannot fail.
type Renderable interface {
	Render() Tile
}

// Tile is a rendered badge: plain text rows of equal width plus the colors
// the marquee paints them with.
type Tile struct {
	Rows       []string
	Color      string
	Background string
}

// Width is the display width of the widest row.
func (t Tile) Width() int {
	w := 0
	for _, r := range t.Rows {
		if rw := ansi.StringWidth(r); rw > w {
			w = rw
		}
	}
	return w
}

// Height is the number of rows.
func (t Tile) Height() int { return len(t.Rows) }

// String renders the tile with its colors applied.
func (t Tile) String() string {
	style := lipgloss.NewStyle()
	if t.Color != "" {
		style = style.Foreground(lipgloss.Color(t.Color))
	}
	if t.Background != "" {
		style = style.Background(lipgloss.Color(t.Background))
	}
	rows := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = style.Render(r)
	}
	return strings.Join(rows, "\n")
}

// Item is one technology logo.
type Item struct {
	ID         string
	Name       string
	Color      string
	Background string
	Glyph      []string
}

// Render draws the bordered badge: glyph rows followed by the name.
func (i Item) Render() Tile {
	rows := make([]string, 0, TileHeight)
	rows = append(rows, "╭"+strings.Repeat("─", InnerWidth)+"╮")
	for r := 0; r < GlyphRows; r++ {
		line := ""
		if r < len(i.Glyph) {
			line = i.Glyph[r]
		}
		rows = append(rows, "│"+center(line, InnerWidth)+"│")
	}
	rows = append(rows, "│"+center(i.Name, InnerWidth)+"│")
	rows = append(rows, "╰"+strings.Repeat("─", InnerWidth)+"╯")
	return Tile{Rows: rows, Color: i.Color, Background: i.Background}
}

func (i Item) String() string { return i.Name }

// center truncates s to width and pads both sides to exactly width columns.
func center(s string, width int) string {
	s = ansi.Truncate(strings.TrimRight(s, " "), width, "")
	w := ansi.StringWidth(s)
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// Names returns the display names of items in order.
func Names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
