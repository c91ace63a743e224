package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

// Palette holds the page colors for one mode.
type Palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
	Border   lipgloss.Color
	Page     lipgloss.Color
	CardBg   lipgloss.Color
	CardText lipgloss.Color
}

// Mocha is used for dark mode. Page matches the dark gradient color so lane
// edges fade into the background.
var Mocha = Palette{
	Text:     "#cdd6f4",
	Muted:    "#a6adc8",
	Accent:   "#f5c2e7",
	Border:   "#585b70",
	Page:     "#111111",
	CardBg:   "#181825",
	CardText: "#ffffff",
}

// Latte is used for light mode and for Unset.
var Latte = Palette{
	Text:     "#4c4f69",
	Muted:    "#6c6f85",
	Accent:   "#ea76cb",
	Border:   "#acb0be",
	Page:     "#ffffff",
	CardBg:   "#eff1f5",
	CardText: "#000000",
}

// PaletteFor returns the palette for m.
func PaletteFor(m Mode) Palette {
	if m.IsDark() {
		return Mocha
	}
	return Latte
}

// Colors returns every color in p, for validation.
func (p Palette) Colors() []lipgloss.Color {
	return []lipgloss.Color{p.Text, p.Muted, p.Accent, p.Border, p.Page, p.CardBg, p.CardText}
}
