// Package theme models the light/dark signal the wall reacts to, the palettes
// derived from it, and the sources that produce it (config, terminal
// background, a watched theme file).
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode is the resolved light/dark signal. Unset is styled as Light.
type Mode int

const (
	Unset Mode = iota
	Light
	Dark
)

// Parse maps a config or theme-file value to a Mode. Anything other than
// "light" or "dark" (including "auto" and "system") is Unset.
func Parse(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light
	case "dark":
		return Dark
	default:
		return Unset
	}
}

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "unset"
	}
}

// IsDark reports whether m selects dark styling.
func (m Mode) IsDark() bool { return m == Dark }

// Toggle flips between light and dark. Unset toggles to Dark since it is
// displayed as light.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Detect resolves Unset against the terminal background. Explicit modes are
// returned unchanged.
func Detect(m Mode) Mode {
	if m != Unset {
		return m
	}
	if lipgloss.HasDarkBackground() {
		return Dark
	}
	return Light
}

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	darkGradient  = RGB{17, 17, 17}
	lightGradient = RGB{255, 255, 255}
)

// GradientColor is the color lane edges fade into for the given mode.
func GradientColor(m Mode) RGB {
	if m.IsDark() {
		return darkGradient
	}
	return lightGradient
}
