package catalog

import "slices"

var defaultItems = []Item{
	{
		ID: "bash", Name: "Bash", Color: "#4eaa25", Background: "#eef7e9",
		Glyph: []string{"▛▀▀▀▀▜", "▌ >_ ▐", "▙▄▄▄▄▟"},
	},
	{
		ID: "bytes", Name: "Bytes", Color: "#c5642b", Background: "#fbf0e9",
		Glyph: []string{"01101001", "10100110", "01011100"},
	},
	{
		ID: "curl", Name: "Curl", Color: "#0f7ec4", Background: "#e8f3fa",
		Glyph: []string{"╭─╮  ╱ ╱", "│ │ ╱ ╱ ", "╰─╯╱ ╱  "},
	},
	{
		ID: "hyper", Name: "Hyper", Color: "#7b5bd6", Background: "#f1edfb",
		Glyph: []string{"  ▗▟▘", " ▟██▛", " ▟▘  "},
	},
	{
		ID: "leptos", Name: "Leptos", Color: "#ef3939", Background: "#fde9e9",
		Glyph: []string{"▐▌  ▄▄ ", "▐▌ ▐▙▟▌", "▐▙▄▟▙▄▄"},
	},
	{
		ID: "mio", Name: "Mio", Color: "#2e8b8b", Background: "#e6f4f4",
		Glyph: []string{"▗▖  ▗▖", "▐▛▖▗▜▌", "▐▌▝▘▐▌"},
	},
	{
		ID: "python", Name: "Python", Color: "#3776ab", Background: "#fff8d6",
		Glyph: []string{"▄▀▀▄   ", "▀▄▄▀▄  ", "   ▀▄▄▀"},
	},
	{
		ID: "rspack", Name: "Rspack", Color: "#f93920", Background: "#feebe8",
		Glyph: []string{" ▄▀▄ ", "█▄▄▄█", " ▀▄▀ "},
	},
	{
		ID: "serde", Name: "Serde", Color: "#b7410e", Background: "#f8ece6",
		Glyph: []string{"▗▄▄▄▖", "▐▄▄▄ ", "▗▄▄▟▌"},
	},
	{
		ID: "tantivy", Name: "Tantivy", Color: "#d4880f", Background: "#fcf3e6",
		Glyph: []string{"▄▄▄▄▄", "  █  ", "  █  "},
	},
	{
		ID: "tokio", Name: "Tokio", Color: "#6f42c1", Background: "#f2ecfa",
		Glyph: []string{"▗▛▀▜▖", "█ ▄ █", "▝▙▄▟▘"},
	},
	{
		ID: "tower", Name: "Tower", Color: "#95ca51", Background: "#f7fee7",
		Glyph: []string{"╭───╮", "│ o │", "╰───╯"},
	},
	{
		ID: "tracing", Name: "Tracing", Color: "#d04f3e", Background: "#fbece9",
		Glyph: []string{"▁▂▃▅▇", "─┼─┼─", "▇▅▃▂▁"},
	},
}

// Default returns the built-in catalog in display order. The returned slice
// is a copy; callers may reorder it freely.
func Default() []Item {
	return slices.Clone(defaultItems)
}
