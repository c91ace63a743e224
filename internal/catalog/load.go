package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrEmptyCatalog is returned when a catalog file defines no logos.
	ErrEmptyCatalog = errors.New("catalog has no logos")
	// ErrUnknownItem is returned when a name does not match any logo.
	ErrUnknownItem = errors.New("unknown logo")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// logoEntry is one [[logo]] table in a catalog file.
type logoEntry struct {
	ID         string   `toml:"id"`
	Name       string   `toml:"name"`
	Color      string   `toml:"color"`
	Background string   `toml:"background"`
	Glyph      []string `toml:"glyph"`
}

type catalogFile struct {
	Logo []logoEntry `toml:"logo"`
}

// LoadFile reads a TOML catalog:
//
//	[[logo]]
//	id = "tokio"
//	name = "Tokio"
//	color = "#6f42c1"
//	background = "#f2ecfa"
//	glyph = ["▗▛▀▜▖", "█ ▄ █", "▝▙▄▟▘"]
func LoadFile(path string) ([]Item, error) {
	var f catalogFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return fromEntries(f.Logo)
}

// Parse decodes a TOML catalog from a string.
func Parse(data string) ([]Item, error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return fromEntries(f.Logo)
}

func fromEntries(entries []logoEntry) ([]Item, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	items := make([]Item, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for n, e := range entries {
		name := strings.TrimSpace(e.Name)
		id := strings.ToLower(strings.TrimSpace(e.ID))
		if id == "" {
			id = strings.ToLower(name)
		}
		if id == "" {
			return nil, fmt.Errorf("logo %d: id or name required", n+1)
		}
		if name == "" {
			name = e.ID
		}
		if seen[id] {
			return nil, fmt.Errorf("logo %d: duplicate id %q", n+1, id)
		}
		seen[id] = true
		for _, c := range []string{e.Color, e.Background} {
			if c != "" && !hexColor.MatchString(c) {
				return nil, fmt.Errorf("logo %q: invalid color %q", id, c)
			}
		}
		if len(e.Glyph) > GlyphRows {
			return nil, fmt.Errorf("logo %q: glyph has %d rows, max %d", id, len(e.Glyph), GlyphRows)
		}
		items = append(items, Item{
			ID:         id,
			Name:       name,
			Color:      e.Color,
			Background: e.Background,
			Glyph:      e.Glyph,
		})
	}
	return items, nil
}
