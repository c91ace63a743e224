package catalog

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Find looks up an item by ID or name, case-insensitively.
func Find(items []Item, name string) (Item, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, it := range items {
		if it.ID == key || strings.ToLower(it.Name) == key {
			return it, true
		}
	}
	return Item{}, false
}

// Select keeps the items named in names, in catalog order. An empty names
// list selects everything.
func Select(items []Item, names []string) ([]Item, error) {
	if len(names) == 0 {
		return items, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		it, ok := Find(items, n)
		if !ok {
			if s := Suggest(items, n); s != "" {
				return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownItem, n, s)
			}
			return nil, fmt.Errorf("%w %q", ErrUnknownItem, n)
		}
		want[it.ID] = true
	}
	out := make([]Item, 0, len(want))
	for _, it := range items {
		if want[it.ID] {
			out = append(out, it)
		}
	}
	return out, nil
}

// Suggest returns the closest item name to name, or "" when nothing is close.
func Suggest(items []Item, name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, it := range items {
		d := levenshtein.ComputeDistance(key, strings.ToLower(it.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = it.Name, d
		}
	}
	limit := max(2, len(key)/3)
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}
