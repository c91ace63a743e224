package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Theme   key.Binding
	Shuffle key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Shuffle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "shuffle")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Theme, k.Shuffle, k.Quit}
}
