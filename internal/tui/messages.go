package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/appwall/internal/theme"
)

type tickMsg time.Time

// ThemeMsg reports a new light/dark signal. Each one recomposes the lanes.
type ThemeMsg struct {
	Mode theme.Mode
}

type themeClosedMsg struct{}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(1, fps)), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForTheme blocks on the external theme signal and delivers one change.
func waitForTheme(ch <-chan theme.Mode) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		m, ok := <-ch
		if !ok {
			return themeClosedMsg{}
		}
		return ThemeMsg{Mode: m}
	}
}
