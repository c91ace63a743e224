package tui

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/config"
	"github.com/jask/appwall/internal/lanes"
	"github.com/jask/appwall/internal/marquee"
	"github.com/jask/appwall/internal/theme"
)

func newTestModel(t *testing.T, mode theme.Mode) Model {
	t.Helper()
	return New(Options{
		Config:  config.Default(),
		Catalog: catalog.Default(),
		Mode:    mode,
		Source:  rand.New(rand.NewPCG(3, 4)),
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func laneIDs(set lanes.LaneSet) [][]string {
	out := make([][]string, len(set))
	for i, lane := range set {
		for _, it := range lane.Items {
			out[i] = append(out[i], it.ID)
		}
	}
	return out
}

func TestNewComposesOnMount(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	set := m.Lanes()
	require.Len(t, set, 5)
	require.Len(t, m.Strips(), 5)
	for i, lane := range set {
		require.Len(t, lane.Items, 13)
		assert.Equal(t, lanes.DirectionFor(i), lane.Direction)
		assert.Equal(t, theme.RGB{R: 17, G: 17, B: 17}, lane.Style.GradientColor)
	}
}

func TestThemeChangeRecomposes(t *testing.T) {
	m := newTestModel(t, theme.Light)
	before := laneIDs(m.Lanes())

	next, cmd := m.Update(ThemeMsg{Mode: theme.Dark})
	assert.Nil(t, cmd, "no theme channel to wait on")
	updated := next.(Model)
	assert.Equal(t, theme.Dark, updated.Mode())
	assert.Equal(t, theme.RGB{R: 17, G: 17, B: 17}, updated.Lanes()[0].Style.GradientColor)
	assert.NotEqual(t, before, laneIDs(updated.Lanes()))
}

func TestSameThemeKeepsArrangement(t *testing.T) {
	m := newTestModel(t, theme.Light)
	before := laneIDs(m.Lanes())
	next, _ := m.Update(ThemeMsg{Mode: theme.Light})
	assert.Equal(t, before, laneIDs(next.(Model).Lanes()))
}

func TestToggleKey(t *testing.T) {
	m := newTestModel(t, theme.Unset)
	next, _ := m.Update(runes("t"))
	updated := next.(Model)
	assert.Equal(t, theme.Dark, updated.Mode())

	next, _ = updated.Update(runes("t"))
	assert.Equal(t, theme.Light, next.(Model).Mode())
}

func TestShuffleKey(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	before := laneIDs(m.Lanes())
	next, _ := m.Update(runes("r"))
	updated := next.(Model)
	assert.Equal(t, theme.Dark, updated.Mode())
	assert.NotEqual(t, before, laneIDs(updated.Lanes()))
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, next.(Model).View())
}

func TestTickAdvancesStrips(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	t0 := time.Unix(1000, 0)
	next, cmd := m.Update(tickMsg(t0))
	require.NotNil(t, cmd)
	next, _ = next.(Model).Update(tickMsg(t0.Add(time.Second)))
	for i, s := range next.(Model).Strips() {
		assert.Equal(t, 2, s.Offset(), "strip %d", i)
	}
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	lines := strings.Split(next.(Model).View(), "\n")
	require.Len(t, lines, 20)
	for _, line := range lines {
		assert.Equal(t, 60, ansi.StringWidth(line))
	}
}

func TestRenderFrame(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	out := ansi.Strip(m.Render(80, 0))
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Just Works in WASIX", lines[0])
	assert.Contains(t, out, "All the apps you love")
	// heading, blank, 5 lanes of 6 rows with 4 spacers, blank, help
	assert.Len(t, lines, 2+5*catalog.TileHeight+4+2)
	assert.Contains(t, lines[len(lines)-1], "shuffle")
	assert.Contains(t, lines[len(lines)-1], "dark")
}

func TestRenderZeroWidth(t *testing.T) {
	assert.Empty(t, newTestModel(t, theme.Dark).Render(0, 10))
}

func TestWaitForTheme(t *testing.T) {
	assert.Nil(t, waitForTheme(nil))

	ch := make(chan theme.Mode, 1)
	ch <- theme.Dark
	assert.Equal(t, ThemeMsg{Mode: theme.Dark}, waitForTheme(ch)())
	close(ch)
	assert.Equal(t, themeClosedMsg{}, waitForTheme(ch)())
}

func TestThemeChannelDrivesUpdates(t *testing.T) {
	ch := make(chan theme.Mode, 1)
	m := New(Options{Config: config.Default(), Catalog: catalog.Default(), Mode: theme.Light, Themes: ch})

	ch <- theme.Dark
	msg := waitForTheme(ch)()
	next, cmd := m.Update(msg)
	require.NotNil(t, cmd, "keeps waiting for the next change")
	assert.Equal(t, theme.Dark, next.(Model).Mode())

	close(ch)
	next, cmd = next.(Model).Update(cmd())
	assert.Nil(t, cmd)
	assert.Nil(t, next.(Model).themes)
}

func TestLaneAt(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	assert.Equal(t, -1, m.laneAt(0))
	assert.Equal(t, 0, m.laneAt(headerRows))
	assert.Equal(t, -1, m.laneAt(headerRows+catalog.TileHeight))
	assert.Equal(t, 1, m.laneAt(headerRows+catalog.TileHeight+laneSpacing))
	assert.Equal(t, -1, m.laneAt(1000))
}

func TestMouseDoesNotPause(t *testing.T) {
	m := newTestModel(t, theme.Dark)
	next, _ := m.Update(tea.MouseMsg{X: 3, Y: headerRows, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for _, s := range next.(Model).Strips() {
		assert.False(t, s.Paused())
	}
}

func TestStripConfig(t *testing.T) {
	style := lanes.NewComposer(nil).Style(theme.Dark)
	fwd := StripConfig(lanes.Lane{Direction: lanes.Forward, Style: style}, 3)
	rev := StripConfig(lanes.Lane{Direction: lanes.Reverse, Style: style}, 3)

	assert.Equal(t, marquee.Right, fwd.Direction)
	assert.Equal(t, marquee.Left, rev.Direction)
	assert.True(t, fwd.Gradient)
	assert.Equal(t, 50, fwd.GradientWidth)
	assert.Equal(t, 20.0, fwd.Speed)
	assert.Equal(t, theme.RGB{R: 17, G: 17, B: 17}, fwd.GradientColor)
	assert.False(t, fwd.PauseOnHover)
	assert.False(t, fwd.PauseOnClick)
	assert.Zero(t, fwd.Delay)
	assert.Equal(t, 3, fwd.Gap)
}

func TestEmptyCatalogRendersEmptyLanes(t *testing.T) {
	m := New(Options{Config: config.Default(), Mode: theme.Dark})
	for _, lane := range m.Lanes() {
		assert.Empty(t, lane.Items)
	}
	out := m.Render(40, 0)
	assert.True(t, slices.ContainsFunc(strings.Split(out, "\n"), func(l string) bool {
		return strings.Contains(l, "apps you love")
	}))
}
