package marquee

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/theme"
)

func twoTiles() []catalog.Tile {
	return []catalog.Tile{
		{Rows: []string{"ab", "cd"}, Color: "#ff0000"},
		{Rows: []string{"ef", "gh"}, Color: "#00ff00", Background: "#0000ff"},
	}
}

func plain(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

// oneColPerSecond scrolls a column per second.
const oneColPerSecond = CellWidthPx

func TestLayoutWithGap(t *testing.T) {
	s := New(twoTiles(), Config{Gap: 1})
	require.Equal(t, 6, s.Period())
	require.Equal(t, 2, s.Height())
	assert.Equal(t, []string{"ab ef ", "cd gh "}, plain(s.Render(6)))
}

func TestScrollLeft(t *testing.T) {
	s := New(twoTiles(), Config{Direction: Left, Speed: oneColPerSecond, Gap: 1})
	s.Advance(2 * time.Second)
	assert.Equal(t, 2, s.Offset())
	assert.Equal(t, " ef ab", plain(s.Render(6))[0])
}

func TestScrollRight(t *testing.T) {
	s := New(twoTiles(), Config{Direction: Right, Speed: oneColPerSecond, Gap: 1})
	s.Advance(2 * time.Second)
	assert.Equal(t, "f ab e", plain(s.Render(6))[0])
}

func TestOffsetWraps(t *testing.T) {
	s := New(twoTiles(), Config{Speed: oneColPerSecond, Gap: 1})
	s.Advance(7 * time.Second)
	assert.Equal(t, 1, s.Offset())
}

func TestDelayHoldsStrip(t *testing.T) {
	s := New(twoTiles(), Config{Speed: oneColPerSecond, Delay: time.Second})
	s.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, s.Offset())
	s.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, s.Offset())
}

func TestPauseFlags(t *testing.T) {
	s := New(twoTiles(), Config{Speed: oneColPerSecond})
	s.Hover(true)
	s.Click()
	assert.False(t, s.Paused(), "pause flags are off")

	s = New(twoTiles(), Config{Speed: oneColPerSecond, PauseOnHover: true, PauseOnClick: true})
	s.Hover(true)
	require.True(t, s.Paused())
	s.Advance(3 * time.Second)
	assert.Equal(t, 0, s.Offset())
	s.Hover(false)
	s.Click()
	assert.True(t, s.Paused())
	s.Click()
	assert.False(t, s.Paused())
}

func TestEmptyStrip(t *testing.T) {
	s := New(nil, Config{Speed: 20})
	s.Advance(time.Second)
	assert.Equal(t, 1, s.Height())
	assert.Equal(t, 0, s.Period())
	assert.Equal(t, "     ", s.Render(5))
	assert.Equal(t, "", s.Render(0))
}

func TestRenderKeepsWidth(t *testing.T) {
	tiles := make([]catalog.Tile, 0, 3)
	for _, it := range catalog.Default()[:3] {
		tiles = append(tiles, it.Render())
	}
	s := New(tiles, Config{
		Direction:     Left,
		Speed:         20,
		Gradient:      true,
		GradientWidth: 50,
		GradientColor: theme.RGB{R: 17, G: 17, B: 17},
		Gap:           2,
	})
	for _, width := range []int{1, 7, 20, s.Period(), 3 * s.Period()} {
		for step := 0; step < 5; step++ {
			s.Advance(700 * time.Millisecond)
			lines := strings.Split(s.Render(width), "\n")
			require.Len(t, lines, catalog.TileHeight)
			for _, line := range lines {
				assert.Equal(t, width, ansi.StringWidth(line), "width %d", width)
			}
		}
	}
}

func TestWideRunesKeepWidth(t *testing.T) {
	s := New([]catalog.Tile{{Rows: []string{"世a"}}}, Config{Speed: oneColPerSecond})
	require.Equal(t, 3, s.Period())
	for i := 0; i < 6; i++ {
		for _, width := range []int{1, 2, 3, 4} {
			assert.Equal(t, width, ansi.StringWidth(s.Render(width)), "offset %d width %d", s.Offset(), width)
		}
		s.Advance(time.Second)
	}
}

func TestUnevenTilesArePadded(t *testing.T) {
	s := New([]catalog.Tile{{Rows: []string{"a"}}, {Rows: []string{"bb", "cc", "dd"}}}, Config{})
	require.Equal(t, 3, s.Height())
	assert.Equal(t, []string{"abb", " cc", " dd"}, plain(s.Render(3)))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "left", Left.String())
}
