// Package marquee turns an ordered list of tiles into an endlessly scrolling
// terminal strip with faded edges.
package marquee

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/theme"
)

// CellWidthPx converts pixel-based speeds and widths to terminal columns.
const CellWidthPx = 8

// Direction is the way content travels across the strip.
type Direction int

const (
	Right Direction = iota
	Left
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Config controls a strip. Speed is pixels per second and GradientWidth is
// pixels; both are converted with CellWidthPx.
type Config struct {
	Direction     Direction
	Speed         float64
	Gradient      bool
	GradientWidth int
	GradientColor theme.RGB
	PauseOnHover  bool
	PauseOnClick  bool
	Delay         time.Duration
	Gap           int
}

type cell struct {
	r            rune
	cont         bool // trailing column of a wide rune
	fg, bg       colorful.Color
	hasFg, hasBg bool
}

// Strip is one scrolling row of tiles.
type Strip struct {
	cfg    Config
	grid   [][]cell
	period int
	offset float64
	waited time.Duration
	paused bool
}

// New lays tiles out left to right, separated by cfg.Gap blank columns.
func New(tiles []catalog.Tile, cfg Config) *Strip {
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	s := &Strip{cfg: cfg}
	height := 0
	for _, t := range tiles {
		height = max(height, t.Height())
	}
	if height == 0 {
		return s
	}
	s.grid = make([][]cell, height)
	for _, t := range tiles {
		s.appendTile(t, height)
	}
	s.period = len(s.grid[0])
	return s
}

func (s *Strip) appendTile(t catalog.Tile, height int) {
	fg, fgErr := colorful.Hex(t.Color)
	bg, bgErr := colorful.Hex(t.Background)
	w, h := t.Width(), t.Height()
	for row := 0; row < height; row++ {
		line := ""
		if row < h {
			line = t.Rows[row]
		}
		col := 0
		for _, r := range line {
			rw := ansi.StringWidth(string(r))
			if rw <= 0 {
				continue
			}
			inside := row > 0 && row < h-1 && col > 0 && col < w-1
			c := cell{r: r, fg: fg, hasFg: fgErr == nil, bg: bg, hasBg: bgErr == nil && inside}
			s.grid[row] = append(s.grid[row], c)
			for k := 1; k < rw; k++ {
				cc := c
				cc.cont = true
				s.grid[row] = append(s.grid[row], cc)
			}
			col += rw
		}
		for ; col < w; col++ {
			inside := row > 0 && row < h-1 && col > 0 && col < w-1
			s.grid[row] = append(s.grid[row], cell{r: ' ', bg: bg, hasBg: bgErr == nil && inside})
		}
		for g := 0; g < s.cfg.Gap; g++ {
			s.grid[row] = append(s.grid[row], cell{r: ' '})
		}
	}
}

// Config returns the strip configuration.
func (s *Strip) Config() Config { return s.cfg }

// Height is the number of terminal rows the strip occupies.
func (s *Strip) Height() int {
	if len(s.grid) == 0 {
		return 1
	}
	return len(s.grid)
}

// Period is the width in columns of one pass of the content.
func (s *Strip) Period() int { return s.period }

// Offset is the current scroll position in columns, within [0, Period).
func (s *Strip) Offset() int { return int(s.offset) }

// Paused reports whether the strip is held by a hover or click.
func (s *Strip) Paused() bool { return s.paused }

// Hover pauses while the pointer is over the strip, if PauseOnHover is set.
func (s *Strip) Hover(over bool) {
	if s.cfg.PauseOnHover {
		s.paused = over
	}
}

// Click toggles the pause, if PauseOnClick is set.
func (s *Strip) Click() {
	if s.cfg.PauseOnClick {
		s.paused = !s.paused
	}
}

// Advance moves the content by the distance covered in dt. Nothing moves
// until Delay has elapsed.
func (s *Strip) Advance(dt time.Duration) {
	if dt <= 0 || s.paused || s.period == 0 {
		return
	}
	if s.waited < s.cfg.Delay {
		s.waited += dt
		if s.waited <= s.cfg.Delay {
			return
		}
		dt = s.waited - s.cfg.Delay
	}
	cols := s.cfg.Speed / CellWidthPx * dt.Seconds()
	s.offset = math.Mod(s.offset+cols, float64(s.period))
}

// Render draws the visible window of the strip at the given width.
func (s *Strip) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if s.period == 0 {
		return strings.Repeat(" ", width)
	}
	shift := int(s.offset)
	fade := 0
	if s.cfg.Gradient {
		fade = int(math.Ceil(float64(s.cfg.GradientWidth) / CellWidthPx))
	}
	edge := colorful.Color{
		R: float64(s.cfg.GradientColor.R) / 255,
		G: float64(s.cfg.GradientColor.G) / 255,
		B: float64(s.cfg.GradientColor.B) / 255,
	}

	rows := make([]string, len(s.grid))
	for r, line := range s.grid {
		cells := make([]cell, width)
		for x := 0; x < width; x++ {
			src := x + shift
			if s.cfg.Direction == Right {
				src = x - shift
			}
			c := line[mod(src, s.period)]
			if c.cont && x == 0 {
				c = cell{r: ' ', bg: c.bg, hasBg: c.hasBg}
			}
			if !c.cont && x == width-1 && ansi.StringWidth(string(c.r)) > 1 {
				c.r = ' '
			}
			if d := min(x, width-1-x); d < fade {
				t := float64(d+1) / float64(fade+1)
				c.fg = edge.BlendRgb(c.fg, t)
				c.bg = edge.BlendRgb(c.bg, t)
			}
			cells[x] = c
		}
		rows[r] = paint(cells)
	}
	return strings.Join(rows, "\n")
}

// paint renders runs of equally colored cells with one style each.
func paint(cells []cell) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && sameColors(cells[i], cells[start]) {
			continue
		}
		var run strings.Builder
		for _, c := range cells[start:i] {
			if !c.cont {
				run.WriteRune(c.r)
			}
		}
		b.WriteString(styleFor(cells[start]).Render(run.String()))
		start = i
	}
	return b.String()
}

func sameColors(a, b cell) bool {
	if a.hasFg != b.hasFg || a.hasBg != b.hasBg {
		return false
	}
	if a.hasFg && a.fg.Hex() != b.fg.Hex() {
		return false
	}
	return !a.hasBg || a.bg.Hex() == b.bg.Hex()
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
