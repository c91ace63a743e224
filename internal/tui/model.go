// Package tui is the Bubble Tea shell around the lane composer: it owns the
// theme signal, recomposes on every change, and drives the marquee strips.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/config"
	"github.com/jask/appwall/internal/lanes"
	"github.com/jask/appwall/internal/marquee"
	"github.com/jask/appwall/internal/theme"
)

// Options wires a Model.
type Options struct {
	Config  config.Config
	Catalog []catalog.Item
	Mode    theme.Mode
	Themes  <-chan theme.Mode
	Source  lanes.Source
	Logger  *zap.Logger
}

// Model is the wall.
type Model struct {
	cfg      config.Config
	composer *lanes.Composer
	log      *zap.Logger
	keys     keyMap
	themes   <-chan theme.Mode
	mode     theme.Mode
	set      lanes.LaneSet
	strips   []*marquee.Strip
	width    int
	height   int
	last     time.Time
	quitting bool
}

// New composes the first lane set, as on mount.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	copts := []lanes.Option{
		lanes.WithGradientWidth(opts.Config.Lanes.GradientWidth),
		lanes.WithSpeed(opts.Config.Lanes.Speed),
	}
	if opts.Source != nil {
		copts = append(copts, lanes.WithSource(opts.Source))
	}
	m := Model{
		cfg:      opts.Config,
		composer: lanes.NewComposer(opts.Catalog, copts...),
		log:      log,
		keys:     newKeyMap(),
		themes:   opts.Themes,
		mode:     opts.Mode,
		width:    100,
		height:   40,
	}
	m.recompose("mount")
	return m
}

// Mode returns the current theme signal.
func (m Model) Mode() theme.Mode { return m.mode }

// Lanes returns the current arrangement.
func (m Model) Lanes() lanes.LaneSet { return m.set }

// Strips returns the marquee strips for the current arrangement.
func (m Model) Strips() []*marquee.Strip { return m.strips }

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.cfg.UI.FPS), waitForTheme(m.themes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := time.Second / time.Duration(max(1, m.cfg.UI.FPS))
		if !m.last.IsZero() {
			dt = now.Sub(m.last)
		}
		m.last = now
		for _, s := range m.strips {
			s.Advance(dt)
		}
		return m, tick(m.cfg.UI.FPS)

	case ThemeMsg:
		m = m.setMode(msg.Mode)
		return m, waitForTheme(m.themes)

	case themeClosedMsg:
		m.themes = nil
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Theme):
			m = m.setMode(m.mode.Toggle())
			return m, nil
		case key.Matches(msg, m.keys.Shuffle):
			m.recompose("shuffle")
			return m, nil
		}
	}
	return m, nil
}

// setMode applies a theme signal. Any change recomposes from scratch; a
// repeated value is ignored.
func (m Model) setMode(mode theme.Mode) Model {
	if mode == m.mode {
		return m
	}
	m.mode = mode
	m.recompose("theme")
	return m
}

func (m *Model) recompose(reason string) {
	m.set = m.composer.Compose(m.cfg.Lanes.Count, m.mode)
	m.strips = buildStrips(m.set, m.cfg.Lanes.Gap)
	m.log.Debug("lanes composed",
		zap.String("reason", reason),
		zap.Int("lanes", len(m.set)),
		zap.Int("items", len(m.composer.Catalog())),
		zap.Stringer("theme", m.mode))
}

// buildStrips hands each lane to the marquee engine.
func buildStrips(set lanes.LaneSet, gap int) []*marquee.Strip {
	strips := make([]*marquee.Strip, len(set))
	for i, lane := range set {
		tiles := make([]catalog.Tile, len(lane.Items))
		for k, it := range lane.Items {
			tiles[k] = it.Render()
		}
		strips[i] = marquee.New(tiles, StripConfig(lane, gap))
	}
	return strips
}

// StripConfig translates a lane's direction and style into marquee settings.
func StripConfig(lane lanes.Lane, gap int) marquee.Config {
	dir := marquee.Right
	if lane.Direction == lanes.Reverse {
		dir = marquee.Left
	}
	return marquee.Config{
		Direction:     dir,
		Speed:         lane.Style.Speed,
		Gradient:      lane.Style.GradientEnabled,
		GradientWidth: lane.Style.GradientWidth,
		GradientColor: lane.Style.GradientColor,
		PauseOnHover:  lane.Style.PauseOnHover,
		PauseOnClick:  lane.Style.PauseOnClick,
		Delay:         lane.Style.Delay,
		Gap:           gap,
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	idx := m.laneAt(msg.Y)
	for i, s := range m.strips {
		s.Hover(i == idx)
	}
	if idx >= 0 && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.strips[idx].Click()
	}
}
