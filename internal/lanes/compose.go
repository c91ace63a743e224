// Package lanes arranges catalog items into scrolling lanes. Every lane holds
// a full, independently shuffled permutation of the catalog; directions
// alternate by lane index and styling follows the theme.
package lanes

import (
	"time"

	"github.com/jask/appwall/internal/catalog"
	"github.com/jask/appwall/internal/theme"
)

const (
	DefaultLaneCount     = 5
	DefaultGradientWidth = 50
	DefaultSpeed         = 20
)

// Direction is the scroll direction of a lane. Forward moves content to the
// right, Reverse to the left.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// DirectionFor returns Forward for even lane indexes and Reverse for odd ones.
func DirectionFor(index int) Direction {
	if index&1 == 0 {
		return Forward
	}
	return Reverse
}

// StyleContext is the marquee styling shared by every lane of a set.
// GradientWidth is in pixels and Speed in pixels per second.
type StyleContext struct {
	GradientColor   theme.RGB
	GradientEnabled bool
	GradientWidth   int
	Speed           float64
	PauseOnHover    bool
	PauseOnClick    bool
	Delay           time.Duration
}

// Lane is one scrolling row.
type Lane struct {
	Items     []catalog.Item
	Direction Direction
	Style     StyleContext
}

// LaneSet is the full arrangement for one render.
type LaneSet []Lane

// Composer builds lane sets from an injected catalog.
type Composer struct {
	items         []catalog.Item
	src           Source
	gradientWidth int
	speed         float64
}

// Option configures a Composer.
type Option func(*Composer)

// WithSource sets the random source used for shuffling.
func WithSource(src Source) Option {
	return func(c *Composer) {
		if src != nil {
			c.src = src
		}
	}
}

// WithGradientWidth overrides the gradient width constant.
func WithGradientWidth(px int) Option {
	return func(c *Composer) {
		if px > 0 {
			c.gradientWidth = px
		}
	}
}

// WithSpeed overrides the scroll speed constant.
func WithSpeed(pxPerSec float64) Option {
	return func(c *Composer) {
		if pxPerSec > 0 {
			c.speed = pxPerSec
		}
	}
}

// NewComposer returns a composer over items. The slice is not copied and
// must not be mutated afterwards.
func NewComposer(items []catalog.Item, opts ...Option) *Composer {
	c := &Composer{
		items:         items,
		src:           DefaultSource,
		gradientWidth: DefaultGradientWidth,
		speed:         DefaultSpeed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the items the composer arranges.
func (c *Composer) Catalog() []catalog.Item { return c.items }

// Style returns the StyleContext for mode. It depends on nothing else.
func (c *Composer) Style(mode theme.Mode) StyleContext {
	return StyleContext{
		GradientColor:   theme.GradientColor(mode),
		GradientEnabled: true,
		GradientWidth:   c.gradientWidth,
		Speed:           c.speed,
	}
}

// Compose builds laneCount lanes. A laneCount below one uses
// DefaultLaneCount. An empty catalog yields empty lanes.
func (c *Composer) Compose(laneCount int, mode theme.Mode) LaneSet {
	if laneCount < 1 {
		laneCount = DefaultLaneCount
	}
	style := c.Style(mode)
	set := make(LaneSet, laneCount)
	for i := range set {
		perm := Permutation(len(c.items), c.src)
		items := make([]catalog.Item, len(perm))
		for k, idx := range perm {
			items[k] = c.items[idx]
		}
		set[i] = Lane{
			Items:     items,
			Direction: DirectionFor(i),
			Style:     style,
		}
	}
	return set
}

// Compose arranges items with the default source and style constants.
func Compose(items []catalog.Item, laneCount int, mode theme.Mode) LaneSet {
	return NewComposer(items).Compose(laneCount, mode)
}
