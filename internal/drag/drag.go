// Package drag implements press-drag-release interaction for draggable
// pieces: a per-piece state machine, overlap testing against named drop
// targets, the animated return of rejected drops and a surface that hands
// the single pointer to one piece at a time.
package drag

import (
	"time"

	"github.com/vovakirdan/calma/internal/core"
)

// Phase is a controller's state.
type Phase int

const (
	Idle Phase = iota
	Pressed
	Dragging
	Returning
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	case Returning:
		return "returning"
	default:
		return "idle"
	}
}

// Overlap selects how a release is matched against its target.
type Overlap int

const (
	// OverlapAreaRatio accepts when at least Config.Ratio of the piece's
	// area lies inside the target.
	OverlapAreaRatio Overlap = iota
	// OverlapIntersects accepts any bounding-box intersection.
	OverlapIntersects
)

// Config tunes a surface.
type Config struct {
	// Threshold is the distance in points the pointer must travel before
	// a press becomes a drag.
	Threshold float64
	Ratio     float64
	Return    time.Duration
	// Scale converts layout units to points per axis. Zero means 1.
	Scale core.Vec
}

// DefaultConfig matches the stock tuning: 5 points, half the piece, 600 ms.
func DefaultConfig() Config {
	return Config{Threshold: 5, Ratio: 0.5, Return: 600 * time.Millisecond}
}

// Controller drives one draggable piece.
type Controller struct {
	ID       string
	TargetID string
	Mode     Overlap
	// Home is the resting box in layout units.
	Home core.Box
	// Hit optionally refines the press test (e.g. a jigsaw outline).
	// Nil means any point inside Home.
	Hit func(p core.Vec) bool

	OnDragStart func()
	OnDrop      func(correct bool)

	phase   Phase
	pressAt core.Vec
	offset  core.Vec // pointer minus box origin at press
	pos     core.Vec // box origin while dragging or returning
	from    core.Vec
	elapsed time.Duration
}

// Phase returns the current state.
func (c *Controller) Phase() Phase { return c.phase }

// Box returns where the piece is drawn this frame.
func (c *Controller) Box() core.Box {
	switch c.phase {
	case Dragging, Returning:
		return core.Box{X: c.pos.X, Y: c.pos.Y, W: c.Home.W, H: c.Home.H}
	default:
		return c.Home
	}
}

// Active reports whether the piece is lifted off its home.
func (c *Controller) Active() bool {
	return c.phase == Dragging || c.phase == Returning
}

func (c *Controller) hits(p core.Vec) bool {
	if c.Hit != nil {
		return c.Hit(p)
	}
	return c.Home.Contains(p)
}

func (c *Controller) press(p core.Vec) bool {
	if c.phase != Idle {
		return false
	}
	c.phase = Pressed
	c.pressAt = p
	c.offset = p.Sub(c.Home.Min())
	c.pos = c.Home.Min()
	return true
}

func (c *Controller) move(p core.Vec, cfg Config) {
	switch c.phase {
	case Pressed:
		d := p.Sub(c.pressAt)
		sx, sy := scale(cfg.Scale)
		dist := core.Vec{X: d.X * sx, Y: d.Y * sy}.Len()
		if dist <= cfg.Threshold {
			return
		}
		c.phase = Dragging
		if c.OnDragStart != nil {
			c.OnDragStart()
		}
		c.pos = p.Sub(c.offset)
	case Dragging:
		c.pos = p.Sub(c.offset)
	}
}

// release ends a press. A press that never became a drag is a click and
// changes nothing.
func (c *Controller) release(target core.Box, found bool, cfg Config) {
	switch c.phase {
	case Pressed:
		c.phase = Idle
	case Dragging:
		if found && c.accepts(target, cfg) {
			c.phase = Idle
			if c.OnDrop != nil {
				c.OnDrop(true)
			}
			return
		}
		c.startReturn()
	}
}

func (c *Controller) cancel() {
	switch c.phase {
	case Pressed:
		c.phase = Idle
	case Dragging:
		c.startReturn()
	}
}

func (c *Controller) startReturn() {
	c.phase = Returning
	c.from = c.pos
	c.elapsed = 0
}

func (c *Controller) accepts(target core.Box, cfg Config) bool {
	piece := c.Box()
	if c.Mode == OverlapIntersects {
		return piece.Intersects(target)
	}
	return piece.OverlapRatio(target) >= cfg.Ratio
}

func (c *Controller) tick(dt time.Duration, cfg Config) {
	if c.phase != Returning {
		return
	}
	c.elapsed += dt
	if cfg.Return <= 0 || c.elapsed >= cfg.Return {
		c.pos = c.Home.Min()
		c.phase = Idle
		if c.OnDrop != nil {
			c.OnDrop(false)
		}
		return
	}
	k := BackOut(float64(c.elapsed) / float64(cfg.Return))
	c.pos = c.from.Lerp(c.Home.Min(), k)
}

func scale(s core.Vec) (float64, float64) {
	sx, sy := s.X, s.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}
