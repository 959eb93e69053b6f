package drag

import (
	"time"

	"github.com/vovakirdan/calma/internal/core"
)

// Surface routes one pointer to a set of controllers. Only one controller
// holds the pointer capture at a time; it is acquired on press and released
// on accept, reject, click and cancel.
type Surface struct {
	cfg      Config
	pieces   []*Controller
	targets  map[string]core.Box
	owner    *Controller
	wasDown  bool
	captures int
}

// NewSurface creates an empty surface.
func NewSurface(cfg Config) *Surface {
	return &Surface{cfg: cfg, targets: make(map[string]core.Box)}
}

// Config returns the surface tuning.
func (s *Surface) Config() Config { return s.cfg }

// Add registers a controller. Later controllers are on top.
func (s *Surface) Add(c *Controller) {
	s.pieces = append(s.pieces, c)
}

// Remove unregisters a controller, releasing the capture if it holds it.
func (s *Surface) Remove(c *Controller) {
	for i, p := range s.pieces {
		if p == c {
			s.pieces = append(s.pieces[:i], s.pieces[i+1:]...)
			break
		}
	}
	if s.owner == c {
		s.owner = nil
	}
}

// Pieces returns the registered controllers, bottom first.
func (s *Surface) Pieces() []*Controller { return s.pieces }

// SetTarget places or moves a drop target.
func (s *Surface) SetTarget(id string, b core.Box) { s.targets[id] = b }

// RemoveTarget deletes a drop target. Drops aimed at it fail.
func (s *Surface) RemoveTarget(id string) { delete(s.targets, id) }

// Target returns a drop target's box.
func (s *Surface) Target(id string) (core.Box, bool) {
	b, ok := s.targets[id]
	return b, ok
}

// Captured returns the controller holding the pointer, or nil.
func (s *Surface) Captured() *Controller { return s.owner }

// Captures returns how many times the pointer was captured.
func (s *Surface) Captures() int { return s.captures }

// Update feeds one frame of pointer state and advances return animations.
func (s *Surface) Update(p core.Pointer, dt time.Duration) {
	for _, c := range s.pieces {
		c.tick(dt, s.cfg)
	}

	down := p.Valid && p.Down
	pos := p.Pos()

	switch {
	case down && !s.wasDown:
		s.press(pos)
	case down && s.owner != nil:
		s.owner.move(pos, s.cfg)
	case !down && s.wasDown && s.owner != nil:
		if !p.Valid {
			s.Cancel()
			break
		}
		s.owner.move(pos, s.cfg)
		s.release()
	}
	s.wasDown = down
}

func (s *Surface) press(pos core.Vec) {
	if s.owner != nil {
		return
	}
	for i := len(s.pieces) - 1; i >= 0; i-- {
		c := s.pieces[i]
		if c.phase != Idle || !c.hits(pos) {
			continue
		}
		if c.press(pos) {
			s.owner = c
			s.captures++
		}
		return
	}
}

func (s *Surface) release() {
	c := s.owner
	s.owner = nil
	target, ok := s.targets[c.TargetID]
	c.release(target, ok, s.cfg)
}

// Cancel aborts the current interaction as if the pointer was lost: a
// drag returns home, a press is dropped.
func (s *Surface) Cancel() {
	if s.owner == nil {
		return
	}
	c := s.owner
	s.owner = nil
	c.cancel()
	s.wasDown = false
}

// Reset drops every controller and target.
func (s *Surface) Reset() {
	s.pieces = nil
	clear(s.targets)
	s.owner = nil
	s.wasDown = false
}
