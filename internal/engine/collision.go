package engine

import (
	"math"

	"github.com/vovakirdan/calma/internal/core"
)

// WithinRadius reports whether a and b are closer than r (Euclidean).
func WithinRadius(a, b core.Vec, r float64) bool {
	return a.Dist(b) < r
}

// Window is an independent-axis capture range around a point.
type Window struct {
	Center       core.Vec
	HalfX, HalfY float64
}

// Contains reports whether p is strictly inside the window on both axes.
func (w Window) Contains(p core.Vec) bool {
	return math.Abs(p.X-w.Center.X) < w.HalfX && math.Abs(p.Y-w.Center.Y) < w.HalfY
}

// Hit names the region that captured an object.
type Hit int

const (
	HitNone Hit = iota
	HitBody
	HitReach
)

// Probe tests p against the body window and, when reach is non-nil, the
// reach window. The body is checked first and wins ties.
func Probe(p core.Vec, body Window, reach *Window) Hit {
	if body.Contains(p) {
		return HitBody
	}
	if reach != nil && reach.Contains(p) {
		return HitReach
	}
	return HitNone
}

// CaptureSet remembers captured instance ids so nothing is captured twice.
type CaptureSet struct {
	ids map[string]struct{}
}

// NewCaptureSet creates an empty set.
func NewCaptureSet() *CaptureSet {
	return &CaptureSet{ids: make(map[string]struct{})}
}

// Mark records id and reports whether it was new.
func (c *CaptureSet) Mark(id string) bool {
	if _, ok := c.ids[id]; ok {
		return false
	}
	c.ids[id] = struct{}{}
	return true
}

// Has reports whether id was captured.
func (c *CaptureSet) Has(id string) bool {
	_, ok := c.ids[id]
	return ok
}

// Len returns the number of captured ids.
func (c *CaptureSet) Len() int { return len(c.ids) }

// Clear empties the set.
func (c *CaptureSet) Clear() {
	clear(c.ids)
}
