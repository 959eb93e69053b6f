// Package engine holds the real-time simulation pieces shared by the
// pointer-driven games: road geometry, spawning, actor smoothing, hit tests,
// the speed penalty machine, the session clock and published snapshots.
//
// All positions are percentages of the play area. Road time is in
// milliseconds of simulated time.
package engine

import (
	"math"

	"github.com/vovakirdan/calma/internal/config"
)

// Side selects one edge of the road.
type Side int

const (
	SideTop Side = iota
	SideBottom
)

// Road is the curved multi-lane road. It is a pure function of (x, t), so
// drawing, object placement and collision all agree within a frame.
type Road struct {
	cfg config.RoadConfig
}

// NewRoad creates a road. Zero lanes are treated as one.
func NewRoad(cfg config.RoadConfig) Road {
	if cfg.Lanes < 1 {
		cfg.Lanes = 1
	}
	return Road{cfg: cfg}
}

// Config returns the road's configuration.
func (r Road) Config() config.RoadConfig { return r.cfg }

// Lanes returns the number of asphalt lanes.
func (r Road) Lanes() int { return r.cfg.Lanes }

// CenterAt returns the lateral centre of the road at longitudinal position x
// and time t (ms).
func (r Road) CenterAt(x, t float64) float64 {
	c := r.cfg
	return c.Base +
		math.Sin(x*c.Frequency+t*c.Speed)*c.Amplitude +
		math.Cos(x*c.Frequency2-t*c.Speed2)*(c.Amplitude/3)
}

// HalfHeight is half the asphalt height.
func (r Road) HalfHeight() float64 { return r.cfg.Height / 2 }

// LaneHeight is the height of one lane.
func (r Road) LaneHeight() float64 { return r.cfg.Height / float64(r.cfg.Lanes) }

// LaneOffset returns the offset of a lane's centre from the road centre.
// Lane 0 is the top lane.
func (r Road) LaneOffset(lane int) float64 {
	n := float64(r.cfg.Lanes)
	return (float64(lane)/n - 0.5 + 1/(2*n)) * r.cfg.Height
}

// LaneCenter returns the lateral position of a lane's centre line.
func (r Road) LaneCenter(x, t float64, lane int) float64 {
	return r.CenterAt(x, t) + r.LaneOffset(lane)
}

// LaneAt returns the lane under lateral position y, clamped to a valid lane.
func (r Road) LaneAt(x, y, t float64) int {
	top, _ := r.Bounds(x, t)
	lane := int(math.Floor((y - top) / r.cfg.Height * float64(r.cfg.Lanes)))
	return max(0, min(r.cfg.Lanes-1, lane))
}

// Bounds returns the top and bottom asphalt edges at x.
func (r Road) Bounds(x, t float64) (top, bottom float64) {
	c := r.CenterAt(x, t)
	return c - r.HalfHeight(), c + r.HalfHeight()
}

// Edge returns one asphalt edge at x.
func (r Road) Edge(x, t float64, side Side) float64 {
	top, bottom := r.Bounds(x, t)
	if side == SideTop {
		return top
	}
	return bottom
}

// Band returns the lateral range the actor may occupy at x. With the
// pointer in the reserved zone the band is the centre lines of the outer
// lanes; otherwise it extends onto the shoulders.
func (r Road) Band(x, t float64, pointerReserved bool) Span {
	c := r.CenterAt(x, t)
	if pointerReserved {
		half := r.HalfHeight() - r.LaneHeight()/2
		return Span{Min: c - half, Max: c + half}
	}
	half := r.HalfHeight() + r.cfg.Shoulder
	return Span{Min: c - half, Max: c + half}
}

// OffRoad reports whether y is farther from the centre than the asphalt edge.
func (r Road) OffRoad(x, y, t float64) bool {
	return math.Abs(y-r.CenterAt(x, t)) > r.HalfHeight()
}

// Reserved reports whether a pointer at lateral position y is inside the
// UI-reserved zone at the top of the view.
func (r Road) Reserved(y float64) bool {
	return y < r.cfg.ReservedTop
}

// Span is a closed interval.
type Span struct {
	Min, Max float64
}

// Unbounded is a span that clamps nothing.
var Unbounded = Span{Min: math.Inf(-1), Max: math.Inf(1)}

// Clamp restricts v to the span.
func (s Span) Clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}
