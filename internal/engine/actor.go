package engine

import (
	"math"
	"time"

	"github.com/vovakirdan/calma/internal/core"
)

// NominalFrame is the frame length the per-frame easing constants assume.
const NominalFrame = time.Second / 60

// ActorConfig tunes an Actor.
type ActorConfig struct {
	Smoothing float64 // fraction of the remaining distance covered per nominal frame
	TiltGain  float64 // degrees per percent of vertical movement
	MaxTilt   float64 // degrees
	TiltEase  float64 // fraction of the tilt error removed per nominal frame
	History   int     // ring length
}

// Actor is a pointer-driven body: input writes Target, only Step moves
// Current. It keeps a ring of recent positions for trailing followers.
type Actor struct {
	cfg     ActorConfig
	current core.Vec
	target  core.Vec
	tilt    float64

	history []core.Vec
	head    int // index of the newest entry
}

// NewActor creates an actor resting at start with a history full of start.
func NewActor(cfg ActorConfig, start core.Vec) *Actor {
	if cfg.History < 1 {
		cfg.History = 1
	}
	a := &Actor{cfg: cfg}
	a.history = make([]core.Vec, cfg.History)
	a.Reset(start)
	return a
}

// Reset puts the actor at p with no tilt and a flat history.
func (a *Actor) Reset(p core.Vec) {
	a.current, a.target, a.tilt = p, p, 0
	for i := range a.history {
		a.history[i] = p
	}
	a.head = len(a.history) - 1
}

// SetTarget records the raw input position.
func (a *Actor) SetTarget(p core.Vec) { a.target = p }

// Target returns the raw input position.
func (a *Actor) Target() core.Vec { return a.target }

// Position returns the smoothed position.
func (a *Actor) Position() core.Vec { return a.current }

// Tilt returns the eased tilt in degrees.
func (a *Actor) Tilt() float64 { return a.tilt }

// Step advances one frame of dt. The target's Y is clamped into band first;
// then the position eases toward it and tilt follows the vertical change.
func (a *Actor) Step(dt time.Duration, band Span) {
	goal := core.Vec{X: a.target.X, Y: band.Clamp(a.target.Y)}

	prev := a.current
	a.current = a.current.Lerp(goal, frameFraction(a.cfg.Smoothing, dt))

	dy := a.current.Y - prev.Y
	want := core.ClampF(dy*a.cfg.TiltGain, -a.cfg.MaxTilt, a.cfg.MaxTilt)
	a.tilt += (want - a.tilt) * frameFraction(a.cfg.TiltEase, dt)

	a.head = (a.head + 1) % len(a.history)
	a.history[a.head] = a.current
}

// History returns the position back frames ago (0 is the newest).
// Requests older than the ring return the oldest entry.
func (a *Actor) History(back int) core.Vec {
	back = core.Clamp(back, 0, len(a.history)-1)
	i := (a.head - back + len(a.history)) % len(a.history)
	return a.history[i]
}

// HistoryLen returns the ring length.
func (a *Actor) HistoryLen() int { return len(a.history) }

// frameFraction converts a per-nominal-frame easing fraction to dt, so the
// filter behaves the same at any frame rate. dt <= 0 counts as one frame.
func frameFraction(f float64, dt time.Duration) float64 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 1
	}
	if dt <= 0 || dt == NominalFrame {
		return f
	}
	frames := float64(dt) / float64(NominalFrame)
	return 1 - math.Pow(1-f, frames)
}
