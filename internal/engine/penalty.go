package engine

import (
	"time"

	"github.com/vovakirdan/calma/internal/config"
)

// PenaltyKind is the active slowdown source.
type PenaltyKind int

const (
	PenaltyNone PenaltyKind = iota
	PenaltyMud
	PenaltyShoulder
)

// String returns the kind name.
func (k PenaltyKind) String() string {
	switch k {
	case PenaltyMud:
		return "mud"
	case PenaltyShoulder:
		return "shoulder"
	default:
		return "none"
	}
}

// Penalty is the speed penalty state machine. Mud lasts a fixed time and is
// debounced by a cooldown measured from the last honoured trigger; the
// shoulder lasts exactly as long as the caller reports it. While either is
// active the speed factor is pinned to the penalty factor, otherwise it
// climbs back to 1 linearly. Times are simulation times.
type Penalty struct {
	cfg config.PenaltyConfig

	hadMud   bool
	lastMud  time.Duration
	mudUntil time.Duration
	shoulder bool
	factor   float64
}

// NewPenalty creates a machine in the NORMAL state.
func NewPenalty(cfg config.PenaltyConfig) *Penalty {
	return &Penalty{cfg: cfg, factor: 1}
}

// Reset returns to NORMAL with full speed and no cooldown.
func (p *Penalty) Reset() {
	*p = Penalty{cfg: p.cfg, factor: 1}
}

func (p *Penalty) mudDuration() time.Duration {
	return time.Duration(p.cfg.MudDurationMs) * time.Millisecond
}

func (p *Penalty) cooldown() time.Duration {
	return time.Duration(p.cfg.CooldownMs) * time.Millisecond
}

// TriggerMud reports hazard contact at now. It returns true only when the
// trigger is honoured, i.e. outside the cooldown of the previous one.
func (p *Penalty) TriggerMud(now time.Duration) bool {
	if p.hadMud && now-p.lastMud < p.cooldown() {
		return false
	}
	p.hadMud = true
	p.lastMud = now
	p.mudUntil = now + p.mudDuration()
	p.factor = p.cfg.Factor
	return true
}

// SetShoulder reports whether the actor is off the asphalt. It returns true
// on the transition into the shoulder state.
func (p *Penalty) SetShoulder(on bool) bool {
	entered := on && !p.shoulder
	p.shoulder = on
	if on {
		p.factor = p.cfg.Factor
	}
	return entered
}

// Kind returns the active source at now; mud wins over shoulder.
func (p *Penalty) Kind(now time.Duration) PenaltyKind {
	switch {
	case p.hadMud && now < p.mudUntil:
		return PenaltyMud
	case p.shoulder:
		return PenaltyShoulder
	default:
		return PenaltyNone
	}
}

// Active reports whether any source is active at now.
func (p *Penalty) Active(now time.Duration) bool {
	return p.Kind(now) != PenaltyNone
}

// Update advances the speed factor by dt ending at now.
func (p *Penalty) Update(now, dt time.Duration) {
	if p.Active(now) {
		p.factor = p.cfg.Factor
		return
	}
	if dt <= 0 {
		return
	}
	p.factor += p.cfg.RecoveryRate * dt.Seconds()
	if p.factor > 1 {
		p.factor = 1
	}
}

// SpeedFactor returns the current multiplier in (0, 1].
func (p *Penalty) SpeedFactor() float64 {
	return p.factor
}
