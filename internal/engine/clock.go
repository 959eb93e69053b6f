package engine

import (
	"sort"
	"time"
)

// MaxFrameDelta caps a single frame so a long pause (suspended terminal,
// hidden window) does not teleport objects.
const MaxFrameDelta = 50 * time.Millisecond

type timer struct {
	due time.Duration
	seq int
	fn  func()
}

// Clock is the simulation clock of one game session. It measures frame
// deltas, runs delayed callbacks in simulated time and carries the session's
// liveness flag: once stopped, Advance is a no-op and pending callbacks never
// run.
type Clock struct {
	now      time.Duration
	maxDelta time.Duration
	alive    bool
	timers   []timer
	seq      int
}

// NewClock creates a running clock with the given delta cap (0 means
// MaxFrameDelta).
func NewClock(maxDelta time.Duration) *Clock {
	if maxDelta <= 0 {
		maxDelta = MaxFrameDelta
	}
	return &Clock{maxDelta: maxDelta, alive: true}
}

// Now returns the simulated time since the clock started.
func (c *Clock) Now() time.Duration { return c.now }

// Millis returns Now in milliseconds, the unit road formulas use.
func (c *Clock) Millis() float64 {
	return float64(c.now) / float64(time.Millisecond)
}

// Alive reports whether the session is still running.
func (c *Clock) Alive() bool { return c.alive }

// Advance moves time forward by elapsed, capped, and runs any callbacks that
// became due, in due order. It returns the applied delta, or 0 when stopped.
func (c *Clock) Advance(elapsed time.Duration) time.Duration {
	if !c.alive {
		return 0
	}
	if elapsed <= 0 {
		elapsed = NominalFrame
	}
	if elapsed > c.maxDelta {
		elapsed = c.maxDelta
	}
	c.now += elapsed
	c.fire()
	return elapsed
}

func (c *Clock) fire() {
	if len(c.timers) == 0 {
		return
	}
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].due != c.timers[j].due {
			return c.timers[i].due < c.timers[j].due
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	n := 0
	for n < len(c.timers) && c.timers[n].due <= c.now {
		n++
	}
	due := append([]timer(nil), c.timers[:n]...)
	c.timers = append(c.timers[:0], c.timers[n:]...)
	for _, t := range due {
		if !c.alive {
			return
		}
		t.fn()
	}
}

// After schedules fn to run once, d of simulated time from now.
func (c *Clock) After(d time.Duration, fn func()) {
	if !c.alive {
		return
	}
	c.seq++
	c.timers = append(c.timers, timer{due: c.now + d, seq: c.seq, fn: fn})
}

// Pending returns the number of scheduled callbacks.
func (c *Clock) Pending() int { return len(c.timers) }

// Stop ends the session: pending callbacks are dropped and later ones
// ignored.
func (c *Clock) Stop() {
	c.alive = false
	c.timers = nil
}

// Restart revives a stopped clock at time zero with no pending callbacks.
func (c *Clock) Restart() {
	c.now = 0
	c.alive = true
	c.timers = nil
	c.seq = 0
}
