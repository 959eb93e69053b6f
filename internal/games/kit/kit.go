// Package kit holds the pieces every mini-game shares: round bookkeeping
// with a once-only delayed completion, universe selection, feedback gating
// and terminal layout helpers.
package kit

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/settings"
)

// Round tracks progress toward a required count and fires completion
// exactly once, a fixed delay after the count is reached.
type Round struct {
	Clock    *engine.Clock
	Required int

	delay     time.Duration
	count     int
	scheduled bool
	completed bool
	just      bool
	paused    bool
}

// NewRound starts a round on a fresh clock.
func NewRound(required int, delay time.Duration) *Round {
	return &Round{
		Clock:    engine.NewClock(engine.MaxFrameDelta),
		Required: required,
		delay:    delay,
	}
}

// Advance moves the round's clock unless paused and returns the applied
// frame delta (0 when paused or closed).
func (r *Round) Advance(elapsed time.Duration) time.Duration {
	if r.paused {
		return 0
	}
	return r.Clock.Advance(elapsed)
}

// Add records n more captures or placements and schedules completion when
// the required count is first reached.
func (r *Round) Add(n int) {
	r.count += n
	r.check()
}

// SetCount replaces the progress count.
func (r *Round) SetCount(n int) {
	r.count = n
	r.check()
}

func (r *Round) check() {
	if r.scheduled || r.Required <= 0 || r.count < r.Required {
		return
	}
	r.scheduled = true
	r.Clock.After(r.delay, func() {
		if r.completed {
			return
		}
		r.completed = true
		r.just = true
	})
}

// Count returns the progress count.
func (r *Round) Count() int { return r.count }

// Done reports whether the required count was reached (completion may
// still be pending).
func (r *Round) Done() bool { return r.scheduled }

// Completed reports whether completion fired.
func (r *Round) Completed() bool { return r.completed }

// TakeJustCompleted returns true once, on the frame completion fired.
func (r *Round) TakeJustCompleted() bool {
	j := r.just
	r.just = false
	return j
}

// TogglePause flips the pause flag. A completed round cannot pause.
func (r *Round) TogglePause() {
	if r.completed {
		return
	}
	r.paused = !r.paused
}

// Paused reports whether the round is paused.
func (r *Round) Paused() bool { return r.paused }

// State builds the platform-facing state.
func (r *Round) State() core.GameState {
	return core.GameState{
		Captured:  min(r.count, max(r.Required, 0)),
		Required:  r.Required,
		Completed: r.completed,
		Paused:    r.paused,
	}
}

// Close stops the clock; pending completion never fires.
func (r *Round) Close() { r.Clock.Stop() }

// Universe resolves the player's universe, falling back to the first one.
func Universe(s settings.Settings, rng *rand.Rand) catalog.Universe {
	u, err := catalog.Get(s.Universe, rng)
	if err == nil && len(u.Items) > 0 {
		return u
	}
	u, _ = catalog.Get(catalog.Granja, rng)
	return u
}

// Voice wraps a feedback sink with the player's voice preference.
type Voice struct {
	core.Feedback
	Enabled bool
}

// NewVoice builds the feedback gate for a round.
func NewVoice(cfg core.RuntimeConfig, s settings.Settings) Voice {
	return Voice{Feedback: cfg.FeedbackOrNop(), Enabled: s.VoiceEnabled}
}

// Speak forwards text only when voice is enabled.
func (v Voice) Speak(text string) {
	if v.Enabled && text != "" {
		v.Feedback.Speak(text)
	}
}

// Cell maps a percent position onto a screen of w×h cells.
func Cell(p core.Vec, w, h int) (int, int) {
	x := int(p.X / 100 * float64(w))
	y := int(p.Y / 100 * float64(h))
	return x, y
}

// CellRect maps a percent box onto screen cells, at least one cell large.
func CellRect(b core.Box, w, h int) core.Rect {
	x0, y0 := Cell(b.Min(), w, h)
	x1, y1 := Cell(b.Max(), w, h)
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// DrawHUD draws the title and progress on the top row and the pause or
// completion banner in the middle.
func DrawHUD(dst *core.Screen, title string, st core.GameState) {
	dst.DrawTextColored(1, 0, strings.ToUpper(title), core.ColorBrightWhite)
	progress := fmt.Sprintf("%d/%d", st.Captured, st.Required)
	dst.DrawTextColored(dst.Width()-len(progress)-1, 0, progress, core.ColorBrightYellow)

	switch {
	case st.Completed:
		dst.DrawTextCenteredColored(dst.Height()/2, " ¡MUY BIEN! ", core.ColorBrightGreen)
		dst.DrawTextCenteredColored(dst.Height()/2+1, "R: otra vez   Q: salir", core.ColorGray)
	case st.Paused:
		dst.DrawTextCenteredColored(dst.Height()/2, " PAUSA ", core.ColorBrightCyan)
	}
}
