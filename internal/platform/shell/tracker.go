// Package shell holds the round bookkeeping shared by the front-ends:
// the fanfare on completion, the spoken congratulation a moment later and
// the history record of every finished round.
package shell

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/settings"
	"github.com/vovakirdan/calma/internal/storage"
)

// CongratsDelay separates the fanfare from the spoken congratulation.
const CongratsDelay = 400 * time.Millisecond

// Tracker follows the rounds of one game. Store, feedback and logger may
// be nil.
type Tracker struct {
	gameID   string
	store    *storage.Store
	feedback core.Feedback
	logger   *log.Logger

	started    time.Time
	round      int
	congratsAt time.Time // zero when nothing is pending
}

// NewTracker creates a tracker for gameID.
func NewTracker(gameID string, store *storage.Store, fb core.Feedback, logger *log.Logger) *Tracker {
	if fb == nil {
		fb = core.NopFeedback{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Tracker{gameID: gameID, store: store, feedback: fb, logger: logger}
}

// Start marks the beginning of a round and drops a pending congratulation.
func (t *Tracker) Start(now time.Time) {
	t.started = now
	t.congratsAt = time.Time{}
}

// Started reports whether Start was called.
func (t *Tracker) Started() bool { return !t.started.IsZero() }

// Elapsed is the play time of the current round.
func (t *Tracker) Elapsed(now time.Time) time.Duration {
	if t.started.IsZero() {
		return 0
	}
	return now.Sub(t.started)
}

// Round is the number of rounds completed so far.
func (t *Tracker) Round() int { return t.round }

// Observe takes the result of one step. A round that was completed and no
// longer is has been restarted. On completion it plays the fanfare,
// records the round and schedules the congratulation; it reports whether
// that happened.
func (t *Tracker) Observe(prev core.GameState, res core.StepResult, s settings.Settings, now time.Time) bool {
	if prev.Completed && !res.State.Completed {
		t.Start(now)
	}
	if !t.Started() {
		t.Start(now)
	}
	if !res.JustCompleted {
		return false
	}

	t.round++
	t.feedback.Play(core.SoundFanfare)
	t.record(res.State, s, now)
	t.congratsAt = now.Add(CongratsDelay)
	return true
}

func (t *Tracker) record(st core.GameState, s settings.Settings, now time.Time) {
	if t.store == nil {
		return
	}
	_, err := t.store.SaveSession(storage.Session{
		GameID:   t.gameID,
		Player:   s.UserName,
		Universe: string(s.Universe),
		Level:    int(s.Level),
		Items:    st.Required,
		Duration: t.Elapsed(now),
	})
	if err != nil {
		t.logger.Warn("could not record session", "game", t.gameID, "err", err)
	}
}

// Due reports whether the congratulation is pending and its time has come.
func (t *Tracker) Due(now time.Time) bool {
	return !t.congratsAt.IsZero() && !now.Before(t.congratsAt)
}

// Congratulate speaks the pending congratulation, if voice is on, and
// clears it. Without a pending one it does nothing.
func (t *Tracker) Congratulate(s settings.Settings) {
	if t.congratsAt.IsZero() {
		return
	}
	t.congratsAt = time.Time{}
	if s.VoiceEnabled {
		t.feedback.Speak(s.CongratulationText())
	}
}
