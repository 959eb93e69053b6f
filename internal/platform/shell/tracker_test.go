package shell

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/settings"
	"github.com/vovakirdan/calma/internal/storage"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func done(just bool) core.StepResult {
	return core.StepResult{
		State:         core.GameState{Captured: 4, Required: 4, Completed: true},
		JustCompleted: just,
	}
}

func TestTrackerCompletion(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	fb := &core.RecordingFeedback{}
	tr := NewTracker("catch", store, fb, nil)
	s := settings.Default()

	playing := core.StepResult{State: core.GameState{Required: 4}}
	if tr.Observe(core.GameState{}, playing, s, t0) {
		t.Fatal("no completion yet")
	}
	if !tr.Observe(playing.State, done(true), s, t0.Add(30*time.Second)) {
		t.Fatal("completion should be reported")
	}
	if tr.Observe(done(true).State, done(false), s, t0.Add(31*time.Second)) {
		t.Error("completion reported twice")
	}
	if fb.Count(core.SoundFanfare) != 1 || tr.Round() != 1 {
		t.Errorf("fanfares = %d, round = %d", fb.Count(core.SoundFanfare), tr.Round())
	}

	sessions, err := store.RecentSessions("catch", 5)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("sessions = %v, err = %v", sessions, err)
	}
	if got := sessions[0]; got.Duration != 30*time.Second || got.Items != 4 || got.Universe != "granja" {
		t.Errorf("session = %+v", got)
	}
}

func TestTrackerCongratulation(t *testing.T) {
	fb := &core.RecordingFeedback{}
	tr := NewTracker("drive", nil, fb, nil)
	s := settings.Default()

	tr.Congratulate(s)
	if len(fb.Spoken) != 0 {
		t.Fatal("nothing pending, nothing spoken")
	}

	tr.Observe(core.GameState{}, done(true), s, t0)
	if tr.Due(t0.Add(CongratsDelay - time.Millisecond)) {
		t.Error("congratulation due too early")
	}
	if !tr.Due(t0.Add(CongratsDelay)) {
		t.Fatal("congratulation should be due")
	}
	tr.Congratulate(s)
	tr.Congratulate(s)
	if len(fb.Spoken) != 1 || fb.Spoken[0] != s.CongratulationText() {
		t.Errorf("spoken = %v", fb.Spoken)
	}
	if tr.Due(t0.Add(time.Hour)) {
		t.Error("nothing should be pending after speaking")
	}
}

func TestTrackerVoiceOff(t *testing.T) {
	fb := &core.RecordingFeedback{}
	tr := NewTracker("puzzle", nil, fb, nil)
	s := settings.Default()
	s.VoiceEnabled = false

	tr.Observe(core.GameState{}, done(true), s, t0)
	tr.Congratulate(s)
	if len(fb.Spoken) != 0 {
		t.Errorf("spoken with voice off: %v", fb.Spoken)
	}
	if fb.Count(core.SoundFanfare) != 1 {
		t.Error("fanfare plays regardless of voice")
	}
}

func TestTrackerRestart(t *testing.T) {
	tr := NewTracker("match", nil, nil, nil)
	s := settings.Default()

	tr.Observe(core.GameState{}, core.StepResult{}, s, t0)
	tr.Observe(core.GameState{}, done(true), s, t0.Add(time.Minute))
	if got := tr.Elapsed(t0.Add(time.Minute)); got != time.Minute {
		t.Fatalf("elapsed = %v, want 1m", got)
	}

	// Restart: completed before, not any more.
	restart := t0.Add(2 * time.Minute)
	tr.Observe(done(true).State, core.StepResult{State: core.GameState{Required: 4}}, s, restart)
	if got := tr.Elapsed(restart.Add(5 * time.Second)); got != 5*time.Second {
		t.Errorf("elapsed after restart = %v, want 5s", got)
	}
	if tr.Due(restart.Add(time.Hour)) {
		t.Error("restart should drop the pending congratulation")
	}
}
