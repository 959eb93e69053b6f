package catch

import (
	"testing"
	"time"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
)

func newGame(t *testing.T, s settings.Settings, seed int64) (*Game, *core.RecordingFeedback) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	fb := &core.RecordingFeedback{}
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	cfg.Feedback = fb
	g := New()
	g.Reset(cfg, s)
	return g, fb
}

// chase points the pointer at the first uncaught object.
func chase(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	in.Elapsed = engine.NominalFrame
	for _, o := range g.objects {
		if !o.Caught {
			in.Pointer = core.Pointer{X: o.Pos.X, Y: o.Pos.Y, Valid: true}
			break
		}
	}
	return in
}

func TestCatchAllCompletesOnce(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 4
	s.Level = core.LevelSyllables
	g, fb := newGame(t, s, 42)

	if got := g.State().Required; got != 12 {
		t.Fatalf("Required = %d, want 12", got)
	}
	if len(g.objects) != 12 {
		t.Fatalf("objects = %d, want 12", len(g.objects))
	}

	var reachedAt time.Duration = -1
	completions := 0
	for i := 0; i < 5000; i++ {
		res := g.Step(chase(g))
		if res.JustCompleted {
			completions++
			if reachedAt < 0 {
				t.Fatal("completed before every object was caught")
			}
			waited := g.round.Clock.Now() - reachedAt
			if waited < 500*time.Millisecond || waited > 500*time.Millisecond+engine.NominalFrame {
				t.Fatalf("completion after %v, want ~500ms", waited)
			}
		}
		if reachedAt < 0 && g.captured.Len() == 12 {
			reachedAt = g.round.Clock.Now()
			if g.State().Completed {
				t.Fatal("completed on the capturing frame")
			}
		}
		if reachedAt >= 0 && g.round.Clock.Now()-reachedAt > time.Second {
			break
		}
	}

	if reachedAt < 0 {
		t.Fatalf("caught only %d of 12", g.captured.Len())
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if !g.State().Completed {
		t.Fatal("state not completed")
	}
	if got := fb.Count(core.SoundPop); got != 12 {
		t.Errorf("pops = %d, want 12", got)
	}
	if got := len(fb.Spoken); got != 12 {
		t.Errorf("spoken = %d, want 12", got)
	}
}

func TestNoCaptureWithoutPointer(t *testing.T) {
	g, fb := newGame(t, settings.Default(), 1)
	in := core.NewInputFrame()
	in.Elapsed = engine.NominalFrame
	for i := 0; i < 300; i++ {
		g.Step(in)
	}
	if g.captured.Len() != 0 || len(fb.Sounds) != 0 {
		t.Fatalf("captured %d with no pointer", g.captured.Len())
	}
}

func TestVoiceDisabled(t *testing.T) {
	s := settings.Default()
	s.VoiceEnabled = false
	g, fb := newGame(t, s, 3)
	for i := 0; i < 200; i++ {
		g.Step(chase(g))
	}
	if g.captured.Len() == 0 {
		t.Fatal("nothing caught")
	}
	if len(fb.Spoken) != 0 {
		t.Fatalf("spoke %v with voice disabled", fb.Spoken)
	}
	if fb.Count(core.SoundPop) != g.captured.Len() {
		t.Fatalf("pops = %d, captured = %d", fb.Count(core.SoundPop), g.captured.Len())
	}
}

func TestCloseCancelsCompletion(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 1
	g, _ := newGame(t, s, 9)
	for i := 0; i < 2000 && !g.round.Done(); i++ {
		g.Step(chase(g))
	}
	if !g.round.Done() {
		t.Fatal("round never reached its count")
	}
	g.Close()
	for i := 0; i < 120; i++ {
		if g.Step(chase(g)).JustCompleted {
			t.Fatal("completion fired after Close")
		}
	}
	if g.State().Completed {
		t.Fatal("completed after Close")
	}
}

func TestBounce(t *testing.T) {
	g, _ := newGame(t, settings.Default(), 5)
	g.objects = g.objects[:1]
	g.objects[0].Pos = core.Vec{X: 91.9, Y: 50}
	g.objects[0].Vel = core.Vec{X: 0.3, Y: 0}

	in := core.NewInputFrame()
	in.Elapsed = engine.NominalFrame
	g.Step(in)

	if g.objects[0].Vel.X >= 0 {
		t.Fatalf("vx = %v, want reversed", g.objects[0].Vel.X)
	}
}

func TestLevelSpeeds(t *testing.T) {
	tests := []struct {
		level core.Level
		max   float64
	}{
		{core.LevelWhole, 0.025},
		{core.LevelSyllables, 0.075},
		{core.LevelLetters, 0.15},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			s := settings.Default()
			s.Level = tt.level
			g, _ := newGame(t, s, 11)
			for _, o := range g.objects {
				if o.Vel.X < -tt.max || o.Vel.X > tt.max || o.Vel.Y < -tt.max || o.Vel.Y > tt.max {
					t.Fatalf("velocity %+v outside ±%v", o.Vel, tt.max)
				}
				if o.Pos.X < 15 || o.Pos.X > 85 || o.Pos.Y < 15 || o.Pos.Y > 85 {
					t.Fatalf("position %+v outside 15..85", o.Pos)
				}
			}
		})
	}
}

func TestPauseFreezes(t *testing.T) {
	g, _ := newGame(t, settings.Default(), 13)
	before := g.objects[0].Pos

	in := core.NewInputFrame()
	in.Elapsed = engine.NominalFrame
	in.Set(core.ActionPause)
	g.Step(in)
	in.Clear()
	in.Elapsed = engine.NominalFrame
	for i := 0; i < 30; i++ {
		g.Step(in)
	}
	if !g.State().Paused {
		t.Fatal("not paused")
	}
	if g.objects[0].Pos != before {
		t.Fatal("objects moved while paused")
	}
}

func TestDeterminism(t *testing.T) {
	a, _ := newGame(t, settings.Default(), 77)
	b, _ := newGame(t, settings.Default(), 77)
	for i := 0; i < 120; i++ {
		a.Step(chase(a))
		b.Step(chase(b))
	}
	sa, _ := a.Snapshot()
	sb, _ := b.Snapshot()
	if len(sa.Objects) != len(sb.Objects) {
		t.Fatal("object counts differ")
	}
	for i := range sa.Objects {
		if sa.Objects[i] != sb.Objects[i] {
			t.Fatalf("object %d differs: %+v vs %+v", i, sa.Objects[i], sb.Objects[i])
		}
	}
}

func TestRender(t *testing.T) {
	g, _ := newGame(t, settings.Default(), 21)
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if got := scr.Row(0); len(got) == 0 {
		t.Fatal("empty HUD row")
	}
}

func TestSettingsChangeResetsRound(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 4
	g, _ := newGame(t, s, 7)

	for i := 0; i < 2000 && g.captured.Len() < 2; i++ {
		g.Step(chase(g))
	}
	if g.captured.Len() < 2 {
		t.Fatalf("caught only %d objects", g.captured.Len())
	}

	next := s
	next.ItemCount = 5
	if !registry.ApplySettings(g, g.rt, s, next) {
		t.Fatal("item count change should reset")
	}
	if g.captured.Len() != 0 || g.State().Captured != 0 {
		t.Errorf("captured = %d, state = %+v after reset", g.captured.Len(), g.State())
	}
	for _, o := range g.objects {
		if o.Caught {
			t.Fatalf("object %s still caught after reset", o.ID)
		}
	}

	shown := next
	shown.ShowWords = !shown.ShowWords
	before := g.State().Required
	if registry.ApplySettings(g, g.rt, next, shown) {
		t.Error("label change should not reset")
	}
	if g.State().Required != before {
		t.Error("required count changed without reset")
	}
}
