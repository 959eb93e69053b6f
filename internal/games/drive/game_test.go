package drive

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/settings"
)

// staticRoad freezes the road curve so lane positions do not drift.
const staticRoad = `
road:
  speed: 0
  speed2: 0
`

func newGame(t *testing.T, s settings.Settings) (*Game, *core.RecordingFeedback) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "drive.yaml")
	if err := os.WriteFile(path, []byte(staticRoad), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	fb := &core.RecordingFeedback{}
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	cfg.Feedback = fb
	g := New()
	g.Reset(cfg, s)
	return g, fb
}

func frame() core.InputFrame {
	in := core.NewInputFrame()
	in.Elapsed = engine.NominalFrame
	return in
}

func pointerAt(y float64) core.InputFrame {
	in := frame()
	in.Pointer = core.Pointer{X: 50, Y: y, Valid: true}
	return in
}

// place drops a collectible next to the tractor in the middle lane.
func place(g *Game, id string) {
	g.objects = append(g.objects, RoadObject{
		ID:   id,
		Item: g.pool[0],
		Kind: engine.KindCollectible,
		Lane: 2,
		X:    g.cfg.Tractor.X + 2,
	})
}

func TestBodyCapture(t *testing.T) {
	g, fb := newGame(t, settings.Default())
	place(g, "a")
	g.Step(frame())

	if g.captured.Len() != 1 || len(g.collected) != 1 {
		t.Fatalf("captured = %d collected = %d", g.captured.Len(), len(g.collected))
	}
	if fb.Count(core.SoundPop) != 1 || len(fb.Spoken) != 1 {
		t.Fatalf("feedback = %+v", fb)
	}
	if len(g.objects) != 0 {
		t.Fatal("captured object still active")
	}

	// The same instance cannot count twice.
	place(g, "a")
	g.Step(frame())
	if g.captured.Len() != 1 || g.round.Count() != 1 {
		t.Fatalf("double capture: captured = %d count = %d", g.captured.Len(), g.round.Count())
	}
}

func TestHazardTriggersMudOnce(t *testing.T) {
	g, fb := newGame(t, settings.Default())
	g.objects = append(g.objects, RoadObject{
		ID: "mud", Item: g.pool[0], Kind: engine.KindHazard, Lane: 2, X: g.cfg.Tractor.X + 6,
	})

	g.Step(frame())
	if got := g.penalty.Kind(g.round.Clock.Now()); got != engine.PenaltyMud {
		t.Fatalf("penalty = %v, want mud", got)
	}
	if g.penalty.SpeedFactor() != g.cfg.Penalty.Factor {
		t.Fatalf("factor = %v", g.penalty.SpeedFactor())
	}
	if len(g.objects) != 1 {
		t.Fatal("hazard must stay on the road")
	}

	// Still touching for several frames: one warning only.
	for i := 0; i < 30; i++ {
		g.Step(frame())
	}
	if got := fb.Count(core.SoundWarning); got != 1 {
		t.Fatalf("warnings = %d, want 1", got)
	}
	if g.captured.Len() != 0 {
		t.Fatal("hazard was collected")
	}
}

func TestHandReach(t *testing.T) {
	g, _ := newGame(t, settings.Default())
	g.objects = append(g.objects, RoadObject{
		ID: "far", Item: g.pool[0], Kind: engine.KindCollectible, Lane: 2, X: 45,
	})

	in := frame()
	in.Set(core.ActionPress)
	g.Step(in)
	if !g.hand.Active || g.hand.Lane != 2 {
		t.Fatalf("hand = %+v", g.hand)
	}

	for i := 0; i < 40 && g.captured.Len() == 0; i++ {
		g.Step(frame())
	}
	if g.captured.Len() != 1 {
		t.Fatal("hand did not reach the object")
	}

	for i := 0; i < 40; i++ {
		g.Step(frame())
	}
	if g.hand.Active {
		t.Fatal("hand still extended after its duration")
	}
}

func TestShoulderPenalty(t *testing.T) {
	g, fb := newGame(t, settings.Default())

	for i := 0; i < 60; i++ {
		g.Step(pointerAt(99))
	}
	if got := g.penalty.Kind(g.round.Clock.Now()); got != engine.PenaltyShoulder {
		t.Fatalf("penalty = %v, want shoulder (tractor y = %v)", got, g.tractor.Position().Y)
	}
	if fb.Count(core.SoundWarning) != 1 {
		t.Fatalf("warnings = %d", fb.Count(core.SoundWarning))
	}

	// Pointer in the reserved zone: the band narrows to the lanes and the
	// penalty lifts at once.
	g.Step(pointerAt(5))
	if got := g.penalty.Kind(g.round.Clock.Now()); got != engine.PenaltyNone {
		t.Fatalf("penalty = %v, want none", got)
	}
	for i := 0; i < 120; i++ {
		g.Step(pointerAt(5))
	}
	top, _ := g.road.Bounds(g.cfg.Tractor.X, g.round.Clock.Millis())
	if y := g.tractor.Position().Y; y < top {
		t.Fatalf("tractor y = %v above asphalt top %v", y, top)
	}
	if g.penalty.SpeedFactor() != 1 {
		t.Fatalf("factor = %v, want recovered", g.penalty.SpeedFactor())
	}
}

func TestSpawnCapAndLanes(t *testing.T) {
	g, _ := newGame(t, settings.Default())
	spawned := 0
	seen := map[string]bool{}
	for i := 0; i < 6000; i++ {
		g.Step(pointerAt(5))
		if len(g.objects) > g.cfg.Objects.Cap {
			t.Fatalf("active = %d over cap", len(g.objects))
		}
		for _, o := range g.objects {
			if o.Lane < 0 || o.Lane >= g.road.Lanes() {
				t.Fatalf("lane %d out of range", o.Lane)
			}
			if !seen[o.ID] {
				seen[o.ID] = true
				spawned++
			}
		}
	}
	if spawned == 0 {
		t.Fatal("nothing spawned")
	}
}

func TestCompletionAfterDelay(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 1
	g, _ := newGame(t, s)
	if g.State().Required != 3 {
		t.Fatalf("required = %d", g.State().Required)
	}

	for i, id := range []string{"a", "b", "c"} {
		place(g, id)
		if g.Step(frame()).JustCompleted {
			t.Fatalf("completed at capture %d", i)
		}
	}
	reached := g.round.Clock.Now()

	snap, _ := g.Snapshot()
	if len(snap.Trailers) != 3 {
		t.Fatalf("trailers = %d", len(snap.Trailers))
	}

	completions := 0
	for i := 0; i < 120; i++ {
		if g.Step(frame()).JustCompleted {
			completions++
			if wait := g.round.Clock.Now() - reached; wait < 800*time.Millisecond {
				t.Fatalf("completed after %v", wait)
			}
		}
	}
	if completions != 1 {
		t.Fatalf("completions = %d", completions)
	}
}

func TestRestartAfterCompletion(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 1
	g, _ := newGame(t, s)
	for _, id := range []string{"a", "b", "c"} {
		place(g, id)
		g.Step(frame())
	}
	for i := 0; i < 60; i++ {
		g.Step(frame())
	}
	if !g.State().Completed {
		t.Fatal("not completed")
	}

	in := frame()
	in.Set(core.ActionRestart)
	g.Step(in)
	st := g.State()
	if st.Completed || st.Captured != 0 || len(g.objects) != 0 || len(g.collected) != 0 {
		t.Fatalf("state after restart = %+v", st)
	}
}

func TestRender(t *testing.T) {
	g, _ := newGame(t, settings.Default())
	place(g, "x")
	g.Step(pointerAt(60))
	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if scr.Row(0) == "" {
		t.Fatal("empty HUD")
	}
}
