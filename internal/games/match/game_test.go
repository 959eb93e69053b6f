package match

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/drag"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/settings"
)

func newGame(t *testing.T, s settings.Settings) (*Game, *core.RecordingFeedback) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	fb := &core.RecordingFeedback{}
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.Feedback = fb
	g := New()
	g.Reset(cfg, s)
	return g, fb
}

func frame(p core.Pointer) core.InputFrame {
	in := core.NewInputFrame()
	in.Elapsed = engine.NominalFrame
	in.Pointer = p
	return in
}

// dropOn drags p from its tray home so its box lands at dst.
func dropOn(g *Game, p *Piece, dst core.Vec) {
	home := p.ctrl.Home
	from := home.Center()
	d := dst.Sub(home.Min())
	g.Step(frame(core.Pointer{X: from.X, Y: from.Y, Valid: true, Down: true}))
	for i := 1; i <= 3; i++ {
		q := from.Add(d.Scale(float64(i) / 3))
		g.Step(frame(core.Pointer{X: q.X, Y: q.Y, Valid: true, Down: true}))
	}
	to := from.Add(d)
	g.Step(frame(core.Pointer{X: to.X, Y: to.Y, Valid: true}))
}

func place(g *Game, p *Piece) { dropOn(g, p, p.Mold.Min()) }

func TestLayoutColumns(t *testing.T) {
	tests := []struct {
		n, cols int
	}{
		{1, 1}, {2, 1}, {3, 2}, {6, 2}, {7, 3}, {12, 3},
	}
	for _, tt := range tests {
		cells := Layout(tt.n, boardArea)
		if len(cells) != tt.n {
			t.Fatalf("n=%d: cells = %d", tt.n, len(cells))
		}
		cols := 0
		for _, c := range cells {
			if c.Y == cells[0].Y {
				cols++
			}
			if c.X < boardArea.X || c.Max().X > boardArea.Max().X+1e-9 || c.Max().Y > boardArea.Max().Y+1e-9 {
				t.Errorf("n=%d: cell %+v outside board", tt.n, c)
			}
		}
		if cols != tt.cols {
			t.Errorf("n=%d: cols = %d, want %d", tt.n, cols, tt.cols)
		}
	}
	if Layout(0, boardArea) != nil {
		t.Error("empty layout should be nil")
	}
}

func TestImagesCompleteOnce(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 3
	g, fb := newGame(t, s)

	if got := g.State().Required; got != 3 {
		t.Fatalf("Required = %d, want 3", got)
	}
	for _, p := range g.pieces {
		place(g, p)
		if !p.Placed {
			t.Fatalf("%s not placed", p.ID)
		}
	}
	reachedAt := g.round.Clock.Now()

	want := []string{g.items[0].Name, g.items[1].Name, g.items[2].Name}
	if !slices.Equal(fb.Spoken, want) {
		t.Fatalf("spoken = %v, want %v", fb.Spoken, want)
	}

	completions := 0
	for range 200 {
		if g.Step(frame(core.Pointer{})).JustCompleted {
			completions++
			waited := g.round.Clock.Now() - reachedAt
			if waited < 1500*time.Millisecond || waited > 1500*time.Millisecond+engine.NominalFrame {
				t.Fatalf("completion after %v, want ~1.5s", waited)
			}
		}
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
}

func TestWrongMoldReturnsHome(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 2
	g, fb := newGame(t, s)

	a, b := g.pieces[0], g.pieces[1]
	home := a.ctrl.Home
	dropOn(g, a, b.Mold.Min())
	if a.Placed || a.ctrl.Phase() != drag.Returning {
		t.Fatalf("placed=%v phase=%v", a.Placed, a.ctrl.Phase())
	}
	for range 60 {
		g.Step(frame(core.Pointer{}))
	}
	if a.ctrl.Box() != home {
		t.Fatalf("box = %+v, want %+v", a.ctrl.Box(), home)
	}
	if len(fb.Spoken) != 0 || g.State().Captured != 0 {
		t.Fatalf("spoken = %v captured = %d", fb.Spoken, g.State().Captured)
	}
}

func TestWordPartsPartialVoice(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 1
	s.WordsAsObjects = true
	s.PartialVoiceEnabled = true
	s.Level = core.LevelLetters
	g, fb := newGame(t, s)

	item := g.items[0]
	parts := g.parts[item.ID]
	if len(parts) != len([]rune(item.Name)) {
		t.Fatalf("parts = %d for %q", len(parts), item.Name)
	}
	if got := g.State().Required; got != 1+len(parts) {
		t.Fatalf("Required = %d", got)
	}

	var want []string
	var prefix strings.Builder
	for _, p := range parts {
		place(g, p)
		prefix.WriteString(p.Part.Text)
		want = append(want, prefix.String())
	}
	if !slices.Equal(fb.Spoken, want) {
		t.Fatalf("spoken = %v, want %v", fb.Spoken, want)
	}
	if last := fb.Spoken[len(fb.Spoken)-1]; last != item.Name {
		t.Fatalf("last = %q, want the whole word", last)
	}
}

func TestWordPartsOutOfOrder(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 1
	s.WordsAsObjects = true
	s.Level = core.LevelLetters
	g, fb := newGame(t, s)

	parts := g.parts[g.items[0].ID]
	place(g, parts[1])
	if len(fb.Spoken) != 0 {
		t.Fatalf("spoke %v without partial voice", fb.Spoken)
	}

	s.PartialVoiceEnabled = true
	g, fb = newGame(t, s)
	parts = g.parts[g.items[0].ID]
	place(g, parts[1])
	if len(fb.Spoken) != 0 {
		t.Fatalf("spoke %v with no leading part placed", fb.Spoken)
	}
}

func TestWordPartAcceptsAnyOverlap(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 1
	s.WordsAsObjects = true
	g, _ := newGame(t, s)

	p := g.parts[g.items[0].ID][0]
	// Only a sliver overlaps the mold; an image would be rejected.
	dst := p.Mold.Min().Add(core.Vec{X: p.Mold.W - 0.5, Y: 0})
	dropOn(g, p, dst)
	if !p.Placed {
		t.Fatal("word part should be accepted on intersection")
	}
}

func TestVoiceDisabled(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 2
	s.VoiceEnabled = false
	g, fb := newGame(t, s)
	for _, p := range g.pieces {
		place(g, p)
	}
	if len(fb.Spoken) != 0 {
		t.Fatalf("spoken = %v", fb.Spoken)
	}
	if g.State().Captured != 2 {
		t.Fatalf("captured = %d", g.State().Captured)
	}
}

func TestRender(t *testing.T) {
	s := settings.Default()
	s.ItemCount = 2
	g, _ := newGame(t, s)
	place(g, g.pieces[0])

	scr := core.NewScreen(100, 30)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "ENCAJA") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, g.items[0].Name) {
		t.Fatalf("placed word not shown:\n%s", out)
	}
}
