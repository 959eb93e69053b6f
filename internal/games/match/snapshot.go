package match

import (
	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/drag"
)

// PieceView is one piece as drawn this frame.
type PieceView struct {
	ID     string
	Kind   Kind
	Item   catalog.Item
	Text   string
	Mold   core.Box
	Placed bool
	Box    core.Box
	Phase  drag.Phase
}

// Snapshot is the read-only view of one frame.
type Snapshot struct {
	Tick           uint64
	Background     string
	Cells          []core.Box
	Items          []catalog.Item
	Pieces         []PieceView
	Lifted         string
	ShowWords      bool
	ShowMolds      bool
	WordsAsObjects bool
	Level          core.Level
	State          core.GameState
}

func (g *Game) publish() {
	views := make([]PieceView, len(g.pieces))
	lifted := ""
	for i, p := range g.pieces {
		v := PieceView{
			ID:     p.ID,
			Kind:   p.Kind,
			Item:   p.Item,
			Text:   p.Text(),
			Mold:   p.Mold,
			Placed: p.Placed,
			Box:    p.ctrl.Box(),
			Phase:  p.ctrl.Phase(),
		}
		if p.Placed {
			v.Box = p.Mold
		} else if p.ctrl.Active() {
			lifted = p.ID
		}
		views[i] = v
	}
	g.snap.Publish(Snapshot{
		Tick:           g.tick,
		Background:     g.universe.Background,
		Cells:          g.cells,
		Items:          g.items,
		Pieces:         views,
		Lifted:         lifted,
		ShowWords:      g.settings.ShowWords,
		ShowMolds:      g.settings.ShowMolds,
		WordsAsObjects: g.settings.WordsAsObjects,
		Level:          g.settings.Level,
		State:          g.State(),
	})
}

// Snapshot returns the latest published frame.
func (g *Game) Snapshot() (Snapshot, bool) {
	return g.snap.Load()
}
