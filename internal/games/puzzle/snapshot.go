package puzzle

import (
	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/drag"
	"github.com/vovakirdan/calma/internal/jigsaw"
)

// PieceView is one piece as drawn this frame.
type PieceView struct {
	jigsaw.Piece
	ID     string
	Mold   core.Box
	Placed bool
	// Visible is false for pieces waiting for a free inventory slot.
	Visible bool
	Box     core.Box
	Phase   drag.Phase
}

// Snapshot is the read-only view of one frame.
type Snapshot struct {
	Tick       uint64
	Item       catalog.Item
	Background string
	Side       int
	Depth      float64
	Board      core.Box
	Pieces     []PieceView // row-major
	Lifted     string      // id of the piece being dragged or returning
	ShowWords  bool
	State      core.GameState
}

func (g *Game) publish() {
	views := make([]PieceView, len(g.pieces))
	lifted := ""
	for i, p := range g.pieces {
		v := PieceView{Piece: p.Piece, ID: p.ID, Mold: p.Mold, Placed: p.Placed}
		switch {
		case p.Placed:
			v.Box = p.Mold
		case p.ctrl != nil:
			v.Visible = true
			v.Box = p.ctrl.Box()
			v.Phase = p.ctrl.Phase()
			if p.ctrl.Active() {
				lifted = p.ID
			}
		}
		views[i] = v
	}
	g.snap.Publish(Snapshot{
		Tick:       g.tick,
		Item:       g.item,
		Background: g.universe.Background,
		Side:       g.side,
		Depth:      g.cfg.Depth,
		Board:      boardArea,
		Pieces:     views,
		Lifted:     lifted,
		ShowWords:  g.settings.ShowWords,
		State:      g.State(),
	})
}

// Snapshot returns the latest published frame.
func (g *Game) Snapshot() (Snapshot, bool) {
	return g.snap.Load()
}
