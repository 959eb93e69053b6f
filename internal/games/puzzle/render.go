package puzzle

import (
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/games/kit"
	"github.com/vovakirdan/calma/internal/jigsaw"
)

// Render draws the latest snapshot. Piece outlines are rasterized by
// sampling each cell centre against the flattened jigsaw path.
func (g *Game) Render(dst *core.Screen) {
	snap, ok := g.snap.Load()
	if !ok {
		return
	}
	w, h := dst.Width(), dst.Height()
	itemColor := core.ParseHexColor(snap.Item.Color)

	board := kit.CellRect(snap.Board, w, h)
	dst.DrawBox(core.NewRect(board.X-1, board.Y-1, board.W+2, board.H+2), core.ColorGray)

	for _, p := range snap.Pieces {
		fill(dst, p, snap.Depth, p.Mold, '·', core.ColorGray)
	}

	var lifted *PieceView
	for i := range snap.Pieces {
		p := &snap.Pieces[i]
		switch {
		case p.Placed:
			fill(dst, *p, snap.Depth, p.Mold, '█', itemColor)
		case p.ID == snap.Lifted:
			lifted = p
		case p.Visible:
			fill(dst, *p, snap.Depth, p.Box, '▓', core.ColorWhite)
		}
	}
	if lifted != nil {
		fill(dst, *lifted, snap.Depth, lifted.Box, '▓', core.ColorBrightCyan)
	}

	if snap.ShowWords {
		x := board.X + board.W/2 - len([]rune(snap.Item.Name))/2
		dst.DrawTextColored(x, board.Bottom()+1, snap.Item.Name, core.ColorBrightWhite)
	}

	kit.DrawHUD(dst, g.Title(), snap.State)
}

func fill(dst *core.Screen, p PieceView, depth float64, body core.Box, r rune, c core.Color) {
	w, h := dst.Width(), dst.Height()
	poly := jigsaw.Outline(p.Piece, depth).Fit(body, depth).Flatten(6)
	bounds := poly.Bounds()
	x0, y0 := kit.Cell(bounds.Min(), w, h)
	x1, y1 := kit.Cell(bounds.Max(), w, h)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			centre := core.Vec{
				X: (float64(x) + 0.5) / float64(w) * 100,
				Y: (float64(y) + 0.5) / float64(h) * 100,
			}
			if poly.Contains(centre) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}
