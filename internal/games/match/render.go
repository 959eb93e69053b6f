package match

import (
	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/games/kit"
)

// Render draws molds on the board, loose pieces in the tray and the
// lifted piece on top.
func (g *Game) Render(dst *core.Screen) {
	snap, ok := g.snap.Load()
	if !ok {
		return
	}
	w, h := dst.Width(), dst.Height()

	for _, p := range snap.Pieces {
		if p.Placed || !snap.ShowMolds && p.Kind == KindImage {
			continue
		}
		c := core.ColorGray
		if p.ID == snap.Lifted {
			c = core.ColorBrightBlue
		}
		dst.DrawBox(kit.CellRect(p.Mold, w, h), c)
	}

	var lifted *PieceView
	for i := range snap.Pieces {
		p := &snap.Pieces[i]
		switch {
		case p.Placed:
			drawPiece(dst, *p, p.Mold, core.ColorBrightWhite)
		case p.ID == snap.Lifted:
			lifted = p
		default:
			drawPiece(dst, *p, p.Box, core.ColorWhite)
		}
	}

	if snap.ShowWords && !snap.WordsAsObjects {
		for _, p := range snap.Pieces {
			if p.Kind != KindImage || !p.Placed {
				continue
			}
			r := kit.CellRect(p.Mold, w, h)
			word := catalog.Format(p.Item.Name, snap.Level)
			dst.DrawTextColored(r.X+r.W/2-len([]rune(word))/2, r.Bottom(), word, core.ColorBrightWhite)
		}
	}

	if lifted != nil {
		drawPiece(dst, *lifted, lifted.Box, core.ColorBrightCyan)
	}
	kit.DrawHUD(dst, g.Title(), snap.State)
}

func drawPiece(dst *core.Screen, p PieceView, b core.Box, text core.Color) {
	r := kit.CellRect(b, dst.Width(), dst.Height())
	if p.Kind == KindImage {
		dst.DrawRectColored(r, '█', core.ParseHexColor(p.Item.Color))
	}
	cy := r.Y + r.H/2
	cx := r.X + r.W/2 - len([]rune(p.Text))/2
	dst.DrawTextColored(cx, cy, p.Text, text)
}
