package catch

import (
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/games/kit"
)

const netGlyph = '◎'

// Render draws the latest snapshot.
func (g *Game) Render(dst *core.Screen) {
	snap, ok := g.snap.Load()
	if !ok {
		return
	}
	w, h := dst.Width(), dst.Height()

	for _, o := range snap.Objects {
		if o.Caught {
			continue
		}
		x, y := kit.Cell(o.Pos, w, h)
		c := core.ParseHexColor(o.Item.Color)
		dst.SetColored(x, y, o.Item.Initial(), c)
		if snap.ShowWords {
			dst.DrawTextColored(x-len([]rune(o.Item.Name))/2, y+1, o.Item.Name, core.ColorGray)
		}
	}

	if snap.Tracking {
		x, y := kit.Cell(snap.Net, w, h)
		dst.SetColored(x, y, netGlyph, core.ColorBrightCyan)
	}

	kit.DrawHUD(dst, g.Title(), snap.State)
}
