package drive

import (
	"math"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/games/kit"
)

// Visual characters for rendering
const (
	AsphaltChar  = ' '
	ShoulderChar = '░'
	EdgeChar     = '━'
	LaneChar     = '╌'
	SkyChar      = '~'
	MudChar      = '≈'
	TractorChar  = '■'
	HandChar     = '─'
	HandTipChar  = '✋'
)

// Render draws the latest snapshot.
func (g *Game) Render(dst *core.Screen) {
	snap, ok := g.snap.Load()
	if !ok {
		return
	}
	w, h := dst.Width(), dst.Height()

	drawSky(dst, snap, w, h)
	drawRoad(dst, snap, w, h)

	for _, o := range snap.Objects {
		x, y := kit.Cell(core.Vec{X: o.X, Y: o.Y}, w, h)
		if o.Kind == engine.KindHazard {
			dst.DrawTextColored(x-1, y, string([]rune{MudChar, MudChar, MudChar}), core.ColorBrown)
			continue
		}
		dst.SetColored(x, y, o.Item.Initial(), core.ParseHexColor(o.Item.Color))
		if snap.ShowWords {
			dst.DrawTextColored(x-len([]rune(o.Item.Name))/2, y+1, o.Item.Name, core.ColorWhite)
		}
	}

	for _, tr := range snap.Trailers {
		x, y := kit.Cell(tr.Pos, w, h)
		dst.SetColored(x, y, tr.Item.Initial(), core.ColorBrown)
	}

	tx, ty := kit.Cell(snap.Tractor, w, h)
	dst.SetColored(tx, ty, TractorChar, core.ColorBrightGreen)

	if snap.Hand.Active {
		hx, hy := kit.Cell(snap.Hand.Tip, w, h)
		for x := tx + 1; x < hx; x++ {
			// Straight segment, bending toward the tip over the last third.
			y := ty
			if span := hx - tx; span > 0 && x-tx > span*2/3 {
				y = hy
			}
			dst.SetColored(x, y, HandChar, core.ColorGray)
		}
		dst.SetColored(hx, hy, HandTipChar, core.ColorBrightYellow)
	}

	if snap.Penalty != engine.PenaltyNone {
		label := " BARRO "
		if snap.Penalty == engine.PenaltyShoulder {
			label = " ¡A LA CARRETERA! "
		}
		dst.DrawTextCenteredColored(1, label, core.ColorOrange)
	}

	kit.DrawHUD(dst, g.Title(), snap.State)
}

func drawSky(dst *core.Screen, snap Snapshot, w, h int) {
	rows := int(snap.Road.Config().ReservedTop / 100 * float64(h))
	for y := 1; y < rows; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%7 == 0 {
				dst.SetColored(x, y, SkyChar, core.ColorBlue)
			}
		}
	}
}

func drawRoad(dst *core.Screen, snap Snapshot, w, h int) {
	road := snap.Road
	cfg := road.Config()
	dash := int(snap.TimeMs*0.4/10) % 5

	for col := 0; col < w; col++ {
		xp := (float64(col) + 0.5) / float64(w) * 100
		c := road.CenterAt(xp, snap.TimeMs)
		top, bottom := road.Bounds(xp, snap.TimeMs)

		row := func(p float64) int { return int(math.Round(p / 100 * float64(h))) }
		for y := row(top - cfg.Shoulder); y < row(top); y++ {
			dst.SetColored(col, y, ShoulderChar, core.ColorYellow)
		}
		for y := row(bottom) + 1; y <= row(bottom+cfg.Shoulder); y++ {
			dst.SetColored(col, y, ShoulderChar, core.ColorYellow)
		}
		for y := row(top) + 1; y < row(bottom); y++ {
			dst.SetColored(col, y, AsphaltChar, core.ColorGray)
		}
		dst.SetColored(col, row(top), EdgeChar, core.ColorOrange)
		dst.SetColored(col, row(bottom), EdgeChar, core.ColorOrange)

		if (col+dash)%5 < 2 {
			continue
		}
		for i := 1; i < road.Lanes(); i++ {
			off := (float64(i)/float64(road.Lanes()) - 0.5) * cfg.Height
			dst.SetColored(col, row(c+off), LaneChar, core.ColorGray)
		}
	}
}
