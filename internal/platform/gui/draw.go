package gui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/games/puzzle"
	"github.com/vovakirdan/calma/internal/jigsaw"
)

// RGBA returns the window color of a palette entry.
func RGBA(c core.Color) color.RGBA {
	rgb, ok := core.Palette[c]
	if !ok {
		rgb = core.Palette[core.ColorDefault]
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

// shade is the coverage of a block rune, 0 for anything else.
func shade(r rune) float64 {
	switch r {
	case '█':
		return 1
	case '▓':
		return 0.75
	case '▒':
		return 0.5
	case '░':
		return 0.25
	}
	return 0
}

func scale(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{R: uint8(float64(c.R) * k), G: uint8(float64(c.G) * k), B: uint8(float64(c.B) * k), A: uint8(float64(c.A) * k)}
}

// drawCells paints block runes as filled cells and prints ASCII runs with
// the debug font. Other runes become a small dot in their color.
func drawCells(dst *ebiten.Image, s *core.Screen) {
	for y := range s.Height() {
		var run strings.Builder
		runX := 0
		flush := func() {
			if run.Len() > 0 {
				ebitenutil.DebugPrintAt(dst, run.String(), runX*CellW, y*CellH)
				run.Reset()
			}
		}
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			px, py := float32(x*CellW), float32(y*CellH)
			switch {
			case cell.Rune == ' ' || cell.Rune == 0:
				flush()
			case shade(cell.Rune) > 0:
				flush()
				vector.DrawFilledRect(dst, px, py, CellW, CellH, scale(RGBA(cell.Color), shade(cell.Rune)), false)
			case cell.Rune < 128:
				if run.Len() == 0 {
					runX = x
				}
				run.WriteRune(cell.Rune)
				if cell.Color != core.ColorDefault && cell.Color != core.ColorWhite && cell.Color != core.ColorBrightWhite {
					vector.DrawFilledRect(dst, px, py+CellH-2, CellW, 2, RGBA(cell.Color), false)
				}
			default:
				flush()
				vector.DrawFilledRect(dst, px+CellW/2-1.5, py+CellH/2-1.5, 3, 3, RGBA(cell.Color), true)
			}
		}
		flush()
	}
}

// snapshotter is implemented by the jigsaw game.
type snapshotter interface {
	Snapshot() (puzzle.Snapshot, bool)
}

// drawOverlay strokes the real outline of every jigsaw piece on the board
// or in hand, over the cell rendering.
func drawOverlay(dst *ebiten.Image, game any) {
	sp, ok := game.(snapshotter)
	if !ok {
		return
	}
	snap, ok := sp.Snapshot()
	if !ok {
		return
	}
	w, h := float64(Cols*CellW), float64(Rows*CellH)
	for _, p := range snap.Pieces {
		if !p.Placed && !p.Visible {
			continue
		}
		clr := RGBA(core.ColorGray)
		switch {
		case p.ID == snap.Lifted:
			clr = RGBA(core.ColorBrightCyan)
		case p.Placed:
			clr = RGBA(core.ParseHexColor(snap.Item.Color))
		}
		poly := jigsaw.Outline(p.Piece, snap.Depth).Fit(p.Box, snap.Depth).Flatten(8)
		strokePolygon(dst, poly, w/100, h/100, clr)
	}
}

// strokePolygon draws a closed polygon given in percent, scaled by kx, ky.
func strokePolygon(dst *ebiten.Image, poly jigsaw.Polygon, kx, ky float64, clr color.Color) {
	n := len(poly)
	for i := range n {
		a, b := poly[i], poly[(i+1)%n]
		vector.StrokeLine(dst,
			float32(a.X*kx), float32(a.Y*ky),
			float32(b.X*kx), float32(b.Y*ky),
			1.5, clr, true)
	}
}
