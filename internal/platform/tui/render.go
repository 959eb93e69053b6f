package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/calma/internal/core"
)

// hudBackground shades the top row, where every game draws its title and
// progress.
const hudBackground = lipgloss.Color("#1f2a38")

// Cell colors come from core.Palette, the same RGB values the window
// uses; lipgloss downsamples them on terminals without true color.
var (
	fgStyles  = make(map[core.Color]lipgloss.Style, len(core.Palette))
	hudStyles = make(map[core.Color]lipgloss.Style, len(core.Palette))

	pointerStyle     = lipgloss.NewStyle().Reverse(true)
	pointerDownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(paletteColor(core.ColorBrightYellow))
)

func init() {
	for c := range core.Palette {
		fg := lipgloss.NewStyle()
		if c != core.ColorDefault {
			fg = fg.Foreground(paletteColor(c))
		}
		fgStyles[c] = fg
		hudStyles[c] = fg.Background(hudBackground)
	}
}

func paletteColor(c core.Color) lipgloss.Color {
	rgb := core.Palette[c]
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]))
}

// span is a run of cells drawn with one style.
type span struct {
	text    string
	color   core.Color
	hud     bool
	pointer bool
}

func (s span) style() lipgloss.Style {
	switch {
	case s.pointer:
		return pointerStyle
	case s.hud:
		if st, ok := hudStyles[s.color]; ok {
			return st
		}
		return hudStyles[core.ColorDefault]
	}
	if st, ok := fgStyles[s.color]; ok {
		return st
	}
	return fgStyles[core.ColorDefault]
}

// pointerCell is the cell under a percent pointer, or -1, -1 when the
// pointer is not on the play area.
func pointerCell(p core.Pointer, w, h int) (int, int) {
	if !p.Valid || w <= 0 || h <= 0 {
		return -1, -1
	}
	x := min(int(p.X/100*float64(w)), w-1)
	y := min(int(p.Y/100*float64(h)), h-1)
	return max(0, x), max(0, y)
}

// spans groups each row into runs of equal color. The top row is the HUD;
// the cell under the pointer always gets a run of its own so keyboard
// players can see where they are pointing.
func spans(s *core.Screen, p core.Pointer) [][]span {
	px, py := pointerCell(p, s.Width(), s.Height())
	rows := make([][]span, s.Height())
	for y := range s.Height() {
		var row []span
		var run strings.Builder
		cur := span{hud: y == 0}
		flush := func() {
			if run.Len() > 0 {
				cur.text = run.String()
				row = append(row, cur)
				run.Reset()
			}
		}
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			under := x == px && y == py
			if under || cur.pointer || cell.Color != cur.color {
				flush()
				cur = span{color: cell.Color, hud: y == 0, pointer: under}
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		rows[y] = row
	}
	return rows
}

// RenderFrame converts a game screen to styled terminal text and marks
// the pointer cell, highlighted while the button is held.
func RenderFrame(s *core.Screen, p core.Pointer) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, row := range spans(s, p) {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, sp := range row {
			st := sp.style()
			if sp.pointer && p.Down {
				st = pointerDownStyle
			}
			sb.WriteString(st.Render(sp.text))
		}
	}
	return sb.String()
}
