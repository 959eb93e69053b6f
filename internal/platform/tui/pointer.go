package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/calma/internal/core"
)

// PointerFromMouse converts a mouse event on a w×h terminal to a pointer in
// percent of the play area, aimed at the centre of the cell. Only the left
// button drives Down; other buttons keep the previous state.
func PointerFromMouse(msg tea.MouseMsg, w, h int, prev core.Pointer) core.Pointer {
	if w <= 0 || h <= 0 {
		return prev
	}
	p := core.Pointer{
		X:     core.ClampF((float64(msg.X)+0.5)*100/float64(w), 0, 100),
		Y:     core.ClampF((float64(msg.Y)+0.5)*100/float64(h), 0, 100),
		Valid: true,
		Down:  prev.Down,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.Down = true
		}
	case tea.MouseActionRelease:
		p.Down = false
	}
	return p
}
