package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/calma/internal/core"
)

// pointerStep is how far one arrow key moves the keyboard pointer, in
// percent of the play area.
const pointerStep = 4.0

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	case "enter":
		return core.ActionPress, false
	case "x":
		return core.ActionCancel, false
	}
	return core.ActionNone, false
}

// MapKeyToPointer moves the keyboard pointer with the arrow keys and
// toggles the button with enter, for terminals without mouse reporting.
// Returns false when the key does not touch the pointer.
func (km *KeyMapper) MapKeyToPointer(msg tea.KeyMsg, p *core.Pointer) bool {
	if !p.Valid {
		*p = core.Pointer{X: 50, Y: 50, Valid: true}
	}
	switch msg.String() {
	case "left", "h":
		p.X -= pointerStep
	case "right", "l":
		p.X += pointerStep
	case "up", "k":
		p.Y -= pointerStep
	case "down", "j":
		p.Y += pointerStep
	case "enter":
		p.Down = !p.Down
	default:
		return false
	}
	p.X = core.ClampF(p.X, 0, 100)
	p.Y = core.ClampF(p.Y, 0, 100)
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
