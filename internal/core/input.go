package core

import "time"

// Action represents a semantic game action, abstracted from physical input.
type Action int

const (
	ActionNone    Action = iota
	ActionPress          // Primary pointer went down this frame
	ActionRelease        // Primary pointer went up this frame
	ActionCancel         // Pointer capture lost (window blur, touch cancel)
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - play again after completion
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // Space - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPress:
		return "Press"
	case ActionRelease:
		return "Release"
	case ActionCancel:
		return "Cancel"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Pointer is the pointer (mouse or single touch) position in percent of the
// play area. X grows to the right, Y grows downward, both in [0, 100].
type Pointer struct {
	X, Y  float64
	Valid bool // false until the pointer has been seen inside the play area
	Down  bool // primary button or touch currently held
}

// Pos returns the pointer position as a vector.
func (p Pointer) Pos() Vec { return Vec{p.X, p.Y} }

// InputFrame is the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Pointer is the latest known pointer state.
	Pointer Pointer
	// Elapsed is the real time since the previous frame. Zero means one
	// nominal tick at the configured tick rate.
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame. Pointer state is kept.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Elapsed = f.Elapsed
	return clone
}
