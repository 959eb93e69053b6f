package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// Viewport is the size of the play area in points. Fixed distances
	// such as the catch radius and the drag threshold are measured in it.
	Viewport Vec

	// Feedback receives sounds and speech. Nil means silent.
	Feedback Feedback
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Viewport: Vec{X: 800, Y: 600},
	}
}

// FeedbackOrNop returns the configured feedback sink or a silent one.
func (c RuntimeConfig) FeedbackOrNop() Feedback {
	if c.Feedback == nil {
		return NopFeedback{}
	}
	return c.Feedback
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Captured  int  // Items collected or placed so far
	Required  int  // Items needed to complete the round
	Completed bool // Completion has fired (exactly once per round)
	Paused    bool // Whether the game is paused
}

// Progress returns Captured/Required in [0, 1].
func (s GameState) Progress() float64 {
	if s.Required <= 0 {
		return 0
	}
	return ClampF(float64(s.Captured)/float64(s.Required), 0, 1)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// JustCompleted is true only on the tick where completion fired.
	JustCompleted bool
}
