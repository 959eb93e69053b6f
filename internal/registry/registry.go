// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/settings"
)

// Game is the interface every mini-game implements.
// Games contain pure logic with no terminal or window dependencies.
// The platform handles input mapping, timing, audio and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "catch", "drive").
	// Used for CLI commands and session history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new round with the given player settings.
	// Called once at start, on restart, and whenever a settings change
	// requires it (see settings.Settings.NeedsReset).
	Reset(cfg core.RuntimeConfig, s settings.Settings)

	// Step advances the simulation by one frame.
	// The frame carries the pointer, abstract actions and elapsed time.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns progress, completion and pause flags.
	State() core.GameState

	// Close ends the session: pending timers are cancelled and later
	// callbacks never fire.
	Close()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Tunable is implemented by games that can take settings changes which do
// not require a new round (word display, voice).
type Tunable interface {
	Apply(s settings.Settings)
}

// ApplySettings switches a running game from prev to next settings. A new
// universe, item count or level restarts the round; anything else is
// applied in place when the game supports it. Reports whether it reset.
func ApplySettings(g Game, cfg core.RuntimeConfig, prev, next settings.Settings) bool {
	if next.NeedsReset(prev) {
		g.Reset(cfg, next)
		return true
	}
	if t, ok := g.(Tunable); ok {
		t.Apply(next)
	}
	return false
}
