package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/platform/shell"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
	"github.com/vovakirdan/calma/internal/storage"
)

// Deps are the services a session shares. Any of them may be nil.
type Deps struct {
	Store    *storage.Store
	Settings *settings.Manager
	Feedback core.Feedback
	Logger   *log.Logger
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.Default()
	}
	return d.Logger
}

func (d Deps) feedback() core.Feedback {
	if d.Feedback == nil {
		return core.NopFeedback{}
	}
	return d.Feedback
}

func (d Deps) settings() settings.Settings {
	if d.Settings == nil {
		return settings.Default()
	}
	return d.Settings.Get()
}

// GameModel is the Bubble Tea model running one game: it feeds the pointer
// and keys into the game every tick, plays the fanfare and the spoken
// congratulation on completion and records the finished round.
type GameModel struct {
	game     registry.Game
	screen   *core.Screen
	deps     Deps
	config   core.RuntimeConfig
	settings settings.Settings
	keys     *KeyMapper
	input    core.InputFrame
	pointer  core.Pointer
	state    core.GameState
	lastTick time.Time
	tracker  *shell.Tracker
	now      func() time.Time

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new game model.
func NewGameModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.Feedback = deps.feedback()
	return GameModel{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:     deps,
		config:   cfg,
		settings: deps.settings(),
		keys:     NewKeyMapper(),
		input:    core.NewInputFrame(),
		tracker:  shell.NewTracker(game.ID(), deps.Store, cfg.Feedback, deps.Logger),
		now:      time.Now,
	}
}

// Init starts the round and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config, m.settings)
	return tickCmd(m.config.TickRate)
}

// Start is Init for models kept by a parent: the pointer receiver keeps
// the start time.
func (m *GameModel) Start() tea.Cmd {
	m.tracker.Start(m.now())
	m.state = core.GameState{}
	return m.Init()
}

// Resume restarts the tick loop of a suspended game. The game stays
// paused until the player unpauses it.
func (m *GameModel) Resume() tea.Cmd {
	m.backToMenu = false
	m.lastTick = time.Time{}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.pointer = PointerFromMouse(msg, m.screen.Width(), m.screen.Height(), m.pointer)
		return m, nil
	case tea.WindowSizeMsg:
		// Positions are relative to the play area, so a resize never resets.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	case CongratsMsg:
		if msg.round == m.tracker.Round() {
			m.tracker.Congratulate(m.settings)
		}
		return m, nil
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	}
	if action == core.ActionBack {
		if m.state.Completed || m.state.Paused {
			m.backToMenu = true
		}
		return m, nil
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	m.keys.MapKeyToPointer(msg, &m.pointer)
	return m, nil
}

func (m GameModel) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.input.Elapsed = t.Sub(m.lastTick)
	}
	m.lastTick = t

	prev := m.state
	m.input.Pointer = m.pointer
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	if m.tracker.Observe(prev, result, m.settings, m.now()) {
		return m, tea.Batch(tickCmd(m.config.TickRate), congratsCmd(m.tracker.Round()))
	}
	return m, tickCmd(m.config.TickRate)
}

// ApplySettings switches the running game to new settings, restarting the
// round only when the change requires it.
func (m *GameModel) ApplySettings(next settings.Settings) {
	if registry.ApplySettings(m.game, m.config, m.settings, next) {
		m.tracker.Start(m.now())
		m.state = m.game.State()
	}
	m.settings = next
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".calma", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.logger().Warn("screenshot failed", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.pointer)
}

// State returns the last stepped state.
func (m GameModel) State() core.GameState { return m.state }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run plays one game in the terminal until the player quits.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, deps, cfg)
	model.tracker.Start(model.now())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	game.Close()
	return err
}
