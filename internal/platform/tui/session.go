package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
)

type view int

const (
	viewMenu view = iota
	viewGame
	viewSettings
	viewHistory
)

// SessionModel manages the full session flow: menu -> game, settings or
// history -> menu. Going back from a paused game keeps it suspended and
// the menu offers to continue it; settings changed meanwhile are applied
// to it on the way back.
type SessionModel struct {
	deps     Deps
	config   core.RuntimeConfig
	view     view
	menu     MenuModel
	game     *GameModel
	settings SettingsModel
	history  HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model. Without a settings manager
// the session keeps its settings in memory.
func NewSessionModel(deps Deps, cfg core.RuntimeConfig) SessionModel {
	if deps.Settings == nil {
		deps.Settings = settings.NewManager(nil, deps.logger())
	}
	m := SessionModel{deps: deps, config: cfg}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	resume := ""
	if m.game != nil {
		resume = m.game.game.Title()
	}
	return NewMenuModel(m.deps.Settings.Get().UserName, resume, m.config.ScreenW, m.config.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		if m.game != nil && m.view != viewGame {
			next, _ := m.game.Update(msg)
			gm := next.(GameModel)
			m.game = &gm
		}
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewSettings:
		return m.updateSettings(msg)
	case viewHistory:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg, CongratsMsg:
		// Leftovers from a game that went back to the menu.
		return m, nil
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	if m.menu.IsQuitting() {
		return m.quit()
	}
	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Choice {
	case ChoiceGame:
		game, err := registry.Create(selected.GameID)
		if err != nil {
			m.deps.logger().Error("cannot create game", "game", selected.GameID, "err", err)
			m.menu = m.newMenu()
			return m, nil
		}
		if m.game != nil {
			m.game.game.Close()
		}
		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		gm := NewGameModel(game, m.deps, cfg)
		m.game = &gm
		m.view = viewGame
		return m, m.game.Start()

	case ChoiceResume:
		if m.game == nil {
			m.menu = m.newMenu()
			return m, nil
		}
		m.view = viewGame
		return m, m.game.Resume()

	case ChoiceSettings:
		m.settings = NewSettingsModel(m.deps.Settings, m.config.ScreenW, m.config.ScreenH)
		m.view = viewSettings
		return m, m.settings.Init()

	case ChoiceHistory:
		m.history = NewHistoryModel(m.deps.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewHistory
		return m, m.history.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gm := next.(GameModel)
	m.game = &gm

	if m.game.IsQuitting() {
		m.game = nil
		return m.quit()
	}
	if m.game.BackToMenu() {
		if m.game.State().Completed {
			m.game.game.Close()
			m.game = nil
		}
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.settings.Update(msg)
	m.settings = next.(SettingsModel)

	if m.settings.IsQuitting() {
		return m.quit()
	}
	if m.settings.Done() {
		if m.game != nil {
			m.game.ApplySettings(m.settings.Settings())
		}
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	m.history = next.(HistoryModel)

	if m.history.IsQuitting() {
		return m.quit()
	}
	if m.history.IsGoingBack() {
		m.view = viewMenu
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	if m.game != nil {
		m.game.game.Close()
	}
	m.quitting = true
	return m, tea.Quit
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewSettings:
		return m.settings.View()
	case viewHistory:
		return m.history.View()
	}
	return m.menu.View()
}

// Suspended reports whether a paused game is waiting to be continued.
func (m SessionModel) Suspended() bool { return m.game != nil && m.view != viewGame }

// RunSession runs the menu-driven session in the local terminal.
func RunSession(deps Deps, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(deps, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
