// Package gui runs a game in an ebiten window, with real mouse and touch
// input. The game draws into the same cell screen the terminal uses; the
// window paints the cells as colored blocks and, for the jigsaw, strokes
// the true piece outlines on top.
package gui

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/platform/shell"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
	"github.com/vovakirdan/calma/internal/storage"
)

// Cell grid of the window.
const (
	Cols  = 100
	Rows  = 37
	CellW = 8
	CellH = 16
)

// Options are the services a window uses. Any of them may be nil.
type Options struct {
	Store    *storage.Store
	Settings *settings.Manager
	Feedback core.Feedback
	Logger   *log.Logger
}

// App implements ebiten.Game around one registered game.
type App struct {
	game     registry.Game
	cfg      core.RuntimeConfig
	settings settings.Settings
	screen   *core.Screen
	input    core.InputFrame
	state    core.GameState
	tracker  *shell.Tracker
	logger   *log.Logger
	bg       color.RGBA

	last     time.Time
	touches  []ebiten.TouchID
	touching bool
	pointer  core.Pointer
}

// New creates the window model and starts the first round.
func New(game registry.Game, opts Options, cfg core.RuntimeConfig) *App {
	if opts.Feedback == nil {
		opts.Feedback = core.NopFeedback{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = Cols, Rows
	cfg.Feedback = opts.Feedback

	s := settings.Default()
	if opts.Settings != nil {
		s = opts.Settings.Get()
	}

	a := &App{
		game:     game,
		cfg:      cfg,
		settings: s,
		screen:   core.NewScreen(Cols, Rows),
		input:    core.NewInputFrame(),
		tracker:  shell.NewTracker(game.ID(), opts.Store, opts.Feedback, opts.Logger),
		logger:   opts.Logger,
		bg:       background(s, cfg.Seed),
	}
	if opts.Settings != nil {
		opts.Settings.OnChange(func(_, next settings.Settings) { a.apply(next) })
	}
	game.Reset(cfg, s)
	a.tracker.Start(time.Now())
	return a
}

// background is the universe's backdrop, darkened so white text stays
// readable.
func background(s settings.Settings, seed int64) color.RGBA {
	u, err := catalog.Get(s.Universe, rand.New(rand.NewSource(seed)))
	if err != nil {
		return color.RGBA{R: 24, G: 24, B: 32, A: 255}
	}
	r, g, b, ok := core.HexRGB(u.Background)
	if !ok {
		return color.RGBA{R: 24, G: 24, B: 32, A: 255}
	}
	return color.RGBA{R: r / 5, G: g / 5, B: b / 5, A: 255}
}

func (a *App) apply(next settings.Settings) {
	if registry.ApplySettings(a.game, a.cfg, a.settings, next) {
		a.tracker.Start(time.Now())
		a.state = a.game.State()
		a.bg = background(next, a.cfg.Seed)
	}
	a.settings = next
}

// Update advances the game by the real time since the last call.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.game.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.input.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.input.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		a.input.Set(core.ActionCancel)
	}

	now := time.Now()
	if !a.last.IsZero() {
		a.input.Elapsed = now.Sub(a.last)
	}
	a.last = now

	a.pointer = a.readPointer()
	a.input.Pointer = a.pointer

	prev := a.state
	res := a.game.Step(a.input)
	a.state = res.State
	a.input.Clear()

	a.tracker.Observe(prev, res, a.settings, now)
	if a.tracker.Due(now) {
		a.tracker.Congratulate(a.settings)
	}
	return nil
}

// readPointer prefers the first touch. When the last touch lifts, the
// release is reported where the finger was, not at the mouse cursor.
func (a *App) readPointer() core.Pointer {
	a.touches = ebiten.AppendTouchIDs(a.touches[:0])
	if len(a.touches) > 0 {
		x, y := ebiten.TouchPosition(a.touches[0])
		a.touching = true
		return PointerAt(x, y, Cols*CellW, Rows*CellH, true)
	}
	if a.touching {
		a.touching = false
		p := a.pointer
		p.Down = false
		return p
	}
	x, y := ebiten.CursorPosition()
	return PointerAt(x, y, Cols*CellW, Rows*CellH, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

// PointerAt converts a pixel position on a w×h canvas to a pointer in
// percent. Positions outside the canvas are invalid.
func PointerAt(x, y, w, h int, down bool) core.Pointer {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x >= w || y >= h {
		return core.Pointer{Down: down}
	}
	return core.Pointer{
		X:     (float64(x) + 0.5) * 100 / float64(w),
		Y:     (float64(y) + 0.5) * 100 / float64(h),
		Valid: true,
		Down:  down,
	}
}

// Draw paints the current frame.
func (a *App) Draw(dst *ebiten.Image) {
	dst.Fill(a.bg)
	a.screen.Clear()
	a.game.Render(a.screen)
	drawCells(dst, a.screen)
	drawOverlay(dst, a.game)
}

// Layout keeps the logical canvas fixed; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return Cols * CellW, Rows * CellH
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) error {
	app := New(game, opts, cfg)
	ebiten.SetWindowSize(Cols*CellW, Rows*CellH)
	ebiten.SetWindowTitle("Camino de Calma - " + game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	err := ebiten.RunGame(app)
	game.Close()
	return err
}
