// Package puzzle implements the jigsaw game: one picture of the theme is
// cut into interlocking pieces that the player drags onto their molds.
package puzzle

import (
	"math/rand"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/config"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/drag"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/games/kit"
	"github.com/vovakirdan/calma/internal/jigsaw"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
)

// ID is the registry id.
const ID = "puzzle"

// Layout in percent of the view: the board on the left, the inventory
// column on the right.
var (
	boardArea     = core.Box{X: 4, Y: 10, W: 56, H: 80}
	inventoryArea = core.Box{X: 64, Y: 10, W: 34, H: 80}
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Piece is one jigsaw piece and its controller.
type Piece struct {
	jigsaw.Piece
	ID     string
	Mold   core.Box
	Placed bool
	ctrl   *drag.Controller
}

// Game implements the jigsaw game.
type Game struct {
	cfg        config.PuzzleConfig
	difficulty *config.DifficultyManager
	rt         core.RuntimeConfig
	settings   settings.Settings
	voice      kit.Voice
	rng        *rand.Rand

	universe catalog.Universe
	item     catalog.Item
	side     int
	pieces   []*Piece // row-major
	order    []*Piece // inventory order
	surface  *drag.Surface
	placed   int
	round    *kit.Round
	tick     uint64

	snap engine.Published[Snapshot]
}

// New creates a jigsaw game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Rompecabezas" }

// Reset picks a random item of the universe and cuts it into a grid of
// 2, 3 or 4 pieces per side depending on the reading level.
func (g *Game) Reset(rt core.RuntimeConfig, s settings.Settings) {
	if g.round != nil {
		g.round.Close()
	}

	cfg, err := config.LoadPuzzle(configPath)
	if err != nil {
		cfg = config.DefaultPuzzleConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	if rt.Viewport.X <= 0 || rt.Viewport.Y <= 0 {
		rt.Viewport = core.DefaultConfig().Viewport
	}
	g.rt = rt
	g.settings = s.Normalize()
	g.voice = kit.NewVoice(rt, g.settings)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.placed = 0

	g.universe = kit.Universe(g.settings, g.rng)
	g.item = g.universe.Items[g.rng.Intn(len(g.universe.Items))]
	g.side = g.difficulty.GridSide(g.settings.Level)

	g.surface = drag.NewSurface(drag.Config{
		Threshold: cfg.Drag.ThresholdPoints,
		Ratio:     cfg.Drag.OverlapRatio,
		Return:    cfg.Drag.ReturnDuration(),
		Scale:     rt.Viewport.Scale(0.01),
	})

	grid := jigsaw.NewEdgeGrid(g.side, g.rng)
	cw, ch := boardArea.W/float64(g.side), boardArea.H/float64(g.side)
	g.pieces = g.pieces[:0]
	for _, jp := range grid.Pieces() {
		p := &Piece{
			Piece: jp,
			ID:    jp.ID(g.item.ID),
			Mold: core.Box{
				X: boardArea.X + float64(jp.Col)*cw,
				Y: boardArea.Y + float64(jp.Row)*ch,
				W: cw,
				H: ch,
			},
		}
		g.pieces = append(g.pieces, p)
		g.surface.SetTarget(moldID(p.ID), p.Mold)
	}

	g.order = append([]*Piece(nil), g.pieces...)
	g.rng.Shuffle(len(g.order), func(i, j int) {
		g.order[i], g.order[j] = g.order[j], g.order[i]
	})

	g.round = kit.NewRound(len(g.pieces), cfg.CompletionDelay())
	g.layoutInventory()
	g.publish()
}

func moldID(pieceID string) string { return "mold-" + pieceID }

// layoutInventory fills the inventory slots with the next unplaced pieces.
// Pieces without a free slot wait off-board until one opens.
func (g *Game) layoutInventory() {
	cw, ch := boardArea.W/float64(g.side), boardArea.H/float64(g.side)
	cols := max(1, int(inventoryArea.W/cw))
	rows := max(1, int(inventoryArea.H/ch))
	slots := cols * rows

	slot := 0
	for _, p := range g.order {
		if p.Placed {
			continue
		}
		if p.ctrl != nil && p.ctrl.Phase() != drag.Idle {
			slot++
			continue
		}
		if slot >= slots {
			if p.ctrl != nil {
				g.surface.Remove(p.ctrl)
				p.ctrl = nil
			}
			continue
		}
		home := core.Box{
			X: inventoryArea.X + float64(slot%cols)*cw,
			Y: inventoryArea.Y + float64(slot/cols)*ch,
			W: cw,
			H: ch,
		}
		slot++
		if p.ctrl == nil {
			p.ctrl = g.newController(p)
			g.surface.Add(p.ctrl)
		}
		g.setHome(p, home)
	}
}

func (g *Game) newController(p *Piece) *drag.Controller {
	c := &drag.Controller{
		ID:       p.ID,
		TargetID: moldID(p.ID),
		Mode:     drag.OverlapAreaRatio,
	}
	c.OnDrop = func(correct bool) { g.drop(p, correct) }
	return c
}

func (g *Game) setHome(p *Piece, home core.Box) {
	c := p.ctrl
	c.Home = home
	poly := jigsaw.Outline(p.Piece, g.cfg.Depth).Fit(home, g.cfg.Depth).Flatten(8)
	c.Hit = poly.Contains
}

func (g *Game) drop(p *Piece, correct bool) {
	if !correct {
		g.voice.Play(core.SoundError)
		return
	}
	if p.Placed {
		return
	}
	if g.placed+1 < len(g.pieces) {
		g.voice.Play(core.SoundPop)
	}
	p.Placed = true
	g.placed++
	g.surface.Remove(p.ctrl)
	p.ctrl = nil
	g.layoutInventory()

	if g.placed == len(g.pieces) {
		g.voice.Play(core.SoundLevelWin)
		g.voice.Speak(g.item.Name)
	}
	g.round.SetCount(g.placed)
}

// Step advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionRestart) && g.round.Completed() {
		rt := g.rt
		rt.Seed = g.rng.Int63()
		g.Reset(rt, g.settings)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.round.TogglePause()
		if g.round.Paused() {
			g.surface.Cancel()
		}
	}

	dt := g.round.Advance(in.Elapsed)
	if dt > 0 {
		g.tick++
		if in.Has(core.ActionCancel) {
			g.surface.Cancel()
		}
		g.surface.Update(in.Pointer, dt)
	}

	just := g.round.TakeJustCompleted()
	g.publish()
	return core.StepResult{State: g.State(), JustCompleted: just}
}

// Apply takes a settings change that does not need a new round.
func (g *Game) Apply(s settings.Settings) {
	g.settings = s.Normalize()
	g.voice.Enabled = g.settings.VoiceEnabled
}

// State returns progress, completion and pause flags.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return g.round.State()
}

// Close stops the round; a pending completion never fires.
func (g *Game) Close() {
	if g.round != nil {
		g.round.Close()
	}
}
