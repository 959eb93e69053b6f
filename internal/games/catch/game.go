// Package catch implements the catch game: the theme's items float and
// bounce around the board and the player sweeps a net over them.
package catch

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/config"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/games/kit"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
)

// ID is the registry id.
const ID = "catch"

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Object is one floating item.
type Object struct {
	ID       string
	Item     catalog.Item
	Pos      core.Vec // percent of the board
	Vel      core.Vec // percent per nominal frame
	Scale    float64
	Rotation float64 // degrees
	Caught   bool
}

// Game implements the catch game.
type Game struct {
	cfg        config.CatchConfig
	difficulty *config.DifficultyManager
	rt         core.RuntimeConfig
	settings   settings.Settings
	voice      kit.Voice
	rng        *rand.Rand

	universe catalog.Universe
	objects  []Object
	captured *engine.CaptureSet
	follower *engine.Actor
	tracking bool
	round    *kit.Round
	tick     uint64

	snap engine.Published[Snapshot]
}

// New creates a catch game.
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
func (g *Game) Title() string { return "Atrapa" }

// Reset builds a new round: itemCount×3 objects scattered over the board.
func (g *Game) Reset(rt core.RuntimeConfig, s settings.Settings) {
	if g.round != nil {
		g.round.Close()
	}

	cfg, err := config.LoadCatch(configPath)
	if err != nil {
		cfg = config.DefaultCatchConfig()
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
	g.tracking = false

	g.universe = kit.Universe(g.settings, g.rng)
	items := g.universe.Slice(g.settings.ItemCount)

	required := 0
	if len(items) > 0 {
		required = g.settings.ItemCount * max(1, cfg.Objects.PerItem)
	}
	g.round = kit.NewRound(required, cfg.Capture.CompletionDelay())
	g.captured = engine.NewCaptureSet()
	g.follower = engine.NewActor(engine.ActorConfig{
		Smoothing: cfg.Follower.Smoothing,
		History:   1,
	}, core.Vec{X: 50, Y: 50})

	speed := g.difficulty.FloatSpeed(g.settings.Level)
	g.objects = make([]Object, 0, required)
	for i := 0; i < required; i++ {
		g.objects = append(g.objects, g.newObject(items[i%len(items)], speed))
	}
	g.publish()
}

func (g *Game) newObject(it catalog.Item, speed float64) Object {
	o := g.cfg.Objects
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		id = uuid.New()
	}
	span := o.SpawnMax - o.SpawnMin
	return Object{
		ID:   id.String(),
		Item: it,
		Pos: core.Vec{
			X: o.SpawnMin + g.rng.Float64()*span,
			Y: o.SpawnMin + g.rng.Float64()*span,
		},
		Vel: core.Vec{
			X: (g.rng.Float64() - 0.5) * speed,
			Y: (g.rng.Float64() - 0.5) * speed,
		},
		Scale:    0.9 + g.rng.Float64()*0.2,
		Rotation: (g.rng.Float64() - 0.5) * 20,
	}
}

// Step advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.round == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionRestart) && g.round.Completed() {
		g.Reset(core.RuntimeConfig{
			ScreenW:  g.rt.ScreenW,
			ScreenH:  g.rt.ScreenH,
			TickRate: g.rt.TickRate,
			Seed:     g.rng.Int63(),
			Viewport: g.rt.Viewport,
			Feedback: g.rt.Feedback,
		}, g.settings)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.round.TogglePause()
	}

	dt := g.round.Advance(in.Elapsed)
	if dt > 0 {
		g.tick++
		g.move(dt, in.Pointer)
	}

	just := g.round.TakeJustCompleted()
	g.publish()
	return core.StepResult{State: g.State(), JustCompleted: just}
}

func (g *Game) move(dt time.Duration, p core.Pointer) {
	if p.Valid {
		if !g.tracking {
			g.follower.Reset(p.Pos())
			g.tracking = true
		}
		g.follower.SetTarget(p.Pos())
	}
	g.follower.Step(dt, engine.Unbounded)

	frames := float64(dt) / float64(engine.NominalFrame)
	o := g.cfg.Objects
	net := g.points(g.follower.Position())

	for i := range g.objects {
		obj := &g.objects[i]
		if obj.Caught {
			continue
		}

		obj.Pos = obj.Pos.Add(obj.Vel.Scale(frames))
		if obj.Pos.X < o.BounceMinX || obj.Pos.X > o.BounceMaxX {
			obj.Vel.X = -obj.Vel.X
		}
		if obj.Pos.Y < o.BounceMinY || obj.Pos.Y > o.BounceMaxY {
			obj.Vel.Y = -obj.Vel.Y
		}

		if !g.tracking || g.round.Completed() {
			continue
		}
		if !engine.WithinRadius(g.points(obj.Pos), net, g.cfg.Capture.RadiusPoints) {
			continue
		}
		if !g.captured.Mark(obj.ID) {
			continue
		}
		obj.Caught = true
		g.voice.Play(core.SoundPop)
		g.voice.Speak(obj.Item.Name)
		g.round.Add(1)
	}
}

// points converts a board percentage to viewport points.
func (g *Game) points(p core.Vec) core.Vec {
	return core.Vec{X: p.X / 100 * g.rt.Viewport.X, Y: p.Y / 100 * g.rt.Viewport.Y}
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
