// Package drive implements the tractor game: a tractor follows the pointer
// along a winding five-lane road, collecting the theme's items with its
// body or a reaching hand while avoiding mud and the road shoulders.
package drive

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/config"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/games/kit"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
)

// ID is the registry id.
const ID = "drive"

// trailerGap is the spacing between wagons, percent of the width.
const trailerGap = 5.0

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// RoadObject is one item or mud puddle on the road.
type RoadObject struct {
	ID        string
	Item      catalog.Item
	Kind      engine.Kind
	Lane      int
	X, Y      float64 // percent; Y follows the road every frame
	Collected bool
}

// Hand is the reaching arm. Progress rises from 0 to 1 and back over the
// configured duration.
type Hand struct {
	Active   bool
	Lane     int
	Progress float64
	Tip      core.Vec
	elapsed  time.Duration
}

// Game implements the drive game.
type Game struct {
	cfg        config.DriveConfig
	difficulty *config.DifficultyManager
	rt         core.RuntimeConfig
	settings   settings.Settings
	voice      kit.Voice
	rng        *rand.Rand

	universe  catalog.Universe
	pool      []catalog.Item
	road      engine.Road
	tractor   *engine.Actor
	spawner   *engine.Spawner
	penalty   *engine.Penalty
	captured  *engine.CaptureSet
	objects   []RoadObject
	collected []catalog.Item
	hand      Hand
	cursor    core.Vec
	reserved  bool
	wasDown   bool
	round     *kit.Round
	tick      uint64

	snap engine.Published[Snapshot]
}

// New creates a drive game.
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
func (g *Game) Title() string { return "Tractor" }

// Reset starts a new trip with an empty road.
func (g *Game) Reset(rt core.RuntimeConfig, s settings.Settings) {
	if g.round != nil {
		g.round.Close()
	}

	cfg, err := config.LoadDrive(configPath)
	if err != nil {
		cfg = config.DefaultDriveConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rt = rt
	g.settings = s.Normalize()
	g.voice = kit.NewVoice(rt, g.settings)
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0

	g.universe = kit.Universe(g.settings, g.rng)
	g.pool = g.universe.Slice(g.settings.ItemCount)
	g.road = engine.NewRoad(cfg.Road)

	start := core.Vec{X: cfg.Tractor.X, Y: g.road.CenterAt(cfg.Tractor.X, 0)}
	g.tractor = engine.NewActor(engine.ActorConfig{
		Smoothing: cfg.Tractor.Smoothing,
		TiltGain:  cfg.Tractor.TiltGain,
		MaxTilt:   cfg.Tractor.MaxTilt,
		TiltEase:  cfg.Tractor.TiltEase,
		History:   cfg.Tractor.History,
	}, start)
	g.cursor = start
	g.reserved = false
	g.wasDown = false

	lo, hi := g.difficulty.SpawnInterval(g.settings.Level)
	g.spawner = engine.NewSpawner(engine.SpawnerConfig{
		Interval:     engine.Interval{Min: lo, Max: hi},
		Probability:  cfg.Objects.Probability,
		Cap:          cfg.Objects.Cap,
		Lanes:        g.road.Lanes(),
		HazardChance: cfg.Objects.HazardChance,
	}, g.rng)
	g.penalty = engine.NewPenalty(cfg.Penalty)
	g.captured = engine.NewCaptureSet()
	g.objects = nil
	g.collected = nil
	g.hand = Hand{}

	required := 0
	if len(g.pool) > 0 {
		required = g.settings.ItemCount * max(1, cfg.Objects.PerItem)
	}
	g.round = kit.NewRound(required, cfg.Capture.CompletionDelay())
	g.publish()
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
	}

	dt := g.round.Advance(in.Elapsed)
	if dt > 0 {
		g.tick++
		g.update(dt, in)
	}

	just := g.round.TakeJustCompleted()
	g.publish()
	return core.StepResult{State: g.State(), JustCompleted: just}
}

func (g *Game) update(dt time.Duration, in core.InputFrame) {
	now := g.round.Clock.Now()
	t := g.round.Clock.Millis()
	tx := g.cfg.Tractor.X

	if p := in.Pointer; p.Valid {
		g.cursor = p.Pos()
		g.reserved = g.road.Reserved(p.Y)
		g.tractor.SetTarget(core.Vec{X: tx, Y: p.Y})
	}
	down := in.Pointer.Valid && in.Pointer.Down
	if (down && !g.wasDown) || in.Has(core.ActionPress) {
		g.reach(t)
	}
	g.wasDown = down

	g.tractor.Step(dt, g.road.Band(tx, t, g.reserved))
	g.updateHand(dt, t)

	pos := g.tractor.Position()
	off := g.road.OffRoad(tx, pos.Y, t) && !g.reserved
	if g.penalty.SetShoulder(off) {
		g.voice.Play(core.SoundWarning)
	}
	g.penalty.Update(now, dt)

	ms := float64(dt) / float64(time.Millisecond)
	dist := g.cfg.Objects.BaseSpeed * g.penalty.SpeedFactor() *
		g.difficulty.SpeedMultiplier(g.settings.Level) * ms

	body := engine.Window{Center: pos, HalfX: g.cfg.Capture.BodyX, HalfY: g.cfg.Capture.BodyY}
	var reach *engine.Window
	if g.hand.Active {
		reach = &engine.Window{Center: g.hand.Tip, HalfX: g.cfg.Capture.HandX, HalfY: g.cfg.Capture.HandY}
	}

	kept := g.objects[:0]
	for _, obj := range g.objects {
		obj.X -= dist
		obj.Y = g.road.LaneCenter(obj.X, t, obj.Lane)

		if !g.round.Done() && engine.Probe(core.Vec{X: obj.X, Y: obj.Y}, body, reach) != engine.HitNone {
			if obj.Kind == engine.KindHazard {
				if g.penalty.TriggerMud(now) {
					g.voice.Play(core.SoundWarning)
				}
			} else if g.captured.Mark(obj.ID) {
				obj.Collected = true
				g.collected = append(g.collected, obj.Item)
				g.voice.Play(core.SoundPop)
				g.voice.Speak(obj.Item.Name)
				g.round.Add(1)
			}
		}

		if obj.Collected || obj.X <= g.cfg.Objects.DespawnX {
			continue
		}
		kept = append(kept, obj)
	}
	g.objects = kept

	if g.round.Done() {
		return
	}
	if sp, ok := g.spawner.Advance(dist, len(g.objects), g.pool); ok {
		x := g.cfg.Objects.SpawnX
		g.objects = append(g.objects, RoadObject{
			ID:   sp.ID,
			Item: sp.Item,
			Kind: sp.Kind,
			Lane: sp.Lane,
			X:    x,
			Y:    g.road.LaneCenter(x, t, sp.Lane),
		})
	}
}

// reach starts the hand toward the lane under the cursor. A reach already
// in flight is not interrupted.
func (g *Game) reach(t float64) {
	if g.hand.Active || g.round.Done() {
		return
	}
	g.hand = Hand{
		Active: true,
		Lane:   g.road.LaneAt(g.cursor.X, g.cursor.Y, t),
	}
	g.hand.Tip = g.handTip(t)
}

func (g *Game) updateHand(dt time.Duration, t float64) {
	if !g.hand.Active {
		return
	}
	g.hand.elapsed += dt
	p := float64(g.hand.elapsed) / float64(g.cfg.Hand.Duration())
	if p >= 1 || g.cfg.Hand.DurationMs <= 0 {
		g.hand = Hand{}
		return
	}
	g.hand.Progress = math.Sin(p * math.Pi)
	g.hand.Tip = g.handTip(t)
}

func (g *Game) handTip(t float64) core.Vec {
	x := g.cfg.Tractor.X + g.cfg.Hand.Offset + g.hand.Progress*g.cfg.Hand.Reach
	return core.Vec{X: x, Y: g.road.LaneCenter(x, t, g.hand.Lane)}
}

// trailers returns the wagons behind the tractor: the last collected items,
// newest first, each at the height the tractor had some frames ago.
func (g *Game) trailers() []Trailer {
	offsets := g.cfg.Tractor.Trailers
	n := min(len(offsets), len(g.collected))
	out := make([]Trailer, 0, n)
	for i := 0; i < n; i++ {
		item := g.collected[len(g.collected)-1-i]
		pos := g.tractor.History(offsets[i])
		pos.X = g.cfg.Tractor.X - float64(i+1)*trailerGap
		out = append(out, Trailer{Item: item, Pos: pos, Index: i})
	}
	return out
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

// Close stops the trip; a pending completion never fires.
func (g *Game) Close() {
	if g.round != nil {
		g.round.Close()
	}
}
