// Package match implements the drag-to-match game: every item of the theme
// has a mold on the board and a loose copy in the tray, and, when words are
// objects, each name is split into parts with molds of their own.
package match

import (
	"math"
	"math/rand"
	"slices"
	"strings"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/config"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/drag"
	"github.com/vovakirdan/calma/internal/engine"
	"github.com/vovakirdan/calma/internal/games/kit"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/settings"
)

// ID is the registry id.
const ID = "match"

var (
	boardArea = core.Box{X: 4, Y: 10, W: 56, H: 80}
	trayArea  = core.Box{X: 64, Y: 10, W: 34, H: 80}
)

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Kind tells images from word parts.
type Kind int

const (
	KindImage Kind = iota
	KindWord
)

// Piece is one draggable image or word part.
type Piece struct {
	ID     string
	Kind   Kind
	Item   catalog.Item
	Part   catalog.WordPart // KindWord only
	Mold   core.Box
	Placed bool
	ctrl   *drag.Controller
}

// Text returns what the piece shows: the part text or the item initial.
func (p *Piece) Text() string {
	if p.Kind == KindWord {
		return p.Part.Text
	}
	return string(p.Item.Initial())
}

// Game implements drag-to-match.
type Game struct {
	cfg      config.MatchConfig
	rt       core.RuntimeConfig
	settings settings.Settings
	voice    kit.Voice
	rng      *rand.Rand

	universe catalog.Universe
	items    []catalog.Item
	cells    []core.Box
	pieces   []*Piece
	parts    map[string][]*Piece // item id -> word parts by index
	surface  *drag.Surface
	placed   int
	round    *kit.Round
	tick     uint64

	snap engine.Published[Snapshot]
}

// New creates a drag-to-match game.
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
func (g *Game) Title() string { return "Encaja" }

// Reset lays out the molds for the first itemCount items of the universe.
func (g *Game) Reset(rt core.RuntimeConfig, s settings.Settings) {
	if g.round != nil {
		g.round.Close()
	}

	cfg, err := config.LoadMatch(configPath)
	if err != nil {
		cfg = config.DefaultMatchConfig()
	}
	g.cfg = cfg
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
	g.items = g.universe.Slice(g.settings.ItemCount)
	g.cells = Layout(len(g.items), boardArea)

	g.surface = drag.NewSurface(drag.Config{
		Threshold: cfg.Drag.ThresholdPoints,
		Ratio:     cfg.Drag.OverlapRatio,
		Return:    cfg.Drag.ReturnDuration(),
		Scale:     rt.Viewport.Scale(0.01),
	})

	g.pieces = nil
	g.parts = make(map[string][]*Piece)
	var words []catalog.WordPart
	if g.settings.WordsAsObjects {
		words = catalog.WordParts(g.items, g.settings.Level)
	}
	for i, it := range g.items {
		var own []catalog.WordPart
		for _, w := range words {
			if w.ParentID == it.ID {
				own = append(own, w)
			}
		}
		image, partMolds := molds(g.cells[i], len(own))
		g.add(&Piece{ID: it.ID, Kind: KindImage, Item: it, Mold: image}, drag.OverlapAreaRatio)
		for j, w := range own {
			p := &Piece{ID: w.ID, Kind: KindWord, Item: it, Part: w, Mold: partMolds[j]}
			g.add(p, drag.OverlapIntersects)
			g.parts[it.ID] = append(g.parts[it.ID], p)
		}
	}
	g.layoutTray()

	g.round = kit.NewRound(len(g.pieces), cfg.CompletionDelay())
	g.publish()
}

// Layout splits area into the mold grid: one column for up to two items,
// two for up to six, three beyond.
func Layout(n int, area core.Box) []core.Box {
	if n <= 0 {
		return nil
	}
	cols := 3
	switch {
	case n <= 2:
		cols = 1
	case n <= 6:
		cols = 2
	}
	rows := int(math.Ceil(float64(n) / float64(cols)))
	w, h := area.W/float64(cols), area.H/float64(rows)
	cells := make([]core.Box, n)
	for i := range cells {
		cells[i] = core.Box{
			X: area.X + float64(i%cols)*w,
			Y: area.Y + float64(i/cols)*h,
			W: w,
			H: h,
		}
	}
	return cells
}

// molds places the image mold at the top of a cell and the part molds in a
// row beneath it.
func molds(cell core.Box, parts int) (core.Box, []core.Box) {
	if parts == 0 {
		w, h := cell.W*0.6, cell.H*0.6
		return core.Box{X: cell.X + (cell.W-w)/2, Y: cell.Y + cell.H*0.1, W: w, H: h}, nil
	}
	w, h := cell.W*0.5, cell.H*0.5
	image := core.Box{X: cell.X + (cell.W-w)/2, Y: cell.Y + cell.H*0.08, W: w, H: h}

	row := core.Box{X: cell.X + cell.W*0.05, Y: cell.Y + cell.H*0.66, W: cell.W * 0.9, H: cell.H * 0.26}
	pw := row.W / float64(parts)
	out := make([]core.Box, parts)
	for i := range out {
		out[i] = core.Box{X: row.X + float64(i)*pw + pw*0.05, Y: row.Y, W: pw * 0.9, H: row.H}
	}
	return image, out
}

func (g *Game) add(p *Piece, mode drag.Overlap) {
	target := "mold-" + p.ID
	g.surface.SetTarget(target, p.Mold)
	p.ctrl = &drag.Controller{ID: p.ID, TargetID: target, Mode: mode}
	p.ctrl.OnDrop = func(correct bool) { g.drop(p, correct) }
	g.pieces = append(g.pieces, p)
}

// layoutTray gives every item one tray row: its image first, then its
// word parts. Pieces never move home once placed in the tray.
func (g *Game) layoutTray() {
	if len(g.items) == 0 {
		return
	}
	rh := trayArea.H / float64(len(g.items))
	for i, it := range g.items {
		y := trayArea.Y + float64(i)*rh
		var image *Piece
		var words []*Piece
		for _, p := range g.pieces {
			if p.Item.ID != it.ID {
				continue
			}
			if p.Kind == KindImage {
				image = p
			} else {
				words = append(words, p)
			}
		}
		x := trayArea.X
		if image != nil {
			w, h := min(image.Mold.W, trayArea.W*0.3), min(image.Mold.H, rh*0.9)
			image.ctrl.Home = core.Box{X: x, Y: y + (rh-h)/2, W: w, H: h}
			g.surface.Add(image.ctrl)
		}
		if len(words) == 0 {
			continue
		}
		x += trayArea.W * 0.32
		slot := trayArea.W * 0.68 / float64(len(words))
		order := slices.Clone(words)
		g.rng.Shuffle(len(order), func(a, b int) { order[a], order[b] = order[b], order[a] })
		for j, p := range order {
			w, h := min(p.Mold.W, slot*0.9), min(p.Mold.H, rh*0.9)
			p.ctrl.Home = core.Box{X: x + float64(j)*slot, Y: y + (rh-h)/2, W: w, H: h}
			g.surface.Add(p.ctrl)
		}
	}
}

func (g *Game) drop(p *Piece, correct bool) {
	if !correct || p.Placed {
		return
	}
	p.Placed = true
	g.placed++
	g.surface.Remove(p.ctrl)

	if p.Kind == KindImage {
		g.voice.Speak(p.Item.Name)
	} else {
		g.speakWord(p.Item)
	}
	g.round.SetCount(g.placed)
}

// speakWord says the whole word once all its parts are placed, or the run
// of placed parts from the start when partial voice is on.
func (g *Game) speakWord(it catalog.Item) {
	parts := g.parts[it.ID]
	var prefix strings.Builder
	all := true
	for _, p := range parts {
		if !p.Placed {
			all = false
			break
		}
		prefix.WriteString(p.Part.Text)
	}
	switch {
	case all:
		g.voice.Speak(it.Name)
	case g.settings.PartialVoiceEnabled:
		g.voice.Speak(prefix.String())
	}
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

// Apply takes a settings change that does not need a new round. Turning
// word parts on or off changes the pieces, so that one restarts.
func (g *Game) Apply(s settings.Settings) {
	s = s.Normalize()
	if s.WordsAsObjects != g.settings.WordsAsObjects {
		g.Reset(g.rt, s)
		return
	}
	g.settings = s
	g.voice.Enabled = s.VoiceEnabled
}

// State returns progress, completion and pause flags.
func (g *Game) State() core.GameState {
	if g.round == nil {
		return core.GameState{}
	}
	return g.round.State()
}

// Close stops the round.
func (g *Game) Close() {
	if g.round != nil {
		g.round.Close()
	}
}
