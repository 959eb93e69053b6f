package drive

import (
	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/engine"
)

// Trailer is one wagon behind the tractor.
type Trailer struct {
	Item  catalog.Item
	Pos   core.Vec
	Index int // 0 is the wagon nearest the tractor
}

// Snapshot is the read-only view of one frame.
type Snapshot struct {
	Tick        uint64
	TimeMs      float64
	Road        engine.Road
	Tractor     core.Vec
	Tilt        float64
	Trailers    []Trailer
	Objects     []RoadObject
	Hand        Hand
	Cursor      core.Vec
	Penalty     engine.PenaltyKind
	SpeedFactor float64
	ShowWords   bool
	State       core.GameState
}

func (g *Game) publish() {
	objs := make([]RoadObject, len(g.objects))
	copy(objs, g.objects)
	g.snap.Publish(Snapshot{
		Tick:        g.tick,
		TimeMs:      g.round.Clock.Millis(),
		Road:        g.road,
		Tractor:     g.tractor.Position(),
		Tilt:        g.tractor.Tilt(),
		Trailers:    g.trailers(),
		Objects:     objs,
		Hand:        g.hand,
		Cursor:      g.cursor,
		Penalty:     g.penalty.Kind(g.round.Clock.Now()),
		SpeedFactor: g.penalty.SpeedFactor(),
		ShowWords:   g.settings.ShowWords,
		State:       g.State(),
	})
}

// Snapshot returns the latest published frame.
func (g *Game) Snapshot() (Snapshot, bool) {
	return g.snap.Load()
}
