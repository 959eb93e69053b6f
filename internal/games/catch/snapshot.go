package catch

import (
	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
)

// Snapshot is the read-only view of one frame.
type Snapshot struct {
	Tick       uint64
	Universe   catalog.UniverseID
	Background string
	Objects    []Object
	Net        core.Vec
	Tracking   bool
	ShowWords  bool
	State      core.GameState
}

func (g *Game) publish() {
	objs := make([]Object, len(g.objects))
	copy(objs, g.objects)
	g.snap.Publish(Snapshot{
		Tick:       g.tick,
		Universe:   g.universe.ID,
		Background: g.universe.Background,
		Objects:    objs,
		Net:        g.follower.Position(),
		Tracking:   g.tracking,
		ShowWords:  g.settings.ShowWords,
		State:      g.State(),
	})
}

// Snapshot returns the latest published frame.
func (g *Game) Snapshot() (Snapshot, bool) {
	return g.snap.Load()
}
