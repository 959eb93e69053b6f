package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/calma/internal/catalog"
)

// Kind tells collectibles from hazards.
type Kind int

const (
	KindCollectible Kind = iota
	KindHazard
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindHazard {
		return "hazard"
	}
	return "collectible"
}

// Interval bounds the longitudinal distance between two spawns.
type Interval struct {
	Min, Max float64
}

// SpawnerConfig configures a Spawner.
type SpawnerConfig struct {
	Interval     Interval
	Probability  float64 // per-call chance once past Interval.Min
	Cap          int     // maximum concurrent active objects
	Lanes        int
	HazardChance float64
}

// Spawn describes a new object.
type Spawn struct {
	ID   string
	Item catalog.Item
	Lane int
	Kind Kind
}

// Spawner decides when and what to spawn from distance travelled.
// It is driven by the simulation loop only and is not safe for concurrent use.
type Spawner struct {
	cfg       SpawnerConfig
	rng       *rand.Rand
	travelled float64
}

// NewSpawner creates a spawner that draws from rng.
func NewSpawner(cfg SpawnerConfig, rng *rand.Rand) *Spawner {
	if cfg.Lanes < 1 {
		cfg.Lanes = 1
	}
	if cfg.Interval.Max < cfg.Interval.Min {
		cfg.Interval.Max = cfg.Interval.Min
	}
	return &Spawner{cfg: cfg, rng: rng}
}

// Reset forgets the distance travelled since the last spawn.
func (s *Spawner) Reset() {
	s.travelled = 0
}

// Travelled returns the distance since the last spawn.
func (s *Spawner) Travelled() float64 {
	return s.travelled
}

// Advance adds dist to the distance travelled and reports whether an object
// spawns now. Below Interval.Min nothing spawns; at or past Interval.Max a
// spawn is forced; in between it happens with the configured probability.
// A full active set or an empty pool never spawns.
func (s *Spawner) Advance(dist float64, active int, pool []catalog.Item) (Spawn, bool) {
	s.travelled += dist

	if len(pool) == 0 || active >= s.cfg.Cap {
		return Spawn{}, false
	}
	if s.travelled < s.cfg.Interval.Min {
		return Spawn{}, false
	}
	if s.travelled < s.cfg.Interval.Max && s.rng.Float64() >= s.cfg.Probability {
		return Spawn{}, false
	}

	s.travelled = 0
	sp := Spawn{
		ID:   s.newID(),
		Item: pool[s.rng.Intn(len(pool))],
		Lane: s.rng.Intn(s.cfg.Lanes),
		Kind: KindCollectible,
	}
	if s.rng.Float64() < s.cfg.HazardChance {
		sp.Kind = KindHazard
	}
	return sp, true
}

// newID draws a v4 UUID from the spawner's rng so seeded runs repeat.
func (s *Spawner) newID() string {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
