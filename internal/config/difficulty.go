package config

import (
	"sort"

	"github.com/vovakirdan/calma/internal/core"
)

// DifficultyManager resolves per-level tuning values.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Tuning returns the values for level. An undefined level falls back to the
// nearest defined level below it, then to the lowest defined level, then to
// the built-in level-one values.
func (d *DifficultyManager) Tuning(level core.Level) LevelTuning {
	if t, ok := d.cfg.Levels[int(level)]; ok {
		return t
	}
	if len(d.cfg.Levels) == 0 {
		return defaultLevels()[int(core.LevelWhole)]
	}

	keys := make([]int, 0, len(d.cfg.Levels))
	for k := range d.cfg.Levels {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	best := keys[0]
	for _, k := range keys {
		if k <= int(level) {
			best = k
		}
	}
	return d.cfg.Levels[best]
}

// SpeedMultiplier scales object speed.
func (d *DifficultyManager) SpeedMultiplier(level core.Level) float64 {
	m := d.Tuning(level).SpeedMultiplier
	if m <= 0 {
		return 1
	}
	return m
}

// SpawnInterval returns the min and max longitudinal distance between spawns.
func (d *DifficultyManager) SpawnInterval(level core.Level) (min, max float64) {
	t := d.Tuning(level)
	min, max = t.SpawnMin, t.SpawnMax
	if max < min {
		max = min
	}
	return min, max
}

// GridSide returns the jigsaw grid side, at least 1.
func (d *DifficultyManager) GridSide(level core.Level) int {
	return max(1, d.Tuning(level).GridSide)
}

// FloatSpeed returns the catch object speed.
func (d *DifficultyManager) FloatSpeed(level core.Level) float64 {
	return d.Tuning(level).FloatSpeed
}

func defaultLevels() map[int]LevelTuning {
	return map[int]LevelTuning{
		1: {SpeedMultiplier: 1.0, SpawnMin: 14, SpawnMax: 40, GridSide: 2, FloatSpeed: 0.05},
		2: {SpeedMultiplier: 1.1, SpawnMin: 12, SpawnMax: 34, GridSide: 3, FloatSpeed: 0.15},
		3: {SpeedMultiplier: 1.2, SpawnMin: 10, SpawnMax: 28, GridSide: 4, FloatSpeed: 0.30},
	}
}
