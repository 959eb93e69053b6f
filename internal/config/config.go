// Package config provides YAML-based game tuning and reading-level
// difficulty management for the calma games.
package config

import "time"

// CatchConfig contains all tuning for the catch game.
type CatchConfig struct {
	Objects    CatchObjects     `yaml:"objects"`
	Follower   CatchFollower    `yaml:"follower"`
	Capture    CaptureConfig    `yaml:"capture"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CatchObjects defines where floating objects live and bounce.
type CatchObjects struct {
	PerItem    int     `yaml:"per_item"` // objects to catch per configured item
	SpawnMin   float64 `yaml:"spawn_min"`
	SpawnMax   float64 `yaml:"spawn_max"`
	BounceMinX float64 `yaml:"bounce_min_x"`
	BounceMaxX float64 `yaml:"bounce_max_x"`
	BounceMinY float64 `yaml:"bounce_min_y"`
	BounceMaxY float64 `yaml:"bounce_max_y"`
	Size       float64 `yaml:"size"` // drawn size in percent of width
}

// CatchFollower defines the net that trails the pointer.
type CatchFollower struct {
	Smoothing float64 `yaml:"smoothing"`
}

// CaptureConfig is shared by games that capture things.
type CaptureConfig struct {
	RadiusPoints      float64 `yaml:"radius_points"`
	CompletionDelayMs int     `yaml:"completion_delay_ms"`
}

// CompletionDelay returns the delay between the last capture and completion.
func (c CaptureConfig) CompletionDelay() time.Duration {
	return time.Duration(c.CompletionDelayMs) * time.Millisecond
}

// DriveConfig contains all tuning for the drive game.
type DriveConfig struct {
	Road       RoadConfig       `yaml:"road"`
	Tractor    TractorConfig    `yaml:"tractor"`
	Objects    DriveObjects     `yaml:"objects"`
	Capture    DriveCapture     `yaml:"capture"`
	Hand       HandConfig       `yaml:"hand"`
	Penalty    PenaltyConfig    `yaml:"penalty"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RoadConfig defines the curved road. Distances are in percent of the view,
// time factors are per millisecond.
type RoadConfig struct {
	Base        float64 `yaml:"base"`
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	Speed       float64 `yaml:"speed"`
	Frequency2  float64 `yaml:"frequency2"`
	Speed2      float64 `yaml:"speed2"`
	Height      float64 `yaml:"height"`
	Lanes       int     `yaml:"lanes"`
	Shoulder    float64 `yaml:"shoulder"`     // drivable verge beyond each asphalt edge
	ReservedTop float64 `yaml:"reserved_top"` // UI-reserved band at the top, percent
}

// TractorConfig defines the player's vehicle.
type TractorConfig struct {
	X         float64 `yaml:"x"`
	Smoothing float64 `yaml:"smoothing"`
	TiltGain  float64 `yaml:"tilt_gain"`
	MaxTilt   float64 `yaml:"max_tilt"`
	TiltEase  float64 `yaml:"tilt_ease"`
	History   int     `yaml:"history"`
	Trailers  []int   `yaml:"trailers"` // history offsets of the wagons
}

// DriveObjects defines spawning and movement of road objects.
type DriveObjects struct {
	BaseSpeed    float64 `yaml:"base_speed"` // percent per millisecond
	SpawnX       float64 `yaml:"spawn_x"`
	DespawnX     float64 `yaml:"despawn_x"`
	Cap          int     `yaml:"cap"`
	HazardChance float64 `yaml:"hazard_chance"`
	Probability  float64 `yaml:"probability"` // per-frame spawn chance inside the interval
	PerItem      int     `yaml:"per_item"`
}

// DriveCapture defines the capture windows around the tractor and hand.
type DriveCapture struct {
	BodyX             float64 `yaml:"body_x"`
	BodyY             float64 `yaml:"body_y"`
	HandX             float64 `yaml:"hand_x"`
	HandY             float64 `yaml:"hand_y"`
	CompletionDelayMs int     `yaml:"completion_delay_ms"`
}

// CompletionDelay returns the delay between the last capture and completion.
func (c DriveCapture) CompletionDelay() time.Duration {
	return time.Duration(c.CompletionDelayMs) * time.Millisecond
}

// HandConfig defines the reaching hand.
type HandConfig struct {
	Offset     float64 `yaml:"offset"`
	Reach      float64 `yaml:"reach"`
	DurationMs int     `yaml:"duration_ms"`
}

// Duration returns the full extend-and-retract time.
func (h HandConfig) Duration() time.Duration {
	return time.Duration(h.DurationMs) * time.Millisecond
}

// PenaltyConfig defines the slowdown state machine.
type PenaltyConfig struct {
	MudDurationMs int     `yaml:"mud_duration_ms"`
	CooldownMs    int     `yaml:"cooldown_ms"`
	Factor        float64 `yaml:"factor"`
	RecoveryRate  float64 `yaml:"recovery_rate"` // speed factor regained per second
}

// PuzzleConfig contains all tuning for the jigsaw game.
type PuzzleConfig struct {
	Depth             float64          `yaml:"depth"`
	CompletionDelayMs int              `yaml:"completion_delay_ms"`
	Drag              DragConfig       `yaml:"drag"`
	Difficulty        DifficultyConfig `yaml:"difficulty"`
}

// CompletionDelay returns the delay between the last piece and completion.
func (c PuzzleConfig) CompletionDelay() time.Duration {
	return time.Duration(c.CompletionDelayMs) * time.Millisecond
}

// MatchConfig contains all tuning for the drag-to-match game.
type MatchConfig struct {
	CompletionDelayMs int              `yaml:"completion_delay_ms"`
	Drag              DragConfig       `yaml:"drag"`
	Difficulty        DifficultyConfig `yaml:"difficulty"`
}

// CompletionDelay returns the delay between the last drop and completion.
func (c MatchConfig) CompletionDelay() time.Duration {
	return time.Duration(c.CompletionDelayMs) * time.Millisecond
}

// DragConfig defines drag-and-drop behaviour.
type DragConfig struct {
	ThresholdPoints float64 `yaml:"threshold_points"`
	OverlapRatio    float64 `yaml:"overlap_ratio"`
	ReturnMs        int     `yaml:"return_ms"`
}

// ReturnDuration returns the snap-back animation length.
func (d DragConfig) ReturnDuration() time.Duration {
	return time.Duration(d.ReturnMs) * time.Millisecond
}

// DifficultyConfig maps reading levels to tuning values.
type DifficultyConfig struct {
	Levels map[int]LevelTuning `yaml:"levels"`
}

// LevelTuning holds the values one reading level selects.
type LevelTuning struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	SpawnMin        float64 `yaml:"spawn_min"` // percent travelled before a spawn is allowed
	SpawnMax        float64 `yaml:"spawn_max"` // percent travelled after which a spawn is forced
	GridSide        int     `yaml:"grid_side"`
	FloatSpeed      float64 `yaml:"float_speed"` // catch object speed, percent per 60 Hz frame
}
