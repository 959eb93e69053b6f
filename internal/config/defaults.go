package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

//go:embed defaults/drive.yaml
var defaultDriveYAML []byte

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

//go:embed defaults/match.yaml
var defaultMatchYAML []byte

// DefaultCatchConfig returns the default catch configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Objects: CatchObjects{
			PerItem:    3,
			SpawnMin:   15,
			SpawnMax:   85,
			BounceMinX: 8,
			BounceMaxX: 92,
			BounceMinY: 12,
			BounceMaxY: 88,
			Size:       8,
		},
		Follower: CatchFollower{Smoothing: 0.25},
		Capture: CaptureConfig{
			RadiusPoints:      30,
			CompletionDelayMs: 500,
		},
		Difficulty: DifficultyConfig{Levels: defaultLevels()},
	}
}

// DefaultDriveConfig returns the default drive configuration.
func DefaultDriveConfig() DriveConfig {
	return DriveConfig{
		Road: RoadConfig{
			Base:        55,
			Amplitude:   18,
			Frequency:   0.015,
			Speed:       0.002,
			Frequency2:  0.008,
			Speed2:      0.0006,
			Height:      58,
			Lanes:       5,
			Shoulder:    6,
			ReservedTop: 22,
		},
		Tractor: TractorConfig{
			X:         22,
			Smoothing: 0.12,
			TiltGain:  25,
			MaxTilt:   15,
			TiltEase:  0.2,
			History:   50,
			Trailers:  []int{10, 20, 30},
		},
		Objects: DriveObjects{
			BaseSpeed:    0.0085,
			SpawnX:       130,
			DespawnX:     -25,
			Cap:          5,
			HazardChance: 0.12,
			Probability:  0.007,
			PerItem:      3,
		},
		Capture: DriveCapture{
			BodyX:             8,
			BodyY:             8,
			HandX:             6,
			HandY:             6,
			CompletionDelayMs: 800,
		},
		Hand: HandConfig{
			Offset:     6,
			Reach:      35,
			DurationMs: 550,
		},
		Penalty: PenaltyConfig{
			MudDurationMs: 1500,
			CooldownMs:    5000,
			Factor:        0.33,
			RecoveryRate:  1.0,
		},
		Difficulty: DifficultyConfig{Levels: defaultLevels()},
	}
}

// DefaultPuzzleConfig returns the default jigsaw configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	return PuzzleConfig{
		Depth:             15,
		CompletionDelayMs: 2500,
		Drag:              defaultDrag(),
		Difficulty:        DifficultyConfig{Levels: defaultLevels()},
	}
}

// DefaultMatchConfig returns the default drag-to-match configuration.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		CompletionDelayMs: 1500,
		Drag:              defaultDrag(),
		Difficulty:        DifficultyConfig{Levels: defaultLevels()},
	}
}

func defaultDrag() DragConfig {
	return DragConfig{
		ThresholdPoints: 5,
		OverlapRatio:    0.5,
		ReturnMs:        600,
	}
}
