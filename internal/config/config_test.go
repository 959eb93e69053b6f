package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/calma/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	catch, err := LoadCatch("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(catch, DefaultCatchConfig()) {
		t.Errorf("embedded catch.yaml differs from DefaultCatchConfig:\n%+v\n%+v", catch, DefaultCatchConfig())
	}

	drive, err := LoadDrive("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(drive, DefaultDriveConfig()) {
		t.Errorf("embedded drive.yaml differs from DefaultDriveConfig:\n%+v\n%+v", drive, DefaultDriveConfig())
	}

	puzzle, _ := LoadPuzzle("")
	if !reflect.DeepEqual(puzzle, DefaultPuzzleConfig()) {
		t.Error("embedded puzzle.yaml differs from DefaultPuzzleConfig")
	}
	match, _ := LoadMatch("")
	if !reflect.DeepEqual(match, DefaultMatchConfig()) {
		t.Error("embedded match.yaml differs from DefaultMatchConfig")
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drive.yaml")
	if err := os.WriteFile(path, []byte("penalty:\n  factor: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDrive(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Penalty.Factor != 0.5 {
		t.Errorf("Factor = %v, expected 0.5", cfg.Penalty.Factor)
	}
	if cfg.Penalty.MudDurationMs != 1500 || cfg.Road.Lanes != 5 {
		t.Error("unspecified keys should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadCatch(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("objects: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadCatch(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg.Capture.RadiusPoints != 30 {
		t.Error("a parse error should still return defaults")
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".calma", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "match.yaml"), []byte("completion_delay_ms: 900\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CompletionDelayMs != 900 {
		t.Errorf("CompletionDelayMs = %d, expected 900", cfg.CompletionDelayMs)
	}
}

func TestDifficultyManager(t *testing.T) {
	dm := NewDifficultyManager(DefaultDriveConfig().Difficulty)

	tests := []struct {
		level    core.Level
		side     int
		speed    float64
		min, max float64
	}{
		{core.LevelWhole, 2, 1.0, 14, 40},
		{core.LevelSyllables, 3, 1.1, 12, 34},
		{core.LevelLetters, 4, 1.2, 10, 28},
	}
	for _, tc := range tests {
		if got := dm.GridSide(tc.level); got != tc.side {
			t.Errorf("GridSide(%v) = %d, expected %d", tc.level, got, tc.side)
		}
		if got := dm.SpeedMultiplier(tc.level); got != tc.speed {
			t.Errorf("SpeedMultiplier(%v) = %v, expected %v", tc.level, got, tc.speed)
		}
		min, max := dm.SpawnInterval(tc.level)
		if min != tc.min || max != tc.max {
			t.Errorf("SpawnInterval(%v) = %v..%v", tc.level, min, max)
		}
	}

	if got := dm.FloatSpeed(core.LevelLetters); got != 0.30 {
		t.Errorf("FloatSpeed(letters) = %v", got)
	}
}

func TestDifficultyFallback(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{Levels: map[int]LevelTuning{
		1: {GridSide: 2},
		3: {GridSide: 5},
	}})
	if got := dm.GridSide(core.LevelSyllables); got != 2 {
		t.Errorf("level 2 should fall back to level 1, got side %d", got)
	}
	if got := dm.GridSide(core.Level(0)); got != 2 {
		t.Errorf("level 0 should fall back to the lowest level, got side %d", got)
	}
	if got := dm.SpeedMultiplier(core.LevelWhole); got != 1 {
		t.Errorf("zero multiplier should read as 1, got %v", got)
	}

	empty := NewDifficultyManager(DifficultyConfig{})
	if got := empty.GridSide(core.LevelLetters); got != 2 {
		t.Errorf("empty config should use built-in level one, got %d", got)
	}
}
