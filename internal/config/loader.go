package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCatch loads catch configuration.
// Search order: customPath -> ~/.calma/configs/catch.yaml -> ./configs/catch.yaml -> embedded default
func LoadCatch(customPath string) (CatchConfig, error) {
	return load("catch.yaml", customPath, defaultCatchYAML, DefaultCatchConfig)
}

// LoadDrive loads drive configuration.
// Search order: customPath -> ~/.calma/configs/drive.yaml -> ./configs/drive.yaml -> embedded default
func LoadDrive(customPath string) (DriveConfig, error) {
	return load("drive.yaml", customPath, defaultDriveYAML, DefaultDriveConfig)
}

// LoadPuzzle loads jigsaw configuration.
// Search order: customPath -> ~/.calma/configs/puzzle.yaml -> ./configs/puzzle.yaml -> embedded default
func LoadPuzzle(customPath string) (PuzzleConfig, error) {
	return load("puzzle.yaml", customPath, defaultPuzzleYAML, DefaultPuzzleConfig)
}

// LoadMatch loads drag-to-match configuration.
// Search order: customPath -> ~/.calma/configs/match.yaml -> ./configs/match.yaml -> embedded default
func LoadMatch(customPath string) (MatchConfig, error) {
	return load("match.yaml", customPath, defaultMatchYAML, DefaultMatchConfig)
}

// load decodes the first readable candidate on top of the hard-coded
// defaults, so files only need the keys they change. Only an explicit
// customPath can fail; the other sources are skipped when unusable.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{}
	if p := userConfigPath(filename); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join("configs", filename))

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".calma", "configs", filename)
}
