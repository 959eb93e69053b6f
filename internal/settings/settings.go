// Package settings holds the player preferences shared by every game and
// persists them through gdata.
package settings

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/calma/internal/catalog"
	"github.com/vovakirdan/calma/internal/core"
)

// Item count bounds.
const (
	MinItems = 1
	MaxItems = 12
)

// Settings are the player's preferences.
type Settings struct {
	UserName            string             `yaml:"userName"`
	Universe            catalog.UniverseID `yaml:"universe"`
	ItemCount           int                `yaml:"itemCount"`
	ShowWords           bool               `yaml:"showWords"`
	WordsAsObjects      bool               `yaml:"wordsAsObjects"`
	VoiceEnabled        bool               `yaml:"voiceEnabled"`
	PartialVoiceEnabled bool               `yaml:"partialVoiceEnabled"`
	MusicEnabled        bool               `yaml:"musicEnabled"`
	MusicVolume         float64            `yaml:"musicVolume"`
	ShowMolds           bool               `yaml:"showMolds"`
	Level               core.Level         `yaml:"wordLevel"`
}

// Default returns the factory settings.
func Default() Settings {
	return Settings{
		UserName:            "SANTI",
		Universe:            catalog.Granja,
		ItemCount:           4,
		ShowWords:           true,
		WordsAsObjects:      false,
		VoiceEnabled:        true,
		PartialVoiceEnabled: false,
		MusicEnabled:        false,
		MusicVolume:         0.3,
		ShowMolds:           true,
		Level:               core.LevelWhole,
	}
}

// Normalize clamps numeric fields and replaces invalid enums with defaults.
func (s Settings) Normalize() Settings {
	def := Default()
	s.UserName = strings.ToUpper(strings.TrimSpace(s.UserName))
	if s.UserName == "" {
		s.UserName = def.UserName
	}
	s.Universe = catalog.UniverseID(strings.ToLower(string(s.Universe)))
	if !catalog.Valid(s.Universe) {
		s.Universe = def.Universe
	}
	s.ItemCount = core.Clamp(s.ItemCount, MinItems, MaxItems)
	s.MusicVolume = core.ClampF(s.MusicVolume, 0, 1)
	if !s.Level.Valid() {
		s.Level = def.Level
	}
	return s
}

// NeedsReset reports whether switching from prev to s must restart the
// running game: a different universe, item count or reading level.
func (s Settings) NeedsReset(prev Settings) bool {
	return s.Universe != prev.Universe ||
		s.ItemCount != prev.ItemCount ||
		s.Level != prev.Level
}

// EffectVolume is the gain for one-shot effects such as pop.
func (s Settings) EffectVolume() float64 {
	return s.MusicVolume * 0.5
}

// FanfareVolume is louder than effects and never below 0.4.
func (s Settings) FanfareVolume() float64 {
	return max(0.4, s.MusicVolume*1.5)
}

// CongratulationText is spoken when a round is completed.
func (s Settings) CongratulationText() string {
	return fmt.Sprintf("Excelente %s, lo has hecho muy bien", s.UserName)
}

// Set assigns a field by its yaml key from a string value, as used by the CLI.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "userName":
		s.UserName = value
	case "universe":
		if !catalog.Valid(catalog.UniverseID(value)) {
			return fmt.Errorf("settings: unknown universe %q", value)
		}
		s.Universe = catalog.UniverseID(strings.ToLower(value))
	case "itemCount":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return fmt.Errorf("settings: itemCount: %w", err)
		}
		s.ItemCount = n
	case "musicVolume":
		var v float64
		if _, err := fmt.Sscanf(value, "%g", &v); err != nil {
			return fmt.Errorf("settings: musicVolume: %w", err)
		}
		s.MusicVolume = v
	case "wordLevel":
		l, err := core.ParseLevel(value)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		s.Level = l
	default:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("settings: %s: %w", key, err)
		}
		switch key {
		case "showWords":
			s.ShowWords = b
		case "wordsAsObjects":
			s.WordsAsObjects = b
		case "voiceEnabled":
			s.VoiceEnabled = b
		case "partialVoiceEnabled":
			s.PartialVoiceEnabled = b
		case "musicEnabled":
			s.MusicEnabled = b
		case "showMolds":
			s.ShowMolds = b
		default:
			return fmt.Errorf("settings: unknown key %q", key)
		}
	}
	*s = s.Normalize()
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "on", "yes", "si", "sí", "1":
		return true, nil
	case "false", "off", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", v)
}
