package core

import "fmt"

// Level is the reading level. It doubles as the difficulty knob: higher
// levels split words finer, move objects faster and cut puzzles smaller.
type Level int

const (
	LevelWhole     Level = 1 // whole words
	LevelSyllables Level = 2 // words split into syllables
	LevelLetters   Level = 3 // letter by letter
)

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelWhole && l <= LevelLetters
}

// String returns the level's display name.
func (l Level) String() string {
	switch l {
	case LevelWhole:
		return "completa"
	case LevelSyllables:
		return "segmentada"
	case LevelLetters:
		return "letra-por-letra"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel accepts the display name or the numeric value.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "1", "completa", "whole":
		return LevelWhole, nil
	case "2", "segmentada", "syllables":
		return LevelSyllables, nil
	case "3", "letra-por-letra", "letras", "letters":
		return LevelLetters, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
