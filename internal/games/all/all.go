// Package all registers every mini-game. Front-ends import it once instead
// of naming each game.
package all

import (
	"github.com/vovakirdan/calma/internal/games/catch"
	"github.com/vovakirdan/calma/internal/games/drive"
	"github.com/vovakirdan/calma/internal/games/match"
	"github.com/vovakirdan/calma/internal/games/puzzle"
)

// SetConfigPath points the game with the given id at a custom YAML file.
// An empty id applies the path to every game.
func SetConfigPath(id, path string) {
	if id == "" || id == catch.ID {
		catch.SetConfigPath(path)
	}
	if id == "" || id == drive.ID {
		drive.SetConfigPath(path)
	}
	if id == "" || id == puzzle.ID {
		puzzle.SetConfigPath(path)
	}
	if id == "" || id == match.ID {
		match.SetConfigPath(path)
	}
}
