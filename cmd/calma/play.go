package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/calma/internal/games/all"
	"github.com/vovakirdan/calma/internal/platform/shell"
	"github.com/vovakirdan/calma/internal/platform/tui"
	"github.com/vovakirdan/calma/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game with the saved settings.

Controls:
  Mouse        - Move, press and drag
  Arrows/hjkl  - Move the pointer
  Enter        - Press / release
  X            - Cancel a drag
  Space        - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  calma play catch
  calma play puzzle --seed 42
  calma play drive --config ./my-drive.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'calma list' to see available games.")
		os.Exit(1)
	}
	all.SetConfigPath(gameID, flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	sv := shell.OpenServices(flagDBPath, newLogger())
	runErr := tui.Run(game, localDeps(sv), runtimeConfig())

	// Close services before potential exit
	sv.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// localDeps routes sounds and speech to this machine.
func localDeps(sv *shell.Services) tui.Deps {
	return tui.Deps{
		Store:    sv.Store,
		Settings: sv.Settings,
		Feedback: sv.Player,
		Logger:   sv.Logger,
	}
}
