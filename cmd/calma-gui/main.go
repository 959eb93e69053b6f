// calma-gui plays one Camino de Calma game in a window, with mouse and
// touch input.
//
// Usage:
//
//	calma-gui [--game match] [--seed 42] [--config ./match.yaml]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/games/all"
	"github.com/vovakirdan/calma/internal/platform/gui"
	"github.com/vovakirdan/calma/internal/platform/shell"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/storage"
)

var (
	flagGame    string
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "calma-gui",
	Short: "Camino de Calma in a window",
	Long: `Open one game in a window. Settings are the ones saved by
'calma settings' and finished rounds go to the same history.

Controls:
  Mouse/touch  - Move, press and drag
  Space        - Pause
  R            - Restart
  Esc/X        - Cancel a drag
  Q            - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagGame, "game", "match", "Game to play (see 'calma list')")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to history database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
}

func run(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagGame) {
		return fmt.Errorf("unknown game %q", flagGame)
	}
	all.SetConfigPath(flagGame, flagConfig)

	game, err := registry.Create(flagGame)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "calma-gui",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	sv := shell.OpenServices(flagDBPath, logger)
	defer sv.Close()

	opts := gui.Options{
		Store:    sv.Store,
		Settings: sv.Settings,
		Feedback: sv.Player,
		Logger:   logger,
	}
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	return gui.Run(game, opts, cfg)
}
