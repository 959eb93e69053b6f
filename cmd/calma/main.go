// calma runs the Camino de Calma mini-games in the terminal.
//
// Usage:
//
//	calma list                 - List available games
//	calma play <game>          - Play a game
//	calma menu                 - Start menu with settings and history
//	calma serve                - Start SSH server for remote play
//	calma history [game]       - Show finished rounds
//	calma settings show|set|reset
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--db <path>     - Set database path (default: ~/.calma/calma.db)
//	--log <path>    - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/calma/internal/core"
	_ "github.com/vovakirdan/calma/internal/games/all"
	"github.com/vovakirdan/calma/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "calma",
	Short: "Camino de Calma - calm mini-games for early readers",
	Long: `Camino de Calma is a set of calm mini-games for children learning
to read: catch floating objects, drive a tractor along a winding road,
assemble a jigsaw and drag words onto their pictures.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Game picker with settings and history
  serve     - Start SSH server for remote play
  history   - View finished rounds
  settings  - Show or change player settings

Examples:
  calma list
  calma play catch
  calma menu
  calma serve --ssh :2222
  calma settings set universe frutas`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (default: stderr)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(settingsCmd)
}

// newLogger writes to --log when given. Full-screen commands otherwise only
// show warnings, which print before the alternate screen opens.
func newLogger() *log.Logger {
	out := os.Stderr
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			out = f
		}
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "calma",
	})
	logger.SetLevel(log.WarnLevel)
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
