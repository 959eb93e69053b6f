package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/calma/internal/core"
	"github.com/vovakirdan/calma/internal/platform/tui"
	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/storage"
)

var (
	flagHistoryTUI   bool
	flagHistoryClear bool
	flagHistoryLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show finished rounds",
	Long: `Display the latest finished rounds, for one game or for all of them.

Examples:
  calma history
  calma history drive
  calma history --tui
  calma history match --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse the history interactively")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the history of the given game")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of rounds to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'calma list' to see available games.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if gameID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
			store.Close()
			os.Exit(1)
		}
		if err := store.ClearSessions(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		fmt.Printf("History of %s cleared.\n", gameID)
	case flagHistoryTUI:
		cfg := runtimeConfig()
		if err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
	default:
		if err := printHistory(store, gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
			store.Close()
			os.Exit(1)
		}
	}
}

func printHistory(store *storage.Store, gameID string) error {
	sessions, err := store.RecentSessions(gameID, flagHistoryLimit)
	if err != nil {
		return err
	}

	title := "all games"
	if gameID != "" {
		title = gameID
	}
	fmt.Printf("History - %s\n", title)
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No rounds recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-10s  %-10s  %-15s  %-5s  %s\n", "Date", "Game", "Player", "Universe", "Level", "Items", "Time")
	fmt.Printf("  %-16s  %-8s  %-10s  %-10s  %-15s  %-5s  %s\n", "----", "----", "------", "--------", "-----", "-----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-8s  %-10s  %-10s  %-15s  %-5d  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.GameID, s.Player, s.Universe,
			core.Level(s.Level).String(), s.Items,
			s.Duration.Round(100*time.Millisecond))
	}

	if gameID != "" {
		stats, err := store.Stats(gameID)
		if err == nil && stats.Sessions > 0 {
			fmt.Println()
			fmt.Printf("Rounds: %d  Average: %s  Fastest: %s\n",
				stats.Sessions,
				stats.AvgDuration.Round(time.Second),
				stats.Fastest.Round(100*time.Millisecond))
		}
	}
	return nil
}
