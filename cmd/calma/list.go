package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/calma/internal/registry"
	"github.com/vovakirdan/calma/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long: `Shows every registered mini-game with the rounds finished so far
and the fastest one, read from the history database.`,
	Run: runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// History is optional here; without it the columns stay empty.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		newLogger().Warn("history unavailable", "db", flagDBPath, "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Rounds", "Fastest")
	for _, g := range games {
		rounds, fastest := "-", "-"
		if store != nil {
			if st, err := store.Stats(g.ID); err == nil && st.Sessions > 0 {
				rounds = fmt.Sprint(st.Sessions)
				fastest = st.Fastest.Round(100 * time.Millisecond).String()
			}
		}
		t.Row(g.ID, g.Title, rounds, fastest)
	}
	fmt.Println(t.Render())

	fmt.Println()
	fmt.Println("Run 'calma play <id>' or 'calma-gui --game <id>' to play.")
}
