package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/calma/internal/platform/shell"
	"github.com/vovakirdan/calma/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Esc on a paused game returns to the menu, where "Continuar" resumes it.
Settings changed from the menu apply to the paused game; a new universe,
item count or reading level starts it over.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  calma menu
  calma menu --fps 30
  calma menu --db ./calma.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	sv := shell.OpenServices(flagDBPath, newLogger())
	err := tui.RunSession(localDeps(sv), runtimeConfig())
	sv.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
