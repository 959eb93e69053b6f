package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/calma/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change player settings",
	Long: `Player settings are shared by every game and saved between runs.

Keys:
  userName             Player name used in the congratulation
  universe             granja, figuras, numeros, frutas, bosque,
                       herramientas, vestuario, aleatorio
  itemCount            Objects per round (1-12)
  wordLevel            completa, segmentada, letra-por-letra
  showWords            Show item names
  wordsAsObjects       Show words instead of pictures
  voiceEnabled         Speak names and congratulations
  partialVoiceEnabled  Speak word parts in the match game
  musicEnabled         Background music
  musicVolume          0.0 - 1.0
  showMolds            Show jigsaw and match targets

Examples:
  calma settings show
  calma settings set userName ana
  calma settings set wordLevel segmentada
  calma settings reset`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printSettings(settings.Open(newLogger()).Get())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		m := settings.Open(newLogger())
		next := m.Get()
		if err := next.Set(args[0], args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printSettings(m.Update(next))
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printSettings(settings.Open(newLogger()).Reset())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsResetCmd)
}

func printSettings(s settings.Settings) {
	data, err := yaml.Marshal(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
