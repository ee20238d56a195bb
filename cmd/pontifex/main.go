// Command pontifex encrypts and decrypts letter messages with the Solitaire
// cipher, and generates and inspects the key decks it runs on.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	ConfigFlag   string
	DeckFlag     string
	StrictFlag   bool
	LogLevelFlag string
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pontifex",
		Short:         "Solitaire (Pontifex) cipher and key deck tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&ConfigFlag, "config", "c", "./", "Path to the directory containing config.yaml")
	rootCmd.PersistentFlags().StringVarP(&DeckFlag, "deck", "d", "", "Path to the key deck file (overrides deck.file)")
	rootCmd.PersistentFlags().BoolVar(&StrictFlag, "strict", true, "Reject deck files that are not a permutation of 1..28 (overrides deck.strict)")
	rootCmd.PersistentFlags().StringVar(&LogLevelFlag, "log-level", "", "Minimum log level (overrides logging.level)")

	rootCmd.AddCommand(newEncryptCommand())
	rootCmd.AddCommand(newDecryptCommand())
	rootCmd.AddCommand(newDeckCommand())
	return rootCmd
}
