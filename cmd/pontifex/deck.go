package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dcrodman/pontifex/internal/deck"
	"github.com/dcrodman/pontifex/internal/solitaire"
)

var (
	SeedFlag   int64
	OutputFlag string
	CountFlag  int
)

func newDeckCommand() *cobra.Command {
	deckCmd := &cobra.Command{
		Use:   "deck",
		Short: "Key deck tools",
	}

	shuffleCmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Generates a shuffled key deck",
		RunE:  DeckShuffleCommand,
	}
	shuffleCmd.Flags().Int64Var(&SeedFlag, "seed", 0, "Seed for the shuffle (overrides deck.seed, 0 seeds from the clock)")
	shuffleCmd.Flags().StringVarP(&OutputFlag, "output", "o", "", "Write the deck to this file instead of stdout")

	keysCmd := &cobra.Command{
		Use:   "keys",
		Short: "Prints the first keys of the configured key deck's keystream",
		RunE:  DeckKeysCommand,
	}
	keysCmd.Flags().IntVarP(&CountFlag, "count", "n", 10, "Number of keys to draw")

	deckCmd.AddCommand(shuffleCmd)
	deckCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Prints the configured key deck, top card first",
		RunE:  DeckShowCommand,
	})
	deckCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verifies that the configured key deck is a permutation of 1..28",
		RunE:  DeckCheckCommand,
	})
	deckCmd.AddCommand(keysCmd)
	return deckCmd
}

func DeckShuffleCommand(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	seed := e.cfg.Deck.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d := deck.NewShuffled(rand.New(rand.NewSource(seed)))
	e.logger.Debugw("shuffled deck", "seed", seed)

	if OutputFlag == "" {
		fmt.Fprintln(cmd.OutOrStdout(), d)
		return nil
	}
	if err := os.WriteFile(OutputFlag, []byte(d.String()+"\n"), 0600); err != nil {
		return fmt.Errorf("writing deck file: %w", err)
	}
	e.logger.Infow("wrote deck", "path", OutputFlag)
	return nil
}

func DeckShowCommand(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	d, err := e.loadDeck()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), d)
	return nil
}

func DeckCheckCommand(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	if e.deckPath == "" {
		return errNoDeck
	}
	values, err := deck.ReadFile(e.deckPath)
	if err != nil {
		return err
	}
	if err := deck.Validate(values); err != nil {
		return fmt.Errorf("%s: %w", e.deckPath, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", e.deckPath)
	return nil
}

func DeckKeysCommand(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	d, err := e.loadDeck()
	if err != nil {
		return err
	}
	c := solitaire.New(d, solitaire.WithLogger(e.logger))
	for i, key := range c.Keystream(CountFlag) {
		if i > 0 {
			fmt.Fprint(cmd.OutOrStdout(), " ")
		}
		fmt.Fprint(cmd.OutOrStdout(), key)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
