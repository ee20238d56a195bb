package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dcrodman/pontifex/internal/core"
	"github.com/dcrodman/pontifex/internal/deck"
)

var errNoDeck = errors.New("no deck file configured (use --deck or deck.file)")

// env holds everything a command needs after config and flags are merged.
type env struct {
	cfg      *core.Config
	logger   *zap.SugaredLogger
	decks    *core.DeckCache
	// Key deck file. A --deck flag is taken relative to the working directory,
	// deck.file relative to the config directory.
	deckPath string
}

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := core.LoadConfig(ConfigFlag)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	deckPath := cfg.DeckPath()
	if flags.Changed("deck") {
		deckPath = DeckFlag
	}
	if flags.Changed("strict") {
		cfg.Deck.Strict = StrictFlag
	}
	if flags.Changed("log-level") {
		cfg.Logging.LogLevel = LogLevelFlag
	}
	if f := flags.Lookup("seed"); f != nil && f.Changed {
		cfg.Deck.Seed = SeedFlag
	}

	logger, err := core.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:      cfg,
		logger:   logger,
		decks:    core.NewDeckCache(cfg.Deck.Strict),
		deckPath: deckPath,
	}, nil
}

// loadDeck returns a fresh copy of the configured key deck.
func (e *env) loadDeck() (*deck.Deck, error) {
	if e.deckPath == "" {
		return nil, errNoDeck
	}
	return e.decks.Load(e.deckPath)
}

func (e *env) close() {
	_ = e.logger.Sync()
}
