package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dcrodman/pontifex/internal/deck"
)

// DeckCache remembers the card sequences of deck files that have already
// been read so that every message in a run can start from a fresh copy of
// the same key deck. Entries are keyed by absolute path and invalidated when
// the file's modification time changes.
type DeckCache struct {
	cacheInstance *gocache.Cache
	strict        bool
}

type cachedDeck struct {
	modTime time.Time
	values  []int
}

// NewDeckCache returns an empty cache. With strict set, files that are not a
// permutation of 1..28 are rejected.
func NewDeckCache(strict bool) *DeckCache {
	return &DeckCache{
		cacheInstance: gocache.New(gocache.NoExpiration, 10*time.Minute),
		strict:        strict,
	}
}

// Load returns a new deck in the state recorded in the file at path.
func (c *DeckCache) Load(path string) (*deck.Deck, error) {
	values, err := c.values(path)
	if err != nil {
		return nil, err
	}
	if c.strict {
		d, err := deck.NewStrict(values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return d, nil
	}
	return deck.New(values), nil
}

func (c *DeckCache) values(path string) ([]int, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving deck path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}

	if v, found := c.cacheInstance.Get(abs); found {
		if entry := v.(cachedDeck); entry.modTime.Equal(info.ModTime()) {
			return entry.values, nil
		}
	}

	values, err := deck.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	c.cacheInstance.Set(abs, cachedDeck{modTime: info.ModTime(), values: values}, gocache.DefaultExpiration)
	return values, nil
}

// Forget drops any cached copy of the deck file at path.
func (c *DeckCache) Forget(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		c.cacheInstance.Delete(abs)
	}
}
