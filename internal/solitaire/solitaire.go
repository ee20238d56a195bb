// Package solitaire implements Bruce Schneier's Solitaire (Pontifex) letter
// cipher on top of a 28 card deck.
//
// Every letter consumes one key from the deck, so a Cipher is a session: the
// deck it owns is mutated as messages pass through it, and a message can only
// be decrypted by a Cipher whose deck starts in the state the encrypting
// Cipher's deck was in.
package solitaire

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dcrodman/pontifex/internal/deck"
)

const alphabetSize = 26

// Cipher encrypts and decrypts letter messages with the keystream of the deck
// it owns. It is not safe for concurrent use.
type Cipher struct {
	deck   *deck.Deck
	logger *zap.SugaredLogger
	upper  cases.Caser
}

// Option configures a Cipher.
type Option func(*Cipher)

// WithLogger traces every key the cipher draws at debug level.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Cipher) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Cipher that takes ownership of d.
func New(d *deck.Deck, opts ...Option) *Cipher {
	c := &Cipher{
		deck:   d,
		logger: zap.NewNop().Sugar(),
		upper:  cases.Upper(language.Und),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deck returns the deck in its current state.
func (c *Cipher) Deck() *deck.Deck {
	return c.deck
}

// Encrypt uppercases message and encrypts every resulting letter A-Z.
// Everything else is dropped.
func (c *Cipher) Encrypt(message string) string {
	var out strings.Builder
	for _, r := range c.upper.String(message) {
		if r < 'A' || r > 'Z' {
			continue
		}
		sum := int(r-'A'+1) + c.nextKey()
		if sum > alphabetSize {
			sum -= alphabetSize
		}
		out.WriteRune(letter(sum))
	}
	return out.String()
}

// Decrypt reverses Encrypt. The message is expected to hold uppercase
// letters only; every rune is decrypted as is, so anything else comes back
// as garbage.
func (c *Cipher) Decrypt(message string) string {
	var out strings.Builder
	for _, r := range message {
		code := int(r - 'A' + 1)
		key := c.nextKey()
		diff := code - key
		if code <= key {
			diff += alphabetSize
		}
		out.WriteRune(letter(diff))
	}
	return out.String()
}

// Keystream draws the next n keys without encrypting anything.
func (c *Cipher) Keystream(n int) []int {
	keys := make([]int, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, c.nextKey())
	}
	return keys
}

func (c *Cipher) nextKey() int {
	key, cycles := c.deck.Draw()
	c.logger.Debugw("drew key", "key", key, "cycles", cycles, "deck", c.deck)
	return key
}

// letter maps 1..26 to A..Z.
func letter(pos int) rune {
	return rune(pos - 1 + 'A')
}
