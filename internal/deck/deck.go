// Package deck implements the 28 card deck that drives the Solitaire
// (Pontifex) keystream.
//
// The deck is circular. A Deck stores its cards in a fixed slice together
// with the index of the "rear" card, which anchors the circle: the card after
// the rear is the top of the deck and the rear itself is the bottom. All
// traversal wraps with (i + 1) % len.
package deck

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	// Size is the number of cards in a well formed deck.
	Size = 28
	// JokerA and JokerB are the values of the two jokers.
	JokerA = 27
	JokerB = 28
	// MaxKey is the largest keystream value; anything above is a joker.
	MaxKey = 26
)

// Deck is a circular ordering of card values. A Deck is owned by a single
// cipher session and is not safe for concurrent use.
type Deck struct {
	cards []int
	rear  int
}

// New builds a deck whose order matches values, with the last value as the
// rear. The values are not validated: a deck built from anything other than
// a permutation of 1..28 produces an undefined keystream. Use NewStrict when
// the source is untrusted.
func New(values []int) *Deck {
	cards := make([]int, len(values))
	copy(cards, values)
	return &Deck{cards: cards, rear: len(cards) - 1}
}

// NewStrict is like New but rejects anything that is not a permutation of
// 1..28 with an *InvalidDeckError.
func NewStrict(values []int) (*Deck, error) {
	if err := Validate(values); err != nil {
		return nil, err
	}
	return New(values), nil
}

// NewShuffled returns a uniformly shuffled deck using rng. A nil rng is
// replaced by a time seeded source.
func NewShuffled(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	cards := Ordered()
	// Fisher–Yates.
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return New(cards)
}

// Ordered returns the values 1..28 in natural order.
func Ordered() []int {
	values := make([]int, Size)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Rear returns the value of the anchor card.
func (d *Deck) Rear() int {
	if len(d.cards) == 0 {
		return 0
	}
	return d.cards[d.rear]
}

// Values returns the deck in traversal order: the card after the rear first
// and the rear last.
func (d *Deck) Values() []int {
	n := len(d.cards)
	values := make([]int, n)
	for i := range values {
		values[i] = d.cards[(d.rear+1+i)%n]
	}
	return values
}

// Clone returns an independent copy of the deck in the same state.
func (d *Deck) Clone() *Deck {
	cards := make([]int, len(d.cards))
	copy(cards, d.cards)
	return &Deck{cards: cards, rear: d.rear}
}

// Equal reports whether two decks are in the same logical state, meaning
// the same order relative to their anchors.
func (d *Deck) Equal(other *Deck) bool {
	a, b := d.Values(), other.Values()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the deck as a comma separated list starting after the rear
// and ending with it.
func (d *Deck) String() string {
	values := d.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (d *Deck) next(i int) int {
	return (i + 1) % len(d.cards)
}

func (d *Deck) indexOf(value int) int {
	for i, v := range d.cards {
		if v == value {
			return i
		}
	}
	return -1
}

// reset replaces the contents with a linear view, anchoring on its last card.
func (d *Deck) reset(linear []int) {
	d.cards = linear
	d.rear = len(linear) - 1
}
