package deck

import (
	"errors"
	"fmt"
)

// ErrInvalidDeck is matched by every error NewStrict and Validate return.
var ErrInvalidDeck = errors.New("invalid deck")

// Reason identifies why a sequence is not a usable deck.
type Reason int

const (
	WrongSize Reason = iota + 1
	DuplicateValue
	OutOfRange
	MissingJoker
)

func (r Reason) String() string {
	switch r {
	case WrongSize:
		return "wrong number of cards"
	case DuplicateValue:
		return "duplicate card"
	case OutOfRange:
		return "card out of range"
	case MissingJoker:
		return "missing joker"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// InvalidDeckError describes the first problem found in a deck sequence.
// Value holds the offending card, or the card count for WrongSize.
type InvalidDeckError struct {
	Reason Reason
	Value  int
}

func (e *InvalidDeckError) Error() string {
	return fmt.Sprintf("deck: %s: %d", e.Reason, e.Value)
}

func (e *InvalidDeckError) Unwrap() error {
	return ErrInvalidDeck
}

// Validate checks that values is a permutation of 1..28. A missing joker is
// reported ahead of the duplicate that necessarily accompanies it.
func Validate(values []int) error {
	if len(values) != Size {
		return &InvalidDeckError{Reason: WrongSize, Value: len(values)}
	}
	var seen [Size + 1]int
	for _, v := range values {
		if v < 1 || v > Size {
			return &InvalidDeckError{Reason: OutOfRange, Value: v}
		}
		seen[v]++
	}
	for _, joker := range []int{JokerA, JokerB} {
		if seen[joker] == 0 {
			return &InvalidDeckError{Reason: MissingJoker, Value: joker}
		}
	}
	for _, v := range values {
		if seen[v] > 1 {
			return &InvalidDeckError{Reason: DuplicateValue, Value: v}
		}
	}
	return nil
}
