package deck

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestDeckInvariants checks that every step keeps the deck a permutation of
// 1..28 and that keys stay within the alphabet.
func TestDeckInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	steps := []struct {
		name string
		fn   func(*Deck)
	}{
		{"JokerA", (*Deck).JokerA},
		{"JokerB", (*Deck).JokerB},
		{"TripleCut", (*Deck).TripleCut},
		{"CountCut", (*Deck).CountCut},
	}
	for _, step := range steps {
		step := step
		properties.Property(step.name+" preserves the permutation", prop.ForAll(
			func(seed int64, rounds int) bool {
				d := NewShuffled(rand.New(rand.NewSource(seed)))
				for i := 0; i < rounds; i++ {
					step.fn(d)
					if Validate(d.Values()) != nil {
						return false
					}
				}
				return true
			},
			gen.Int64(),
			gen.IntRange(1, 60),
		))
	}

	properties.Property("keys are between 1 and 26", prop.ForAll(
		func(seed int64, n int) bool {
			d := NewShuffled(rand.New(rand.NewSource(seed)))
			for i := 0; i < n; i++ {
				if key := d.NextKey(); key < 1 || key > MaxKey {
					return false
				}
			}
			return Validate(d.Values()) == nil
		},
		gen.Int64(),
		gen.IntRange(1, 100),
	))

	properties.Property("count cut with a joker on the rear is a no-op", prop.ForAll(
		func(seed int64, joker int) bool {
			values := NewShuffled(rand.New(rand.NewSource(seed))).Values()
			for i, v := range values {
				if v == joker {
					values[i], values[len(values)-1] = values[len(values)-1], values[i]
				}
			}
			d := New(values)
			before := d.Values()
			d.CountCut()
			after := d.Values()
			for i := range before {
				if before[i] != after[i] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(JokerA, JokerB),
	))

	properties.TestingRun(t)
}
