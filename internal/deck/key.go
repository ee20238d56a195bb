package deck

// IsJoker reports whether v is one of the two joker values.
func IsJoker(v int) bool {
	return v == JokerA || v == JokerB
}

// Peek extracts a key from the current order without permuting it. The top
// card's value says how many cards to count down from the top; the card
// found there is the key. A joker on top counts as the whole deck, which
// selects the rear card.
//
// The result may itself be a joker, in which case the caller is expected to
// advance the deck and try again.
func (d *Deck) Peek() int {
	n := len(d.cards)
	if n == 0 {
		return 0
	}
	top := d.cards[d.next(d.rear)]
	if IsJoker(top) {
		return d.Rear()
	}
	if top < 0 {
		top = 0
	}
	return d.cards[(d.rear+1+top)%n]
}

// Draw advances the deck and extracts a key, repeating both for as long as
// the extracted value is a joker. It returns the key along with the number
// of permutation cycles it took.
//
// There is no upper bound on the number of cycles. A valid deck always
// produces a key in 1..26 in a handful of cycles; a malformed deck built
// with New may not.
func (d *Deck) Draw() (key, cycles int) {
	for {
		d.Advance()
		cycles++
		if key = d.Peek(); !IsJoker(key) {
			return key, cycles
		}
	}
}

// NextKey returns the next keystream value.
func (d *Deck) NextKey() int {
	key, _ := d.Draw()
	return key
}
