package deck

// JokerA swaps joker A with the card after it, wrapping past the rear.
func (d *Deck) JokerA() {
	i := d.indexOf(JokerA)
	if i < 0 {
		return
	}
	j := d.next(i)
	d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
}

// JokerB moves joker B two cards down, wrapping past the rear.
func (d *Deck) JokerB() {
	i := d.indexOf(JokerB)
	if i < 0 {
		return
	}
	j := d.next(i)
	k := d.next(j)
	d.cards[i] = d.cards[j]
	d.cards[j] = d.cards[k]
	d.cards[k] = JokerB
}

// TripleCut exchanges the cards above the first joker with the cards below
// the second one. The jokers and everything between them stay together.
// Afterwards the rear is the last card of whichever run ends the deck.
func (d *Deck) TripleCut() {
	linear := d.Values()
	first, second := -1, -1
	for i, v := range linear {
		if v != JokerA && v != JokerB {
			continue
		}
		if first < 0 {
			first = i
		}
		second = i
	}
	if first < 0 {
		return
	}

	cut := make([]int, 0, len(linear))
	cut = append(cut, linear[second+1:]...)
	cut = append(cut, linear[first:second+1]...)
	cut = append(cut, linear[:first]...)
	d.reset(cut)
}

// CountCut reads the value of the rear card and moves that many cards from
// the top of the deck to just above the rear. A joker on the rear leaves the
// deck unchanged.
func (d *Deck) CountCut() {
	count := d.Rear()
	n := len(d.cards)
	if count < 1 || count >= n-1 {
		return
	}

	linear := d.Values()
	cut := make([]int, 0, n)
	cut = append(cut, linear[count:n-1]...)
	cut = append(cut, linear[:count]...)
	cut = append(cut, linear[n-1])
	d.reset(cut)
}

// Advance runs one full permutation cycle: JokerA, JokerB, TripleCut and
// CountCut.
func (d *Deck) Advance() {
	d.JokerA()
	d.JokerB()
	d.TripleCut()
	d.CountCut()
}
