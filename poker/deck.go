package poker

import (
	rand "math/rand/v2"
)

// Deck is a shuffled stack of the cards not yet dealt. Dealing removes cards;
// Reset brings back all 52.
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for shuffling and matched deals
}

// NewDeck creates a full, unshuffled 52-card deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}
	d.fill()
	return d
}

// NewShuffledDeck creates a full deck and shuffles it
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck(rng)
	d.Shuffle()
	return d
}

func (d *Deck) fill() {
	d.cards = d.cards[:0]
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.intN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.fill()
	d.Shuffle()
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deck order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// DealTwo removes and returns the top two cards. It returns false and leaves
// the deck untouched when fewer than two cards remain.
func (d *Deck) DealTwo() (Hand, bool) {
	n := len(d.cards)
	if n < 2 {
		return Hand{}, false
	}
	h := NewHand(d.cards[n-1], d.cards[n-2])
	d.cards = d.cards[:n-2]
	return h, true
}

// DealMatching picks uniformly among every pair of remaining cards whose
// class is target, removes both cards and returns them. It returns false and
// leaves the deck untouched when no remaining pair has that class.
func (d *Deck) DealMatching(target HandClass) (Hand, bool) {
	type pair struct{ i, j int }

	var matches []pair
	for i := 0; i < len(d.cards); i++ {
		for j := i + 1; j < len(d.cards); j++ {
			if Classify(NewHand(d.cards[i], d.cards[j])) == target {
				matches = append(matches, pair{i, j})
			}
		}
	}
	if len(matches) == 0 {
		return Hand{}, false
	}

	m := matches[d.intN(len(matches))]
	h := NewHand(d.cards[m.i], d.cards[m.j])

	// j > i, so removing j first keeps i in place
	d.cards = append(d.cards[:m.j], d.cards[m.j+1:]...)
	d.cards = append(d.cards[:m.i], d.cards[m.i+1:]...)
	return h, true
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}
