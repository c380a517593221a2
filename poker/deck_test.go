package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/internal/randutil"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()
	d := NewShuffledDeck(randutil.New(1))
	require.Equal(t, 52, d.CardsRemaining())

	seen := make(map[Card]bool)
	for _, c := range d.Cards() {
		assert.True(t, c.Valid())
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeckShuffleIsDeterministic(t *testing.T) {
	t.Parallel()
	a := NewShuffledDeck(randutil.New(42))
	b := NewShuffledDeck(randutil.New(42))
	assert.Equal(t, a.Cards(), b.Cards())

	c := NewShuffledDeck(randutil.New(43))
	assert.NotEqual(t, a.Cards(), c.Cards())
}

func TestDealTwo(t *testing.T) {
	t.Parallel()
	d := NewShuffledDeck(randutil.New(7))

	dealt := make(map[Card]bool)
	for range 26 {
		h, ok := d.DealTwo()
		require.True(t, ok)
		require.True(t, h.Valid())
		assert.False(t, dealt[h.Card1])
		assert.False(t, dealt[h.Card2])
		dealt[h.Card1] = true
		dealt[h.Card2] = true
	}
	assert.Equal(t, 0, d.CardsRemaining())

	_, ok := d.DealTwo()
	assert.False(t, ok)

	d.Reset()
	assert.Equal(t, 52, d.CardsRemaining())
}

func TestDealMatching(t *testing.T) {
	t.Parallel()
	rng := randutil.New(3)
	d := NewShuffledDeck(rng)

	for _, target := range []string{"AA", "AKs", "T9o", "32o"} {
		c, err := ParseHandClass(target)
		require.NoError(t, err)

		before := d.CardsRemaining()
		h, ok := d.DealMatching(c)
		require.True(t, ok, target)
		assert.Equal(t, c, Classify(h))
		assert.Equal(t, before-2, d.CardsRemaining())
		assert.NotContains(t, d.Cards(), h.Card1)
		assert.NotContains(t, d.Cards(), h.Card2)
	}
}

func TestDealMatchingUnavailable(t *testing.T) {
	t.Parallel()
	d := NewShuffledDeck(randutil.New(5))
	aa := NewPair(Ace)

	// Only four aces exist, so exactly two AA hands can be dealt.
	for range 2 {
		_, ok := d.DealMatching(aa)
		require.True(t, ok)
	}

	remaining := d.Cards()
	_, ok := d.DealMatching(aa)
	assert.False(t, ok)
	assert.Equal(t, remaining, d.Cards(), "failed deal must not change the deck")
}

func TestDealMatchingCoversEveryCombo(t *testing.T) {
	t.Parallel()
	ako := HandClass{High: Ace, Low: King, Kind: Offsuit}
	rng := randutil.New(11)

	seen := make(map[Hand]bool)
	for range 2000 {
		d := NewShuffledDeck(rng)
		h, ok := d.DealMatching(ako)
		require.True(t, ok)
		if h.Card1.Rank != Ace {
			h = NewHand(h.Card2, h.Card1)
		}
		seen[h] = true
	}
	assert.Len(t, seen, ako.Combos())
}
