package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fullDeckCount = 52

func sortedCopy(d Deck) Deck {
	c := make(Deck, len(d))
	copy(c, d)
	SortCards(c)
	return c
}

func TestDeck(t *testing.T) {
	t.Run("new deck has every card exactly once", func(t *testing.T) {
		d := New()
		assert.Len(t, d, fullDeckCount)

		seen := map[Card]struct{}{}
		for _, c := range d {
			seen[c] = struct{}{}
		}
		assert.Len(t, seen, fullDeckCount)

		for _, r := range Ranks() {
			for s := Clubs; s <= Spades; s++ {
				assert.Contains(t, seen, NewCard(r, s))
			}
		}
	})

	t.Run("new deck is in a fixed order", func(t *testing.T) {
		assert.Equal(t, New(), New())
		assert.Equal(t, NewCard(Ace, Hearts), New()[0])
	})
}

func TestShuffle(t *testing.T) {
	t.Run("shuffle is a permutation", func(t *testing.T) {
		d := New()
		shuffled := d.Shuffle(rand.New(rand.NewSource(42)))

		assert.Len(t, shuffled, len(d))
		assert.Equal(t, sortedCopy(d), sortedCopy(shuffled))
	})

	t.Run("shuffle does not touch the original", func(t *testing.T) {
		d := New()
		d.Shuffle(rand.New(rand.NewSource(7)))
		assert.Equal(t, New(), d)
	})

	t.Run("shuffle changes the order", func(t *testing.T) {
		// the chance of any one seed giving back the identity is 1/52!
		for seed := int64(1); seed <= 5; seed++ {
			assert.NotEqual(t, New(), New().Shuffle(rand.New(rand.NewSource(seed))))
		}
	})

	t.Run("same seed, same order", func(t *testing.T) {
		a := New().Shuffle(rand.New(rand.NewSource(99)))
		b := New().Shuffle(rand.New(rand.NewSource(99)))
		assert.Equal(t, a, b)
	})

	t.Run("nil source still shuffles", func(t *testing.T) {
		shuffled := New().Shuffle(nil)
		assert.Equal(t, sortedCopy(New()), sortedCopy(shuffled))
	})

	t.Run("short decks", func(t *testing.T) {
		assert.Empty(t, Deck{}.Shuffle(nil))
		one := Deck{NewCard(Nine, Clubs)}
		assert.Equal(t, one, one.Shuffle(nil))
	})
}

func TestDraw(t *testing.T) {
	d := Deck{NewCard(Three, Clubs), NewCard(Five, Hearts)}

	c, ok := d.Draw()
	assert.True(t, ok)
	assert.Equal(t, NewCard(Three, Clubs), c)
	assert.Len(t, d, 1)

	c, ok = d.Draw()
	assert.True(t, ok)
	assert.Equal(t, NewCard(Five, Hearts), c)

	_, ok = d.Draw()
	assert.False(t, ok)
	assert.Empty(t, d)
}

func TestDeal(t *testing.T) {
	t.Run("deals from the top", func(t *testing.T) {
		d := New()
		dealt := d.Deal(5)
		assert.Equal(t, []Card(New()[:5]), dealt)
		assert.Len(t, d, fullDeckCount-5)
		assert.Equal(t, New()[5], d[0])
	})

	t.Run("deals what is left when the deck runs out", func(t *testing.T) {
		d := New()[:3]
		assert.Len(t, d.Deal(5), 3)
		assert.Empty(t, d)
		assert.Empty(t, d.Deal(1))
	})

	t.Run("negative counts deal nothing", func(t *testing.T) {
		d := New()
		assert.Empty(t, d.Deal(-1))
		assert.Len(t, d, fullDeckCount)
	})
}
