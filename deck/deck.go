package deck

import (
	"math/rand"
	"time"
)

// Deck represents a deck of cards. The card at index 0 is drawn first.
type Deck []Card

// suit order of a new, unshuffled deck
var newDeckSuits = []Suit{Hearts, Diamonds, Clubs, Spades}

// New creates an unshuffled deck of 52 cards
func New() Deck {
	cards := make(Deck, 0, len(newDeckSuits)*NumRanks)
	for _, suit := range newDeckSuits {
		for _, rank := range Ranks() {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle returns a shuffled copy of the deck. The receiver is left as it was.
// A nil rng falls back to a time-seeded source.
func (d Deck) Shuffle(rng *rand.Rand) Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	shuffled := make(Deck, len(d))
	copy(shuffled, d)

	// Fisher-Yates
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw removes and returns the top card, if there is one
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	card := (*d)[0]
	*d = (*d)[1:]
	return card, true
}

// Deal removes up to n cards from the top of the deck.
// Fewer than n cards are returned if the deck runs out.
func (d *Deck) Deal(n int) []Card {
	if n < 0 {
		n = 0
	}
	if n > len(*d) {
		n = len(*d)
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}
