package game

import "github.com/minaorangina/gofish/deck"

const (
	twoPlayerHandSize   = 7
	multiPlayerHandSize = 5
)

// HandSize is the number of cards each player is dealt
func HandSize(numPlayers int) int {
	if numPlayers == 2 {
		return twoPlayerHandSize
	}
	return multiPlayerHandSize
}

// DealCards deals a hand to each player from the top of d, in player order.
// Neither d nor players is modified; the dealt players and the rest of the deck are returned.
// There is no bounds check: if d runs out, the later hands are short or empty.
func DealCards(d deck.Deck, players []*Player) ([]*Player, deck.Deck) {
	handSize := HandSize(len(players))

	remaining := make(deck.Deck, len(d))
	copy(remaining, d)

	updated := make([]*Player, 0, len(players))
	for _, p := range players {
		dealt := p.clone()
		dealt.Hand = remaining.Deal(handSize)
		updated = append(updated, dealt)
	}

	return updated, remaining
}
