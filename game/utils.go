package game

import "github.com/minaorangina/gofish/deck"

// partitionByRank splits cards into those of rank and the rest, keeping order
func partitionByRank(cards []deck.Card, rank deck.Rank) (matching, rest []deck.Card) {
	matching, rest = []deck.Card{}, []deck.Card{}
	for _, c := range cards {
		if c.Rank == rank {
			matching = append(matching, c)
		} else {
			rest = append(rest, c)
		}
	}
	return matching, rest
}
