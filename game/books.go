package game

import "github.com/minaorangina/gofish/deck"

const cardsInBook = 4

// HasBook returns the ranks that appear exactly four times in hand,
// in the order each rank was first seen.
func HasBook(hand []deck.Card) []deck.Rank {
	counts := map[deck.Rank]int{}
	order := []deck.Rank{}

	for _, c := range hand {
		if _, ok := counts[c.Rank]; !ok {
			order = append(order, c.Rank)
		}
		counts[c.Rank]++
	}

	books := []deck.Rank{}
	for _, r := range order {
		if counts[r] == cardsInBook {
			books = append(books, r)
		}
	}

	return books
}

// RemoveBooksFromHand returns a copy of hand without any cards of the given ranks
func RemoveBooksFromHand(hand []deck.Card, books []deck.Rank) []deck.Card {
	bookSet := map[deck.Rank]struct{}{}
	for _, r := range books {
		bookSet[r] = struct{}{}
	}

	kept := []deck.Card{}
	for _, c := range hand {
		if _, ok := bookSet[c.Rank]; !ok {
			kept = append(kept, c)
		}
	}

	return kept
}
