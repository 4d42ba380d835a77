package game

import (
	"fmt"

	"github.com/minaorangina/gofish/deck"
)

func someCards(ranks ...deck.Rank) []deck.Card {
	cards := []deck.Card{}
	suitFor := map[deck.Rank]deck.Suit{}
	for _, r := range ranks {
		cards = append(cards, deck.NewCard(r, suitFor[r]))
		suitFor[r]++
	}
	return cards
}

func bookOf(rank deck.Rank) []deck.Card {
	return someCards(rank, rank, rank, rank)
}

func ranksOf(cards []deck.Card) []deck.Rank {
	ranks := []deck.Rank{}
	for _, c := range cards {
		ranks = append(ranks, c.Rank)
	}
	return ranks
}

func somePlayers(n int) []*Player {
	ps := []*Player{}
	for i := 0; i < n; i++ {
		ps = append(ps, &Player{
			ID:    fmt.Sprintf("player-%d", i),
			Name:  fmt.Sprintf("Player %d", i),
			Hand:  []deck.Card{},
			Books: []deck.Rank{},
		})
	}
	return ps
}

// gameWithHands builds a game whose players hold exactly the given hands
func gameWithHands(d deck.Deck, hands ...[]deck.Card) *GameState {
	ps := somePlayers(len(hands))
	for i, h := range hands {
		ps[i].Hand = h
	}
	if d == nil {
		d = deck.Deck{}
	}
	return &GameState{Deck: d, Players: ps, Log: []LogEntry{}}
}

func countCards(g *GameState) int {
	total := len(g.Deck)
	for _, p := range g.Players {
		total += len(p.Hand) + cardsInBook*len(p.Books)
	}
	return total
}
