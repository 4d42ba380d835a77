package game

import (
	"github.com/minaorangina/gofish/deck"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the game
type Player struct {
	ID       string
	Name     string
	Hand     []deck.Card
	Books    []deck.Rank
	Computer bool
}

// NewPlayer constructs a player with a fresh ID and no cards
func NewPlayer(name string, computer bool) *Player {
	return &Player{
		ID:       NewID(),
		Name:     name,
		Hand:     []deck.Card{},
		Books:    []deck.Rank{},
		Computer: computer,
	}
}

func (p *Player) clone() *Player {
	c := *p
	c.Hand = append([]deck.Card{}, p.Hand...)
	c.Books = append([]deck.Rank{}, p.Books...)
	return &c
}

// collectBooks moves any completed books out of the player's hand
// and returns the ranks that were completed.
func (p *Player) collectBooks() []deck.Rank {
	books := HasBook(p.Hand)
	if len(books) == 0 {
		return books
	}
	p.Books = append(p.Books, books...)
	p.Hand = RemoveBooksFromHand(p.Hand, books)
	return books
}

// HasRank reports whether the player holds at least one card of rank
func (p *Player) HasRank(rank deck.Rank) bool {
	for _, c := range p.Hand {
		if c.Rank == rank {
			return true
		}
	}
	return false
}
