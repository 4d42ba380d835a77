package deck

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidRank = errors.New("invalid rank")

// Rank represents a rank in a deck of cards
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of distinct ranks, and so the number of books in a game
const NumRanks = 13

var rankNames = []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankTokens = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"Clubs", "Diamonds", "Hearts", "Spades"}

// Card is a playing card. Only the rank matters for play.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card. It panics if rank or suit is out of range.
func NewCard(rank Rank, suit Suit) Card {
	if !rank.Valid() || !suit.Valid() {
		panic(fmt.Sprintf("card out of range: rank %d, suit %d", rank, suit))
	}
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Ranks returns every rank, Ace to King
func Ranks() []Rank {
	ranks := make([]Rank, 0, NumRanks)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// ParseRank converts a token such as "a", "10" or "Q" into a Rank
func ParseRank(token string) (Rank, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	for i, t := range rankTokens {
		if t == token {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRank, token)
}

func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Token is the short form used when asking for a rank, e.g. "A" or "10"
func (r Rank) Token() string {
	if !r.Valid() {
		return "?"
	}
	return rankTokens[r]
}

// Plural returns the plural name, e.g. "Fives" or "Sixes"
func (r Rank) Plural() string {
	name := r.String()
	if strings.HasSuffix(name, "x") {
		return name + "es"
	}
	return name + "s"
}

func (s Suit) Valid() bool {
	return s >= Clubs && s <= Spades
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// SortCards orders cards by rank, then suit
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank < cards[j].Rank
		}
		return cards[i].Suit < cards[j].Suit
	})
}

// AOrAn returns the indefinite article for word
func AOrAn(word string) string {
	if word == "" {
		return "a"
	}
	switch strings.ToLower(word[:1]) {
	case "a", "e", "i", "o", "u":
		return "an"
	}
	return "a"
}
