package engine

import (
	"github.com/minaorangina/gofish/deck"
)

// Player chooses what to ask for when it is their turn
type Player interface {
	ID() string
	Name() string
	Computer() bool
	ChooseAsk(view TurnView) (AskChoice, error)
}

// TurnView is what a player can see when choosing an ask
type TurnView struct {
	PlayerID  string
	Name      string
	Hand      []deck.Card
	Books     []deck.Rank
	Opponents []Opponent
	DeckCount int
}

// Opponent is the public view of another player
type Opponent struct {
	PlayerID  string
	Name      string
	CardCount int
	Books     int
}

// AskChoice is who to ask, and for what
type AskChoice struct {
	ToPlayerID string
	Rank       deck.Rank
}
