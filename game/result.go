package game

import "github.com/minaorangina/gofish/deck"

// ResultType says which way an ask went
type ResultType int

const (
	AskSuccess ResultType = iota
	AskFailFish
)

var resultTypeNames = []string{
	"ask_success",
	"ask_fail_fish",
}

func (rt ResultType) String() string {
	if rt < 0 || int(rt) >= len(resultTypeNames) {
		return ""
	}
	return resultTypeNames[rt]
}

// TurnResult is the outcome of one ask.
// DrewCard is only set for AskFailFish, and is nil if the deck was empty.
type TurnResult struct {
	Type           ResultType
	DrewCard       *deck.Card
	BooksCompleted []deck.Rank
	GameOver       bool
}

// LuckyFish reports whether the card drawn was the rank that was asked for
func (tr TurnResult) LuckyFish(asked deck.Rank) bool {
	return tr.Type == AskFailFish && tr.DrewCard != nil && tr.DrewCard.Rank == asked
}
