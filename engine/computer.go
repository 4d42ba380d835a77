package engine

import (
	"math/rand"
	"time"

	"github.com/minaorangina/gofish/deck"
)

// ComputerPlayer asks a random opponent for the rank of a random card in its hand
type ComputerPlayer struct {
	id   string
	name string
	rng  *rand.Rand
}

func NewComputerPlayer(id, name string, rng *rand.Rand) *ComputerPlayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ComputerPlayer{id: id, name: name, rng: rng}
}

func (p *ComputerPlayer) ID() string {
	return p.id
}

func (p *ComputerPlayer) Name() string {
	return p.name
}

func (p *ComputerPlayer) Computer() bool {
	return true
}

func (p *ComputerPlayer) ChooseAsk(view TurnView) (AskChoice, error) {
	if len(view.Opponents) == 0 {
		return AskChoice{}, ErrNoOpponents
	}

	// an empty hand still has to ask for something
	rank := deck.Ace
	if len(view.Hand) > 0 {
		rank = view.Hand[p.rng.Intn(len(view.Hand))].Rank
	}

	target := view.Opponents[p.rng.Intn(len(view.Opponents))]

	return AskChoice{ToPlayerID: target.PlayerID, Rank: rank}, nil
}
