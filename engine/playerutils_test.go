package engine

import (
	"bytes"
	"math/rand"
	"sync"

	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/game"
)

// scriptedPlayer plays a fixed list of asks and remembers what it was shown
type scriptedPlayer struct {
	id      string
	name    string
	choices []AskChoice
	views   []TurnView
}

func (p *scriptedPlayer) ID() string     { return p.id }
func (p *scriptedPlayer) Name() string   { return p.name }
func (p *scriptedPlayer) Computer() bool { return false }

func (p *scriptedPlayer) ChooseAsk(view TurnView) (AskChoice, error) {
	p.views = append(p.views, view)
	if len(p.choices) == 0 {
		return AskChoice{}, ErrInputClosed
	}
	c := p.choices[0]
	p.choices = p.choices[1:]
	return c, nil
}

func twoScriptedPlayers() (*scriptedPlayer, *scriptedPlayer) {
	return &scriptedPlayer{id: "harry-1", name: "Harry"}, &scriptedPlayer{id: "sally-1", name: "Sally"}
}

func twoComputers(seed int64) []Player {
	rng := rand.New(rand.NewSource(seed))
	return []Player{
		NewComputerPlayer("c1", "Computer 1", rng),
		NewComputerPlayer("c2", "Computer 2", rng),
	}
}

// setHands replaces the dealt cards so a test can control the game
func setHands(ge *GameEngine, d deck.Deck, hands ...[]deck.Card) {
	ge.game.Deck = d
	for i, h := range hands {
		ge.game.Players[i].Hand = h
	}
}

func giveBooks(p *game.Player, ranks ...deck.Rank) {
	p.Books = append(p.Books, ranks...)
}

func card(r deck.Rank, s deck.Suit) deck.Card {
	return deck.NewCard(r, s)
}

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}
