package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/minaorangina/gofish/deck"
)

var (
	ErrNilGame        = errors.New("game is nil")
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 7 players allowed")
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrSelfAsk        = errors.New("players cannot ask themselves")
)

const (
	minPlayers = 2
	maxPlayers = 7
)

// GameState is everything needed to play a game of Go Fish
type GameState struct {
	Deck             deck.Deck
	Players          []*Player
	CurrentPlayerIdx int
	Log              []LogEntry
}

// AskAction is one player asking another for every card of a rank
type AskAction struct {
	FromPlayerID string
	ToPlayerID   string
	Rank         deck.Rank
}

// NewGame shuffles a fresh deck and deals to players.
// The first player takes the first turn.
func NewGame(players []*Player, rng *rand.Rand) (*GameState, error) {
	if len(players) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(players) > maxPlayers {
		return nil, ErrTooManyPlayers
	}

	ids := map[string]struct{}{}
	for _, p := range players {
		if p == nil {
			return nil, fmt.Errorf("%w: nil player", ErrInvalidPlayer)
		}
		if _, ok := ids[p.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidPlayer, p.ID)
		}
		ids[p.ID] = struct{}{}
	}

	dealt, remaining := DealCards(deck.New().Shuffle(rng), players)

	return &GameState{
		Deck:    remaining,
		Players: dealt,
		Log:     []LogEntry{},
	}, nil
}

// CurrentPlayer returns the player whose turn it is
func (g *GameState) CurrentPlayer() *Player {
	return g.Players[g.CurrentPlayerIdx]
}

// FindPlayer looks up a player by ID
func (g *GameState) FindPlayer(id string) (*Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// turn passes play to the next player
func (g *GameState) turn() {
	g.CurrentPlayerIdx = (g.CurrentPlayerIdx + 1) % len(g.Players)
}

// PlayTurn resolves a single ask.
//
// If the target holds the rank, every card of that rank moves to the asker and the
// asker goes again. Otherwise the asker draws from the deck (if it isn't empty) and
// play passes on, unless the card drawn is the rank that was asked for.
// Books are collected from the asker's hand either way.
//
// The returned GameOver is always false; callers check IsGameOver themselves.
// An error means g was not touched.
func PlayTurn(g *GameState, action AskAction) (TurnResult, error) {
	if g == nil {
		return TurnResult{}, ErrNilGame
	}

	from, ok := g.FindPlayer(action.FromPlayerID)
	if !ok {
		return TurnResult{}, fmt.Errorf("%w: %q", ErrInvalidPlayer, action.FromPlayerID)
	}
	to, ok := g.FindPlayer(action.ToPlayerID)
	if !ok {
		return TurnResult{}, fmt.Errorf("%w: %q", ErrInvalidPlayer, action.ToPlayerID)
	}
	if from.ID == to.ID {
		return TurnResult{}, ErrSelfAsk
	}

	matching, rest := partitionByRank(to.Hand, action.Rank)

	if len(matching) > 0 {
		from.Hand = append(from.Hand, matching...)
		to.Hand = rest

		return TurnResult{
			Type:           AskSuccess,
			BooksCompleted: from.collectBooks(),
		}, nil
	}

	// Go fish
	var drewCard *deck.Card
	if c, ok := g.Deck.Draw(); ok {
		from.Hand = append(from.Hand, c)
		drewCard = &c
	}

	result := TurnResult{
		Type:           AskFailFish,
		DrewCard:       drewCard,
		BooksCompleted: from.collectBooks(),
	}

	if !result.LuckyFish(action.Rank) {
		g.turn()
	}

	return result, nil
}

// TotalBooks counts the books collected by every player
func TotalBooks(g *GameState) int {
	total := 0
	for _, p := range g.Players {
		total += len(p.Books)
	}
	return total
}

// IsGameOver reports whether all 13 books have been made
func IsGameOver(g *GameState) bool {
	return TotalBooks(g) >= deck.NumRanks
}
