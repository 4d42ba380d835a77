package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/minaorangina/gofish/engine"
)

var (
	ErrUnknownGameID     = errors.New("unknown game ID")
	ErrGameNotOver       = errors.New("game is not over")
	ErrFnDuplicateGameID = func(gameID string) error {
		return fmt.Errorf("game with id \"%s\" already exists", gameID)
	}
)

type GameStore interface {
	FindGame(gameID string) *engine.GameEngine
	AddGame(ge *engine.GameEngine) error
	RecordOutcome(gameID string, outcome engine.Outcome) error
	Outcomes() []engine.Outcome
	Tally() []Tally
}

// Tally is one player's record over a session.
// Players are matched by name since IDs are new for every game.
type Tally struct {
	Name  string
	Wins  int
	Ties  int
	Books int
}

// InMemoryGameStore maps game id to game engine for the games of one session
type InMemoryGameStore struct {
	Games    map[string]*engine.GameEngine
	Finished map[string]engine.Outcome
	order    []string
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games:    map[string]*engine.GameEngine{},
		Finished: map[string]engine.Outcome{},
		order:    []string{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *engine.GameEngine {
	game, ok := s.Games[gameID]
	if !ok {
		return nil
	}

	return game
}

func (s *InMemoryGameStore) AddGame(ge *engine.GameEngine) error {
	if _, exists := s.Games[ge.ID()]; exists {
		return ErrFnDuplicateGameID(ge.ID())
	}

	s.Games[ge.ID()] = ge
	s.order = append(s.order, ge.ID())
	return nil
}

// RecordOutcome keeps the result of a finished game
func (s *InMemoryGameStore) RecordOutcome(gameID string, outcome engine.Outcome) error {
	game := s.FindGame(gameID)
	if game == nil {
		return fmt.Errorf("%w: %s", ErrUnknownGameID, gameID)
	}
	if !game.GameOver() {
		return ErrGameNotOver
	}

	s.Finished[gameID] = outcome
	return nil
}

// Outcomes returns finished games in the order they were added
func (s *InMemoryGameStore) Outcomes() []engine.Outcome {
	outcomes := []engine.Outcome{}
	for _, id := range s.order {
		if o, ok := s.Finished[id]; ok {
			outcomes = append(outcomes, o)
		}
	}

	return outcomes
}

// Tally adds up wins, ties and books per player, most wins first
func (s *InMemoryGameStore) Tally() []Tally {
	byName := map[string]*Tally{}
	names := []string{}

	for _, o := range s.Outcomes() {
		winners := map[string]bool{}
		for _, w := range o.Winners {
			winners[w.Name] = true
		}

		for _, score := range o.Scores {
			t, ok := byName[score.Name]
			if !ok {
				t = &Tally{Name: score.Name}
				byName[score.Name] = t
				names = append(names, score.Name)
			}
			t.Books += score.Books

			switch {
			case !winners[score.Name]:
			case o.Tie:
				t.Ties++
			default:
				t.Wins++
			}
		}
	}

	tallies := make([]Tally, 0, len(names))
	for _, name := range names {
		tallies = append(tallies, *byName[name])
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Wins > tallies[j].Wins
	})

	return tallies
}
