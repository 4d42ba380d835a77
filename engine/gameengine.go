package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/game"
)

var (
	ErrGameOver       = errors.New("game is already over")
	ErrNotYourTurn    = errors.New("it is not this player's turn")
	ErrTurnLimit      = errors.New("turn limit reached")
	ErrNoOpponents    = errors.New("no opponents to ask")
	ErrTooManyRetries = errors.New("too many invalid entries")
	ErrInputClosed    = errors.New("input closed")
)

// GameEngineOpts configures a GameEngine. Only Players is required.
type GameEngineOpts struct {
	GameID   string
	Players  []Player
	Rand     *rand.Rand
	Logger   *log.Logger
	Clock    quartz.Clock
	Out      io.Writer
	MaxTurns int // 0 means no limit
}

// GameEngine drives a game of Go Fish: it asks each player for their move,
// resolves it and keeps the game log.
type GameEngine struct {
	id         string
	game       *game.GameState
	players    map[string]Player
	logger     *log.Logger
	clock      quartz.Clock
	out        io.Writer
	maxTurns   int
	turns      int
	startedAt  time.Time
	finishedAt time.Time
}

// Score is one player's book count
type Score struct {
	PlayerID string
	Name     string
	Books    int
	Computer bool
}

// Outcome is the result of a finished game
type Outcome struct {
	Scores   []Score
	Winners  []Score
	Tie      bool
	Duration time.Duration
}

// NewGameEngine deals a new game for opts.Players
func NewGameEngine(opts GameEngineOpts) (*GameEngine, error) {
	if opts.GameID == "" {
		opts.GameID = game.NewID()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	players := map[string]Player{}
	gamePlayers := []*game.Player{}
	for _, p := range opts.Players {
		players[p.ID()] = p
		gamePlayers = append(gamePlayers, &game.Player{
			ID:       p.ID(),
			Name:     p.Name(),
			Hand:     []deck.Card{},
			Books:    []deck.Rank{},
			Computer: p.Computer(),
		})
	}

	g, err := game.NewGame(gamePlayers, opts.Rand)
	if err != nil {
		return nil, err
	}

	ge := &GameEngine{
		id:        opts.GameID,
		game:      g,
		players:   players,
		logger:    opts.Logger.WithPrefix("engine").With("game", opts.GameID),
		clock:     opts.Clock,
		out:       opts.Out,
		maxTurns:  opts.MaxTurns,
		startedAt: opts.Clock.Now(),
	}

	ge.logger.Info("game dealt", "players", len(gamePlayers), "hand", game.HandSize(len(gamePlayers)), "deck", len(g.Deck))

	return ge, nil
}

func (ge *GameEngine) ID() string {
	return ge.id
}

// Game exposes the underlying state. Callers should treat it as read-only.
func (ge *GameEngine) Game() *game.GameState {
	return ge.game
}

func (ge *GameEngine) GameOver() bool {
	return game.IsGameOver(ge.game)
}

// Turns is the number of asks resolved so far
func (ge *GameEngine) Turns() int {
	return ge.turns
}

// Ask resolves an ask by the current player and records it in the game log.
// The returned result's GameOver is set from the state after the ask.
func (ge *GameEngine) Ask(action game.AskAction) (game.TurnResult, error) {
	if ge.GameOver() {
		return game.TurnResult{}, ErrGameOver
	}
	if action.FromPlayerID != ge.game.CurrentPlayer().ID {
		return game.TurnResult{}, fmt.Errorf("%w: %s", ErrNotYourTurn, action.FromPlayerID)
	}

	taken := 0
	if to, ok := ge.game.FindPlayer(action.ToPlayerID); ok {
		taken = countRank(to.Hand, action.Rank)
	}

	result, err := game.PlayTurn(ge.game, action)
	if err != nil {
		ge.logger.Error("ask rejected", "from", action.FromPlayerID, "to", action.ToPlayerID, "error", err)
		return result, err
	}
	ge.turns++

	from, _ := ge.game.FindPlayer(action.FromPlayerID)
	to, _ := ge.game.FindPlayer(action.ToPlayerID)

	ge.game.StartNewTurn()
	ge.game.LogEvent(describeAsk(from, to, action.Rank, taken, result))
	ge.logger.Debug("turn played",
		"turn", ge.turns,
		"from", from.Name,
		"to", to.Name,
		"rank", action.Rank.Token(),
		"result", result.Type,
		"deck", len(ge.game.Deck),
	)

	for _, r := range result.BooksCompleted {
		ge.game.LogEvent(describeBook(from, r))
		ge.logger.Info("book completed", "player", from.Name, "rank", r.Token())
	}

	result.GameOver = ge.GameOver()
	if result.GameOver {
		ge.finishedAt = ge.clock.Now()
		ge.game.LogEvent("Game over!")
		ge.logger.Info("game over", "turns", ge.turns, "duration", ge.finishedAt.Sub(ge.startedAt))
	}

	return result, nil
}

// Next asks the current player for their move and plays it
func (ge *GameEngine) Next() (game.TurnResult, error) {
	if ge.GameOver() {
		return game.TurnResult{}, ErrGameOver
	}

	current := ge.game.CurrentPlayer()
	player, ok := ge.players[current.ID]
	if !ok {
		return game.TurnResult{}, fmt.Errorf("%w: %q", game.ErrInvalidPlayer, current.ID)
	}

	choice, err := player.ChooseAsk(ge.view(current))
	if err != nil {
		return game.TurnResult{}, fmt.Errorf("%s could not choose an ask: %w", current.Name, err)
	}

	return ge.Ask(game.AskAction{
		FromPlayerID: current.ID,
		ToPlayerID:   choice.ToPlayerID,
		Rank:         choice.Rank,
	})
}

// Run plays turns until the game is over, printing the state after each one
func (ge *GameEngine) Run() (Outcome, error) {
	for !ge.GameOver() {
		if ge.maxTurns > 0 && ge.turns >= ge.maxTurns {
			ge.logger.Warn("turn limit reached", "turns", ge.turns)
			return Outcome{}, ErrTurnLimit
		}

		if _, err := ge.Next(); err != nil {
			return Outcome{}, err
		}

		SendText(ge.out, "%s", buildStateText(ge.game))
	}

	outcome := ge.Outcome()
	SendText(ge.out, "%s", buildOutcomeText(outcome))

	return outcome, nil
}

// Outcome scores the game as it stands. Winners are everyone on the most books.
func (ge *GameEngine) Outcome() Outcome {
	o := Outcome{Scores: []Score{}, Winners: []Score{}}

	best := -1
	for _, p := range ge.game.Players {
		s := Score{PlayerID: p.ID, Name: p.Name, Books: len(p.Books), Computer: p.Computer}
		o.Scores = append(o.Scores, s)

		switch {
		case s.Books > best:
			best = s.Books
			o.Winners = []Score{s}
		case s.Books == best:
			o.Winners = append(o.Winners, s)
		}
	}
	o.Tie = len(o.Winners) > 1

	end := ge.finishedAt
	if end.IsZero() {
		end = ge.clock.Now()
	}
	o.Duration = end.Sub(ge.startedAt)

	return o
}

func (ge *GameEngine) view(p *game.Player) TurnView {
	opponents := []Opponent{}
	for _, o := range ge.game.Players {
		if o.ID == p.ID {
			continue
		}
		opponents = append(opponents, Opponent{
			PlayerID:  o.ID,
			Name:      o.Name,
			CardCount: len(o.Hand),
			Books:     len(o.Books),
		})
	}

	return TurnView{
		PlayerID:  p.ID,
		Name:      p.Name,
		Hand:      append([]deck.Card{}, p.Hand...),
		Books:     append([]deck.Rank{}, p.Books...),
		Opponents: opponents,
		DeckCount: len(ge.game.Deck),
	}
}

func countRank(cards []deck.Card, rank deck.Rank) int {
	n := 0
	for _, c := range cards {
		if c.Rank == rank {
			n++
		}
	}
	return n
}
