package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/gofish/deck"
)

const defaultMaxRetries = 3

// CLIPlayer is a human at a terminal
type CLIPlayer struct {
	id         string
	name       string
	in         *bufio.Scanner
	out        io.Writer
	maxRetries int
}

func NewCLIPlayer(id, name string, in io.Reader, out io.Writer) *CLIPlayer {
	return NewCLIPlayerScanner(id, name, bufio.NewScanner(in), out)
}

// NewCLIPlayerScanner lets several players at one terminal share its input
func NewCLIPlayerScanner(id, name string, in *bufio.Scanner, out io.Writer) *CLIPlayer {
	return &CLIPlayer{
		id:         id,
		name:       name,
		in:         in,
		out:        out,
		maxRetries: defaultMaxRetries,
	}
}

func (p *CLIPlayer) ID() string {
	return p.id
}

func (p *CLIPlayer) Name() string {
	return p.name
}

func (p *CLIPlayer) Computer() bool {
	return false
}

func (p *CLIPlayer) ChooseAsk(view TurnView) (AskChoice, error) {
	if len(view.Opponents) == 0 {
		return AskChoice{}, ErrNoOpponents
	}

	SendText(p.out, "\n%s, your hand: %s\n", p.name, buildHandText(view.Hand))

	target := view.Opponents[0]
	if len(view.Opponents) > 1 {
		var err error
		if target, err = p.chooseOpponent(view.Opponents); err != nil {
			return AskChoice{}, err
		}
	}

	rank, err := p.chooseRank()
	if err != nil {
		return AskChoice{}, err
	}

	return AskChoice{ToPlayerID: target.PlayerID, Rank: rank}, nil
}

func (p *CLIPlayer) chooseOpponent(opponents []Opponent) (Opponent, error) {
	SendText(p.out, "%s", buildOpponentsText(opponents))

	for i := 0; i < p.maxRetries; i++ {
		SendText(p.out, askWhoText)
		line, err := p.readLine()
		if err != nil {
			return Opponent{}, err
		}

		n, err := strconv.Atoi(line)
		if err == nil && n >= 1 && n <= len(opponents) {
			return opponents[n-1], nil
		}
		SendText(p.out, retryOpponentText, len(opponents))
	}

	return Opponent{}, ErrTooManyRetries
}

func (p *CLIPlayer) chooseRank() (deck.Rank, error) {
	for i := 0; i < p.maxRetries; i++ {
		SendText(p.out, askRankText)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}

		rank, err := deck.ParseRank(line)
		if err == nil {
			return rank, nil
		}
		SendText(p.out, retryRankText)
	}

	return 0, ErrTooManyRetries
}

func (p *CLIPlayer) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// IsQuit reports whether err means the human has gone away
func IsQuit(err error) bool {
	return errors.Is(err, ErrInputClosed)
}
