package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/gofish/deck"
	"github.com/minaorangina/gofish/game"
)

const (
	askRankText       = "Ask for which rank? (A, 2-10, J, Q, K): "
	retryRankText     = "Invalid rank. Try again.\n"
	askWhoText        = "Ask which player? "
	retryOpponentText = "Please enter a number from 1 to %d\n"
	noActionText      = "(none)"
	emptyHandText     = "(no cards)"
	gameOverText      = "\nGame over!\n"
	tieText           = "It's a tie!"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func buildHandText(hand []deck.Card) string {
	if len(hand) == 0 {
		return emptyHandText
	}

	sorted := append([]deck.Card{}, hand...)
	deck.SortCards(sorted)

	tokens := []string{}
	for _, c := range sorted {
		tokens = append(tokens, c.Rank.Token())
	}
	return strings.Join(tokens, ", ")
}

func buildOpponentsText(opponents []Opponent) string {
	text := ""
	for i, o := range opponents {
		text += fmt.Sprintf("%d - %s (%d cards, %d books)\n", i+1, o.Name, o.CardCount, o.Books)
	}
	return text
}

func buildScoreText(players []*game.Player) string {
	scores := []string{}
	for _, p := range players {
		scores = append(scores, fmt.Sprintf("%s: %d", p.Name, len(p.Books)))
	}
	return "Books - " + strings.Join(scores, ", ")
}

func buildStateText(g *game.GameState) string {
	lastAction := noActionText
	if entry, ok := g.LastLogEntry(); ok {
		lastAction = entry.Text
	}

	return fmt.Sprintf("\n--- Game State ---\n%s\nCards left in the deck: %d\nLast action: %s\n--------------\n",
		buildScoreText(g.Players), len(g.Deck), lastAction)
}

func buildOutcomeText(o Outcome) string {
	text := gameOverText
	for _, s := range o.Scores {
		text += fmt.Sprintf("%s: %d books\n", s.Name, s.Books)
	}

	if o.Tie {
		return text + tieText + "\n"
	}
	return text + winText(o.Winners[0], o.Scores) + "\n"
}

// winText speaks to the winner directly when they are the only human playing
func winText(winner Score, scores []Score) string {
	humans := 0
	for _, s := range scores {
		if !s.Computer {
			humans++
		}
	}

	if !winner.Computer && humans == 1 {
		return "You win!"
	}
	return winner.Name + " wins!"
}

// describeAsk is the log line for a resolved ask
func describeAsk(from, to *game.Player, rank deck.Rank, taken int, result game.TurnResult) string {
	asked := fmt.Sprintf("%s asked %s for %s", from.Name, to.Name, rank.Plural())

	if result.Type == game.AskSuccess {
		return fmt.Sprintf("%s and took %d.", asked, taken)
	}

	switch {
	case result.DrewCard == nil:
		return fmt.Sprintf("%s. Go fish! The deck is empty.", asked)
	case result.LuckyFish(rank):
		name := result.DrewCard.Rank.String()
		return fmt.Sprintf("%s. Go fish! %s drew %s %s and goes again.", asked, from.Name, deck.AOrAn(name), name)
	default:
		return fmt.Sprintf("%s. Go fish! %s drew a card.", asked, from.Name)
	}
}

func describeBook(p *game.Player, rank deck.Rank) string {
	return fmt.Sprintf("%s completed a book of %s.", p.Name, rank.Plural())
}
