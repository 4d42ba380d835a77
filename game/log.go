package game

import "fmt"

// LogEntry is a line in the game log
type LogEntry struct {
	Turn int
	Text string
}

func (g *GameState) lastTurn() int {
	if len(g.Log) == 0 {
		return 0
	}
	return g.Log[len(g.Log)-1].Turn
}

// StartNewTurn opens the next numbered turn in the log
func (g *GameState) StartNewTurn() int {
	turn := g.lastTurn() + 1
	g.Log = append(g.Log, LogEntry{Turn: turn, Text: fmt.Sprintf("--- Turn %d ---", turn)})
	return turn
}

// LogEvent records text against the current turn
func (g *GameState) LogEvent(text string) {
	g.Log = append(g.Log, LogEntry{Turn: g.lastTurn(), Text: text})
}

func (g *GameState) LastLogEntry() (LogEntry, bool) {
	if len(g.Log) == 0 {
		return LogEntry{}, false
	}
	return g.Log[len(g.Log)-1], true
}
