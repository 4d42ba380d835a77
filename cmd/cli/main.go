package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/minaorangina/gofish/config"
	"github.com/minaorangina/gofish/engine"
	"github.com/minaorangina/gofish/store"
)

// version is set by ldflags during build
var version = "dev"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1F6FB2")).
			Padding(0, 1).
			Bold(true)
	byeStyle = lipgloss.NewStyle().Faint(true)
)

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Name      string           `short:"n" help:"Your name" default:"${name}"`
	Opponents int              `short:"o" help:"Number of computer opponents" default:"${opponents}"`
	Seed      int64            `help:"Random seed, 0 to seed from the time" default:"${seed}"`
	LogLevel  string           `help:"Log level (debug, info, warn, error)" default:"${log_level}"`
	Table     string           `short:"t" help:"HCL file listing the players at the table" default:"${table}"`
	Games     int              `short:"g" help:"Number of games to play" default:"${games}"`
	MaxTurns  int              `help:"Stop a game after this many turns, 0 for no limit" default:"0"`
}

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("Failed to read configuration", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gofish"),
		kong.Description("Play Go Fish in the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":   version,
			"name":      cfg.PlayerName,
			"opponents": strconv.Itoa(cfg.Opponents),
			"seed":      strconv.FormatInt(cfg.Seed, 10),
			"log_level": cfg.LogLevel,
			"table":     cfg.TableFile,
			"games":     strconv.Itoa(cfg.Games),
		},
	)

	cfg.PlayerName = cli.Name
	cfg.Opponents = cli.Opponents
	cfg.Seed = cli.Seed
	cfg.LogLevel = cli.LogLevel
	cfg.TableFile = cli.Table
	cfg.Games = cli.Games

	err = play(cfg, cli.MaxTurns)
	ctx.FatalIfErrorf(err)
}

func play(cfg *config.Config, maxTurns int) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "gofish",
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Seeding", "seed", seed)
	rng := rand.New(rand.NewSource(seed))

	fmt.Println(titleStyle.Render(" ♠ ♥ Go Fish ♦ ♣ "))

	gameStore := store.NewInMemoryGameStore()
	stdin := bufio.NewScanner(os.Stdin)

	for i := 1; i <= cfg.Games; i++ {
		if cfg.Games > 1 {
			fmt.Println(titleStyle.Render(fmt.Sprintf(" Game %d of %d ", i, cfg.Games)))
		}

		ge, err := newGame(cfg, stdin, rng, logger, maxTurns)
		if err != nil {
			return err
		}
		if err := gameStore.AddGame(ge); err != nil {
			return err
		}

		outcome, err := ge.Run()
		if engine.IsQuit(err) {
			fmt.Println(byeStyle.Render("\nBye!"))
			break
		}
		if err != nil {
			return err
		}
		if err := gameStore.RecordOutcome(ge.ID(), outcome); err != nil {
			return err
		}

		logger.Info("Game finished", "game", ge.ID(), "turns", ge.Turns(), "duration", outcome.Duration.Round(time.Second))
	}

	if len(gameStore.Outcomes()) > 1 {
		fmt.Println(buildTallyText(gameStore.Tally()))
	}

	return nil
}

// newGame deals a game for a fresh roster. Humans share stdin.
func newGame(cfg *config.Config, stdin *bufio.Scanner, rng *rand.Rand, logger *log.Logger, maxTurns int) (*engine.GameEngine, error) {
	roster, err := cfg.Roster()
	if err != nil {
		return nil, err
	}

	players := []engine.Player{}
	for _, p := range roster {
		if p.Computer {
			players = append(players, engine.NewComputerPlayer(p.ID, p.Name, rng))
		} else {
			players = append(players, engine.NewCLIPlayerScanner(p.ID, p.Name, stdin, os.Stdout))
		}
	}

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{
		Players:  players,
		Rand:     rng,
		Logger:   logger,
		Out:      os.Stdout,
		MaxTurns: maxTurns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	return ge, nil
}

func buildTallyText(tallies []store.Tally) string {
	text := "\nSession results:"
	for _, t := range tallies {
		text += fmt.Sprintf("\n  %s: %d wins, %d ties, %d books", t.Name, t.Wins, t.Ties, t.Books)
	}
	return text
}
