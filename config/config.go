// Package config reads gofish settings from the environment and an optional
// HCL table file listing who is playing.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joeshaw/envdecode"

	"github.com/minaorangina/gofish/game"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNoHuman         = errors.New("table needs at least one human player")
	ErrDuplicateName   = errors.New("player names must be unique")
	ErrNoGames         = errors.New("at least one game must be played")
)

// Config holds settings read from GOFISH_* environment variables
type Config struct {
	PlayerName string `env:"GOFISH_PLAYER_NAME,default=You"`
	Opponents  int    `env:"GOFISH_OPPONENTS,default=1"`
	Seed       int64  `env:"GOFISH_SEED"` // 0 means seed from the time
	LogLevel   string `env:"GOFISH_LOG_LEVEL,default=warn"`
	TableFile  string `env:"GOFISH_TABLE"`
	Games      int    `env:"GOFISH_GAMES,default=1"`
}

// TableConfig is the roster from a table file
type TableConfig struct {
	Players []PlayerConfig `hcl:"player,block"`
}

// PlayerConfig is one player block, e.g.
//
//	player "Harry" {
//	  computer = true
//	}
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Computer bool   `hcl:"computer,optional"`
}

func errNoOpponents() error {
	return fmt.Errorf("%w: at least one opponent is required", game.ErrTooFewPlayers)
}

// Default returns the settings used when nothing is set
func Default() *Config {
	return &Config{
		PlayerName: "You",
		Opponents:  1,
		LogLevel:   "warn",
		Games:      1,
	}
}

// FromEnv reads the configuration from the environment
func FromEnv() (*Config, error) {
	cfg := Default()
	if err := envdecode.StrictDecode(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// Level parses LogLevel
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}

// Validate checks the settings that don't depend on a table file
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.TableFile == "" && c.Opponents < 1 {
		return errNoOpponents()
	}
	if c.Games < 1 {
		return ErrNoGames
	}
	return nil
}

// Roster builds the players for a new game: from the table file if one is set,
// otherwise the human player against Opponents computer players.
func (c *Config) Roster() ([]*game.Player, error) {
	if c.TableFile != "" {
		table, err := LoadTable(c.TableFile)
		if err != nil {
			return nil, err
		}
		return table.Roster(), nil
	}

	if c.Opponents < 1 {
		return nil, errNoOpponents()
	}

	players := []*game.Player{game.NewPlayer(c.PlayerName, false)}
	for i := 1; i <= c.Opponents; i++ {
		name := "Computer"
		if c.Opponents > 1 {
			name = fmt.Sprintf("Computer %d", i)
		}
		players = append(players, game.NewPlayer(name, true))
	}

	return players, nil
}

// LoadTable reads a table file
func LoadTable(filename string) (*TableConfig, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read table file: %w", err)
	}
	return ParseTable(src, filename)
}

// ParseTable decodes table file contents. filename is only used in error messages.
func ParseTable(src []byte, filename string) (*TableConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var table TableConfig
	diags = gohcl.DecodeBody(file.Body, nil, &table)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return &table, nil
}

// Validate checks the roster is playable
func (t *TableConfig) Validate() error {
	names := map[string]struct{}{}
	humans := 0
	for _, p := range t.Players {
		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		names[p.Name] = struct{}{}
		if !p.Computer {
			humans++
		}
	}

	if humans == 0 {
		return ErrNoHuman
	}
	if len(t.Players) < 2 {
		return errNoOpponents()
	}

	return nil
}

// Roster turns the table into players with fresh IDs
func (t *TableConfig) Roster() []*game.Player {
	players := []*game.Player{}
	for _, p := range t.Players {
		players = append(players, game.NewPlayer(p.Name, p.Computer))
	}
	return players
}
