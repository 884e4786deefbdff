// Package config loads the table configuration from an HCL file.
//
//	table {
//	  players = 3
//	  seed    = 42
//	}
//
//	logging {
//	  level = "debug"
//	  file  = "blackjack.log"
//	}
//
//	seat "3" {
//	  strategy  = "threshold"
//	  hit_below = 15
//	}
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
)

// Human is the seat strategy for an interactive player
const Human = "human"

const (
	defaultPlayers  = 3
	defaultLogLevel = "info"
	defaultLogFile  = "blackjack.log"
)

// Config represents the complete table configuration
type Config struct {
	Table   *TableSettings `hcl:"table,block"`
	Logging *LogSettings   `hcl:"logging,block"`
	Seats   []SeatConfig   `hcl:"seat,block"`
}

// TableSettings contains round-level settings
type TableSettings struct {
	Players int   `hcl:"players,optional"`
	Seed    int64 `hcl:"seed,optional"` // 0 picks a fresh seed per run
}

// LogSettings controls the diagnostic log
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// SeatConfig assigns a strategy to a player number. Seats without a block
// are played by a human.
type SeatConfig struct {
	Player   string `hcl:"player,label"`
	Strategy string `hcl:"strategy"`
	HitBelow int    `hcl:"hit_below,optional"`
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.Players == 0 {
		c.Table.Players = defaultPlayers
	}

	if c.Logging == nil {
		c.Logging = &LogSettings{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.File == "" {
		c.Logging.File = defaultLogFile
	}

	for i := range c.Seats {
		if c.Seats[i].Strategy == bot.Threshold && c.Seats[i].HitBelow == 0 {
			c.Seats[i].HitBelow = game.DealerStandsOn
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.Players < 1 || c.Table.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between 1 and %d, got %d", game.MaxPlayers, c.Table.Players)
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}

	seen := make(map[int]bool)
	for _, seat := range c.Seats {
		num, err := seat.Num()
		if err != nil {
			return err
		}
		if num <= game.DealerNum || num > game.DealerNum+c.Table.Players {
			return fmt.Errorf("seat %d: player numbers run from %d to %d", num, game.DealerNum+1, game.DealerNum+c.Table.Players)
		}
		if seen[num] {
			return fmt.Errorf("seat %d configured twice", num)
		}
		seen[num] = true

		if seat.Strategy != Human && !bot.IsStrategy(seat.Strategy) {
			return fmt.Errorf("seat %d: invalid strategy %s", num, seat.Strategy)
		}
		if seat.HitBelow < 0 || seat.HitBelow > game.BlackjackTotal {
			return fmt.Errorf("seat %d: hit_below must be between 0 and %d", num, game.BlackjackTotal)
		}
	}

	return nil
}

// Num returns the player number from the seat label
func (s SeatConfig) Num() (int, error) {
	num, err := strconv.Atoi(s.Player)
	if err != nil {
		return 0, fmt.Errorf("seat %q: label must be a player number: %w", s.Player, err)
	}
	return num, nil
}

// SeatFor returns the seat configuration for a player number, falling back to
// a human seat
func (c *Config) SeatFor(num int) SeatConfig {
	for _, seat := range c.Seats {
		if n, err := seat.Num(); err == nil && n == num {
			return seat
		}
	}
	return SeatConfig{Player: strconv.Itoa(num), Strategy: Human}
}
