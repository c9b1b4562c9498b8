package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/uno/consts"
	"gopkg.in/yaml.v3"
)

const (
	defaultPlayers     = 4
	defaultHumanName   = "You"
	defaultBotStrategy = "naive"
	defaultTickMillis  = 300
	defaultLeaderboard = 5
)

// Config is the terminal host's configuration. The table itself only takes
// the seats and a random source.
type Config struct {
	Players     int    `yaml:"players"`
	HumanName   string `yaml:"human_name"`
	BotStrategy string `yaml:"bot_strategy"`
	// Seed of the random source; 0 picks one from the clock.
	Seed        uint64 `yaml:"seed"`
	TickMillis  int    `yaml:"tick_ms"`
	Leaderboard int    `yaml:"leaderboard"`
}

func (c *Config) TickDuration() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Load reads a YAML file and fills unset keys with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Players == 0 {
		cfg.Players = defaultPlayers
	}
	if cfg.HumanName == "" {
		cfg.HumanName = defaultHumanName
	}
	if cfg.BotStrategy == "" {
		cfg.BotStrategy = defaultBotStrategy
	}
	if cfg.TickMillis == 0 {
		cfg.TickMillis = defaultTickMillis
	}
	if cfg.Leaderboard == 0 {
		cfg.Leaderboard = defaultLeaderboard
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Default() *Config {
	return &Config{
		Players:     defaultPlayers,
		HumanName:   defaultHumanName,
		BotStrategy: defaultBotStrategy,
		TickMillis:  defaultTickMillis,
		Leaderboard: defaultLeaderboard,
	}
}

func (c *Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return fmt.Errorf("%w: players must be between %d and %d, got %d", consts.ErrorsPlayersInvalid, consts.MinPlayers, consts.MaxPlayers, c.Players)
	}
	switch c.BotStrategy {
	case "naive", "good":
	default:
		return fmt.Errorf("unknown bot_strategy %q", c.BotStrategy)
	}
	if c.TickMillis < 0 {
		return fmt.Errorf("tick_ms must not be negative, got %d", c.TickMillis)
	}
	return nil
}
