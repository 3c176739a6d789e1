package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/torusmaze/maze"
)

// Config holds session defaults. Every field can be set from a TOML file:
//
//	seed      = 42
//	strategy  = "kruskal"
//	prompt    = true
//	strict    = false
//	log_level = "debug"
type Config struct {
	Seed     int64  `toml:"seed"`
	Strategy string `toml:"strategy"`
	Prompt   bool   `toml:"prompt"`
	Strict   bool   `toml:"strict"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the defaults used when no file is given.
// Seed 0 asks the session for a time-based seed.
func DefaultConfig() Config {
	return Config{
		Strategy: maze.StrategyRejection.String(),
		LogLevel: log.InfoLevel.String(),
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the strategy name and log level.
func (c Config) Validate() error {
	if _, err := maze.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
