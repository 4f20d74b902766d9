package config

import (
	"fmt"
	"os"
	"time"

	"techu/game"
	"techu/meta"

	"gopkg.in/yaml.v3"
)

// Config holds all techu configuration.
type Config struct {
	Rules      RulesConfig      `yaml:"rules"`
	Simulation SimulationConfig `yaml:"simulation"`
	Pacing     PacingConfig     `yaml:"pacing"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// RulesConfig selects the capture rule of regular play.
type RulesConfig struct {
	Capture string `yaml:"capture"` // any-color, strict-color
}

// SimulationConfig sizes a batch of automated games.
type SimulationConfig struct {
	Games     int    `yaml:"games"`
	Workers   int    `yaml:"workers"`
	Seed      uint64 `yaml:"seed"` // 0 picks a time based seed
	MaxTurns  int    `yaml:"max_turns"`
	OutputDir string `yaml:"output_dir"` // empty disables CSV records
}

// PacingConfig slows automated opponents down for watching a game.
type PacingConfig struct {
	OpponentDelay time.Duration `yaml:"opponent_delay"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // trace, debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Rules: RulesConfig{Capture: game.AnyColorCapture},
		Simulation: SimulationConfig{
			Games:     meta.GAMES,
			Workers:   meta.WORKERS,
			MaxTurns:  meta.MAX_TURNS,
			OutputDir: meta.OUTPUT_DIR,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Rules.Capture {
	case game.AnyColorCapture, game.StrictColorCapture:
	default:
		return fmt.Errorf("invalid capture rule %q: want %s or %s", c.Rules.Capture, game.AnyColorCapture, game.StrictColorCapture)
	}
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation.games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers <= 0 {
		return fmt.Errorf("simulation.workers must be positive, got %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxTurns <= 0 {
		return fmt.Errorf("simulation.max_turns must be positive, got %d", c.Simulation.MaxTurns)
	}
	if c.Pacing.OpponentDelay < 0 {
		return fmt.Errorf("pacing.opponent_delay must not be negative, got %s", c.Pacing.OpponentDelay)
	}
	return nil
}

// GameRules returns the capture rules selected by the configuration.
func (c *Config) GameRules() game.Rules {
	return game.RulesByName(c.Rules.Capture)
}
