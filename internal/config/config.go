// Package config provides YAML configuration loading for the 2048 game,
// its front ends and the simulator.
package config

import (
	"errors"
	"fmt"
	"time"
)

// T2048Config contains all configuration for the game and its front ends.
type T2048Config struct {
	Game    GameConfig    `yaml:"game"`
	TUI     TUIConfig     `yaml:"tui"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Sim     SimConfig     `yaml:"sim"`
}

// GameConfig defines the rules of play.
type GameConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles placed on a fresh grid
	CooldownMS      int     `yaml:"cooldown_ms"`      // Input guard after an accepted move
}

// Cooldown returns the input guard window as a duration.
func (g GameConfig) Cooldown() time.Duration {
	return time.Duration(g.CooldownMS) * time.Millisecond
}

// TUIConfig defines terminal front-end parameters.
type TUIConfig struct {
	TickRate int `yaml:"tick_rate"`
	// Palette maps tile values to hex background colours.
	Palette    map[int]string `yaml:"palette"`
	EmptyColor string         `yaml:"empty_color"`
	SuperColor string         `yaml:"super_color"` // Tiles above 2048
}

// ServerConfig defines network front ends.
type ServerConfig struct {
	HTTPAddr           string `yaml:"http_addr"`
	SSHAddr            string `yaml:"ssh_addr"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MaxSessions        int    `yaml:"max_sessions"`
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SimConfig holds simulator defaults.
type SimConfig struct {
	Games   int    `yaml:"games"`
	Workers int    `yaml:"workers"`
	Policy  string `yaml:"policy"`
}

// Validate checks the configuration for values the game cannot run with.
func (c T2048Config) Validate() error {
	var errs []error
	if c.Game.FourProbability < 0 || c.Game.FourProbability > 1 {
		errs = append(errs, fmt.Errorf("game.four_probability %v outside [0,1]", c.Game.FourProbability))
	}
	if c.Game.InitialTiles < 1 || c.Game.InitialTiles > 16 {
		errs = append(errs, fmt.Errorf("game.initial_tiles %d outside [1,16]", c.Game.InitialTiles))
	}
	if c.Game.CooldownMS < 0 {
		errs = append(errs, fmt.Errorf("game.cooldown_ms %d is negative", c.Game.CooldownMS))
	}
	if c.TUI.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tui.tick_rate %d must be positive", c.TUI.TickRate))
	}
	if c.Sim.Workers < 0 || c.Sim.Games < 0 {
		errs = append(errs, errors.New("sim.games and sim.workers must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Difficulty is a named preset that adjusts how often fours spawn.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// FourProbabilityFor returns the spawn-four chance for a preset.
// Unknown presets return ok=false.
func FourProbabilityFor(d Difficulty) (p float64, ok bool) {
	switch d {
	case DifficultyEasy:
		return 0.05, true
	case DifficultyNormal:
		return 0.10, true
	case DifficultyHard:
		return 0.25, true
	default:
		return 0, false
	}
}

// ApplyDifficulty modifies the config based on a preset.
// An empty preset keeps the configured value.
func ApplyDifficulty(cfg *T2048Config, d Difficulty) error {
	if d == "" {
		return nil
	}
	p, ok := FourProbabilityFor(d)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", d)
	}
	cfg.Game.FourProbability = p
	return nil
}
