// Package config provides YAML-based configuration loading for slide2048.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains all configuration for a game.
type Config struct {
	Mode  string      `yaml:"mode"` // Optional preset ID, see Modes
	Grid  GridConfig  `yaml:"grid"`
	Spawn SpawnConfig `yaml:"spawn"`
	Log   LogConfig   `yaml:"log"`
}

// GridConfig defines board parameters.
type GridConfig struct {
	Length       int `yaml:"length"`        // Side length N of the N x N grid
	InitialTiles int `yaml:"initial_tiles"` // Tiles spawned on start and restart
}

// SpawnConfig defines spawn parameters.
type SpawnConfig struct {
	Tile2Chance float64 `yaml:"tile2_chance"` // Probability of spawning 2 instead of 4 (0.0-1.0)
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Mode != "" {
		if _, ok := ModeByID(c.Mode); !ok {
			return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
		}
	}
	if c.Grid.Length < 2 {
		return fmt.Errorf("%w: grid length %d is smaller than 2", ErrInvalid, c.Grid.Length)
	}
	if cells := c.Grid.Length * c.Grid.Length; c.Grid.InitialTiles < 0 || c.Grid.InitialTiles > cells {
		return fmt.Errorf("%w: initial tiles %d not in [0, %d]", ErrInvalid, c.Grid.InitialTiles, cells)
	}
	if c.Spawn.Tile2Chance < 0 || c.Spawn.Tile2Chance > 1 {
		return fmt.Errorf("%w: tile2 chance %v not in [0, 1]", ErrInvalid, c.Spawn.Tile2Chance)
	}
	return nil
}

// SetMode selects a preset and adopts its grid length.
func (c *Config) SetMode(id string) error {
	m, ok := ModeByID(id)
	if !ok {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, id)
	}
	c.Mode = m.ID
	c.Grid.Length = m.Length
	return nil
}

// applyMode copies the preset grid length when a mode is selected.
func (c *Config) applyMode() {
	if m, ok := ModeByID(c.Mode); ok {
		c.Grid.Length = m.Length
	}
}
