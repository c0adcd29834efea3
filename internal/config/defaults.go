package config

import (
	_ "embed"
)

//go:embed defaults/slide2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a classic 4x4 board with two
// starting tiles.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Length:       4,
			InitialTiles: 2,
		},
		Spawn: SpawnConfig{
			Tile2Chance: 0.7,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
