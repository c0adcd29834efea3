package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvMode         = "SLIDE2048_MODE"
	EnvGridLength   = "SLIDE2048_GRID_LENGTH"
	EnvInitialTiles = "SLIDE2048_INITIAL_TILES"
	EnvTile2Chance  = "SLIDE2048_TILE2_CHANCE"
	EnvLogLevel     = "SLIDE2048_LOG_LEVEL"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.slide2048/config.yaml -> ./configs/slide2048.yaml -> embedded default.
// Values from the process environment, then from ./.env, override the file.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	dotenv, err := readDotEnv(".env")
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg, lookupWith(dotenv)); err != nil {
		return cfg, err
	}

	cfg.applyMode()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile resolves the YAML source following the search order.
func loadFile(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := Default()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", "slide2048.yaml")} {
		if path == "" {
			continue
		}
		cfg := Default()
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide2048", "config.yaml")
}

// readDotEnv parses a .env file without touching the process environment.
// A missing file yields an empty map.
func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return values, nil
}

// lookupWith prefers the process environment over values read from .env.
func lookupWith(dotenv map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// applyEnv overrides cfg with the SLIDE2048_* variables lookup finds.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMode); ok {
		cfg.Mode = v
	}
	if v, ok := lookup(EnvGridLength); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvGridLength, err)
		}
		cfg.Grid.Length = n
	}
	if v, ok := lookup(EnvInitialTiles); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvInitialTiles, err)
		}
		cfg.Grid.InitialTiles = n
	}
	if v, ok := lookup(EnvTile2Chance); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvTile2Chance, err)
		}
		cfg.Spawn.Tile2Chance = f
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	return nil
}
