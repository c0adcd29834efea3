package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at an empty temp dir so the
// developer's own config files are never picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	for _, key := range []string{EnvMode, EnvGridLength, EnvInitialTiles, EnvTile2Chance, EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeFile(t, filepath.Join(dir, "configs", "slide2048.yaml"), "grid:\n  length: 5\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Length != 5 {
		t.Errorf("local config length = %d, want 5", cfg.Grid.Length)
	}
	if cfg.Grid.InitialTiles != 2 {
		t.Errorf("unset fields should keep defaults, initial tiles = %d", cfg.Grid.InitialTiles)
	}

	writeFile(t, filepath.Join(dir, ".slide2048", "config.yaml"), "grid:\n  length: 6\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Length != 6 {
		t.Errorf("user config should win over local config, length = %d", cfg.Grid.Length)
	}

	custom := filepath.Join(dir, "custom.yaml")
	writeFile(t, custom, "grid:\n  length: 3\nspawn:\n  tile2_chance: 1\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Grid.Length != 3 || cfg.Spawn.Tile2Chance != 1 {
		t.Errorf("Load(custom) = %+v, want length 3 and chance 1", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "grid: [unclosed\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvGridLength, "5")
	t.Setenv(EnvTile2Chance, "0.5")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Length != 5 || cfg.Spawn.Tile2Chance != 0.5 || cfg.Log.Level != "debug" {
		t.Errorf("Load() = %+v, want env overrides applied", cfg)
	}

	t.Setenv(EnvInitialTiles, "many")
	if _, err := Load(""); err == nil {
		t.Error("Load() with a non-numeric override should fail")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), EnvInitialTiles+"=3\n"+EnvGridLength+"=6\n")
	t.Setenv(EnvGridLength, "5")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.InitialTiles != 3 {
		t.Errorf("initial tiles = %d, want 3 from .env", cfg.Grid.InitialTiles)
	}
	if cfg.Grid.Length != 5 {
		t.Errorf("length = %d, want process env to win over .env", cfg.Grid.Length)
	}
}

func TestLoadModeOverridesLength(t *testing.T) {
	isolate(t)
	t.Setenv(EnvMode, "6x6")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Length != 6 {
		t.Errorf("mode 6x6 length = %d, want 6", cfg.Grid.Length)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"smallest grid", func(c *Config) { c.Grid.Length = 2 }, true},
		{"grid too small", func(c *Config) { c.Grid.Length = 1 }, false},
		{"negative initial tiles", func(c *Config) { c.Grid.InitialTiles = -1 }, false},
		{"initial tiles fill grid", func(c *Config) { c.Grid.InitialTiles = 16 }, true},
		{"too many initial tiles", func(c *Config) { c.Grid.InitialTiles = 17 }, false},
		{"chance above one", func(c *Config) { c.Spawn.Tile2Chance = 1.5 }, false},
		{"chance below zero", func(c *Config) { c.Spawn.Tile2Chance = -0.1 }, false},
		{"unknown mode", func(c *Config) { c.Mode = "7x7" }, false},
		{"known mode", func(c *Config) { c.Mode = "5x5" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestModes(t *testing.T) {
	if ModeCount() != 4 {
		t.Errorf("ModeCount() = %d, want 4", ModeCount())
	}

	m, ok := ModeByID("4x4")
	if !ok || m.Length != 4 {
		t.Errorf("ModeByID(4x4) = %+v, %v", m, ok)
	}
	if _, ok := ModeByID("nope"); ok {
		t.Error("ModeByID(nope) should not exist")
	}

	ids := ModeIDs()
	if len(ids) != 4 || ids[0] != "3x3" || ids[3] != "6x6" {
		t.Errorf("ModeIDs() = %v", ids)
	}
}

func TestSetMode(t *testing.T) {
	cfg := Default()
	if err := cfg.SetMode("3x3"); err != nil {
		t.Fatalf("SetMode(3x3) failed: %v", err)
	}
	if cfg.Mode != "3x3" || cfg.Grid.Length != 3 {
		t.Errorf("SetMode(3x3) = %+v", cfg)
	}
	if err := cfg.SetMode("9x9"); !errors.Is(err, ErrInvalid) {
		t.Errorf("SetMode(9x9) = %v, want ErrInvalid", err)
	}
}
