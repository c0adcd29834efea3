// slide2048 plays and simulates the 2048 sliding-tile game from the terminal.
//
// Usage:
//
//	slide2048 play              - Play from stdin, one command per line
//	slide2048 simulate          - Replay a move script across seeds
//	slide2048 modes             - List grid size presets
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--config <path>      - Path to a custom config YAML
//	--mode <id>          - Grid size preset (3x3, 4x4, 5x5, 6x6)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/logging"
)

var (
	// Global flags
	flagSeed      int64
	flagConfig    string
	flagMode      string
	flagLogLevel  string
	flagLogFormat string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide2048",
	Short: "slide2048 - the 2048 sliding-tile game",
	Long: `slide2048 runs the 2048 sliding-tile game on N x N boards.

Available commands:
  play      - Play interactively, one command per line
  simulate  - Replay a move script across seeds and rank the runs
  modes     - Show grid size presets

Examples:
  slide2048 play
  slide2048 play --mode 5x5 --seed 42
  slide2048 simulate --moves ULDR --runs 20
  slide2048 modes`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Grid size preset: 3x3, 4x4, 5x5, 6x6")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text, logfmt, json")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(modesCmd)
}

// setup loads the configuration, applies global flags and builds the logger.
// It exits the process on failure.
func setup() (config.Config, *log.Logger) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagMode != "" {
		if err := cfg.SetMode(flagMode); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'slide2048 modes' to see available presets.")
			os.Exit(1)
		}
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Format: flagLogFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	return cfg, logger
}

// resolveSeed returns --seed, or a time-based seed when it is zero, so the
// seed of every recorded run is known.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
