package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/game"
	"github.com/vovakirdan/slide2048/internal/grid"
	"github.com/vovakirdan/slide2048/internal/storage"
)

var (
	flagMoves    string
	flagRuns     int
	flagMaxTurns int
	flagTop      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a move script across seeds",
	Long: `Plays one game per seed, cycling through a move script until the game
is over, the script stops changing the board or --max-turns is reached.
Runs are ranked by score. Seeds are consecutive starting at --seed.

Examples:
  slide2048 simulate
  slide2048 simulate --moves ULDR --runs 50 --seed 1
  slide2048 simulate --mode 3x3 --moves "u r" --top 5`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "URDL", "Move script cycled every game (U, D, L, R)")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagMaxTurns, "max-turns", 5000, "Turn limit per game")
	simulateCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to show")
}

func runSimulate(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	moves, err := game.ParseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagRuns <= 0 || flagMaxTurns <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --runs and --max-turns must be positive")
		os.Exit(1)
	}

	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	base := resolveSeed()
	for i := range flagRuns {
		run, err := simulate(cfg, base+int64(i), moves, flagMaxTurns, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		run.Moves = flagMoves
		if _, err := store.SaveRun(run); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
			os.Exit(1)
		}
	}

	if err := printLeaderboard(os.Stdout, store, flagTop); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate plays one game with the given seed by cycling moves.
// The game is abandoned once a whole cycle leaves the board unchanged.
func simulate(cfg config.Config, seed int64, moves []grid.Direction, maxTurns int, logger *log.Logger) (storage.Run, error) {
	g, err := game.New(cfg, grid.NewSource(seed), logger)
	if err != nil {
		return storage.Run{}, err
	}

	idle := 0
	for i := 0; g.Turns() < maxTurns && !g.GameOver() && idle < len(moves); i++ {
		if g.Turn(moves[i%len(moves)]).Changed {
			idle = 0
		} else {
			idle++
		}
	}

	logger.Debug("simulated", "seed", seed, "score", g.Score(), "turns", g.Turns(), "over", g.GameOver())
	return storage.Run{
		Seed:       seed,
		GridLength: g.Length(),
		Score:      g.Score(),
		MaxTile:    g.MaxTile(),
		Turns:      g.Turns(),
		GameOver:   g.GameOver(),
	}, nil
}

func printLeaderboard(w io.Writer, store *storage.Store, limit int) error {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Top Runs")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-8s  %-6s  %-5s  %s\n", "Rank", "Score", "Tile", "Turns", "Over", "Seed")
	fmt.Fprintf(w, "  %-4s  %-10s  %-8s  %-6s  %-5s  %s\n", "----", "-----", "----", "-----", "----", "----")

	for i, run := range runs {
		over := "no"
		if run.GameOver {
			over = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-10d  %-8d  %-6d  %-5s  %d\n", i+1, run.Score, run.MaxTile, run.Turns, over, run.Seed)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Best: %d  Average: %.1f  Best tile: %d  Total turns: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, stats.BestTile, stats.TotalTurns)
	return nil
}
