// Package game drives a slide2048 grid turn by turn: it checks for
// available moves, keeps the single undo snapshot, executes the move and
// spawns the follow-up tile.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/grid"
	"github.com/vovakirdan/slide2048/internal/logging"
	"github.com/vovakirdan/slide2048/internal/score"
)

// Game is a single-player 2048 session.
type Game struct {
	cfg    config.Config
	rng    grid.Source
	logger *log.Logger

	grid  *grid.Grid
	score *score.Counter
	undo  *grid.Snapshot // Undo point, nil when there is nothing to undo

	turns    int
	gameOver bool
	merges   []grid.Merge // Merges of the move in progress
}

// TurnResult reports what one turn did.
type TurnResult struct {
	Direction   grid.Direction
	Changed     bool         // Whether any tile moved or merged
	Merges      []grid.Merge // Merges in processing order
	ScoreGained int
	Spawned     *grid.Tile // Tile spawned after the move, if any
	GameOver    bool
}

// New creates a game from cfg and spawns the initial tiles.
// A nil logger discards output.
func New(cfg config.Config, rng grid.Source, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("game: nil random source")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	g := &Game{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		score:  score.NewCounter(),
	}
	g.grid = grid.New(cfg.Grid.Length, rng, grid.WithMergeListener(g.onMerge))
	g.spawnInitial()
	return g, nil
}

func (g *Game) onMerge(m grid.Merge) {
	g.merges = append(g.merges, m)
	g.score.Add(m.Value)
}

// spawnInitial places the configured number of starting tiles.
func (g *Game) spawnInitial() {
	for range g.cfg.Grid.InitialTiles {
		g.spawnTile()
	}
}

// spawnTile spawns a 2 or 4 at a random free coordinate.
// A full grid skips the spawn instead of failing.
func (g *Game) spawnTile() (grid.Tile, bool) {
	if g.grid.FreeCount() == 0 {
		g.logger.Warn("no free coordinate, skipping spawn", "turn", g.turns)
		return grid.Tile{}, false
	}

	value := 2
	if g.rng.Float64() >= g.cfg.Spawn.Tile2Chance {
		value = 4
	}
	return g.grid.Spawn(value), true
}

// Turn processes one directional input.
// Nothing happens when the game is over or dir is None.
func (g *Game) Turn(dir grid.Direction) TurnResult {
	result := TurnResult{Direction: dir, GameOver: g.gameOver}
	if g.gameOver || !dir.Valid() {
		return result
	}

	g.grid.ResetTurnFlags()
	if !g.grid.MovesAvailable() {
		g.gameOver = true
		result.GameOver = true
		g.logger.Info("game over", "score", g.score.Value(), "turns", g.turns)
		return result
	}

	pending := g.grid.Snapshot(g.score.Value())
	before := g.score.Value()
	g.merges = nil

	result.Changed = g.grid.Move(dir)
	result.Merges = g.merges
	result.ScoreGained = g.score.Value() - before
	g.merges = nil

	if result.Changed {
		g.undo = &pending
		g.turns++
		if tile, ok := g.spawnTile(); ok {
			result.Spawned = &tile
		}
	}

	// Flags from this move must not block the game-over probe.
	g.grid.ResetTurnFlags()
	g.gameOver = !g.grid.MovesAvailable()
	result.GameOver = g.gameOver

	g.logger.Debug("turn",
		"dir", dir,
		"changed", result.Changed,
		"merges", len(result.Merges),
		"gained", result.ScoreGained,
		"score", g.score.Value(),
		"free", g.grid.FreeCount(),
	)
	if g.gameOver {
		g.logger.Info("game over", "score", g.score.Value(), "turns", g.turns)
	}
	return result
}

// Undo rolls the grid and score back to before the last changing move.
// Only one level is kept; returns false when there is nothing to undo.
func (g *Game) Undo() bool {
	if g.undo == nil {
		return false
	}

	snap := *g.undo
	if err := g.grid.Restore(snap); err != nil {
		g.logger.Error("undo failed", "err", err)
		return false
	}
	g.score.Set(snap.Score())
	g.undo = nil
	g.turns = max(g.turns-1, 0)
	g.gameOver = !g.grid.MovesAvailable()

	g.logger.Debug("undo", "score", g.score.Value())
	return true
}

// Restart clears the board and score and spawns fresh starting tiles.
func (g *Game) Restart() {
	g.grid.Restart()
	g.score.Reset()
	g.undo = nil
	g.turns = 0
	g.gameOver = false
	g.spawnInitial()

	g.logger.Debug("restart", "length", g.grid.Length())
}

// Do executes a parsed command. Quit is left to the caller.
func (g *Game) Do(cmd Command) TurnResult {
	switch cmd.Kind {
	case CommandMove:
		return g.Turn(cmd.Direction)
	case CommandUndo:
		g.Undo()
	case CommandRestart:
		g.Restart()
	}
	return TurnResult{Direction: grid.None, GameOver: g.gameOver}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Value()
}

// Best returns the best score reached in this session.
func (g *Game) Best() int {
	return g.score.Best()
}

// Turns returns the number of moves that changed the grid.
func (g *Game) Turns() int {
	return g.turns
}

// GameOver reports whether no move is left.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// CanUndo reports whether an undo point exists.
func (g *Game) CanUndo() bool {
	return g.undo != nil
}

// Length returns the grid side length.
func (g *Game) Length() int {
	return g.grid.Length()
}

// Tiles returns copies of the current tiles.
func (g *Game) Tiles() []grid.Tile {
	return g.grid.Tiles()
}

// FreeCoordinates returns the current free coordinates.
func (g *Game) FreeCoordinates() []grid.Coordinate {
	return g.grid.FreeCoordinates()
}

// Rows returns the value matrix, top row first.
func (g *Game) Rows() [][]int {
	return g.grid.Rows()
}

// MaxTile returns the highest tile on the grid.
func (g *Game) MaxTile() int {
	return g.grid.MaxTile()
}
