// Package storage keeps a ledger of finished runs in a private in-memory
// SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing survives the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTime = "2006-01-02 15:04:05"

// Store manages the in-memory run ledger.
type Store struct {
	db *sql.DB
}

// Run is one finished (or abandoned) game.
type Run struct {
	ID         string
	Seed       int64
	GridLength int
	Moves      string // Move script the run was played with, empty for interactive play
	Score      int
	MaxTile    int
	Turns      int
	GameOver   bool
	CreatedAt  time.Time
}

// Stats aggregates every recorded run.
type Stats struct {
	Runs       int
	HighScore  int
	AvgScore   float64
	BestTile   int
	TotalTurns int64
	LastPlayed time.Time
}

// Open creates an empty ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			grid_length INTEGER NOT NULL,
			moves TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			game_over INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC, max_tile DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the ledger.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns its generated ID.
func (s *Store) SaveRun(run Run) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, seed, grid_length, moves, score, max_tile, turns, game_over)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, run.Seed, run.GridLength, run.Moves, run.Score, run.MaxTile, run.Turns, run.GameOver,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best N runs, highest score first.
// Ties go to the bigger tile, then to the earlier run.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, seed, grid_length, moves, score, max_tile, turns, game_over, created_at
		 FROM runs
		 ORDER BY score DESC, max_tile DESC, rowid ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run by its ID. Returns nil if it does not exist.
func (s *Store) RunByID(id string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, grid_length, moves, score, max_tile, turns, game_over, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Stats aggregates all recorded runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_tile), 0), COALESCE(SUM(turns), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.BestTile, &stats.TotalTurns, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var run Run
	var createdAt any
	err := row.Scan(
		&run.ID,
		&run.Seed,
		&run.GridLength,
		&run.Moves,
		&run.Score,
		&run.MaxTile,
		&run.Turns,
		&run.GameOver,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return run, err
	}
	if err != nil {
		return run, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
