package grid

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// ErrSnapshotMismatch is returned when a snapshot cannot be restored onto a grid.
var ErrSnapshotMismatch = errors.New("grid: snapshot does not match grid")

// Snapshot is an immutable copy of the grid and score at one point in time.
// It holds tile values and coordinates, not the live tiles.
type Snapshot struct {
	length int
	tiles  []Tile
	free   []Coordinate
	score  int
}

// Snapshot captures the current tiles and free coordinates together with score.
func (g *Grid) Snapshot(score int) Snapshot {
	tiles := g.Tiles()
	for i := range tiles {
		tiles[i].resetTurn()
	}
	return Snapshot{
		length: g.length,
		tiles:  tiles,
		free:   g.FreeCoordinates(),
		score:  score,
	}
}

// Restore replaces the live tiles and free set with copies of the snapshot's.
// Tiles come back with their merged flag cleared.
func (g *Grid) Restore(s Snapshot) error {
	if s.IsZero() || s.length != g.length {
		return fmt.Errorf("%w: snapshot length %d, grid length %d", ErrSnapshotMismatch, s.length, g.length)
	}

	tiles := make(map[Coordinate]*Tile, len(s.tiles))
	for _, t := range s.tiles {
		tile := NewTile(t.value, t.coord)
		tiles[t.coord] = &tile
	}
	free := mapset.New[Coordinate]()
	for _, c := range s.free {
		free.Put(c)
	}

	g.tiles = tiles
	g.free = free
	return nil
}

// IsZero reports whether s is the zero Snapshot.
func (s Snapshot) IsZero() bool {
	return s.length == 0
}

// Length returns the side length of the captured grid.
func (s Snapshot) Length() int {
	return s.length
}

// Score returns the captured score.
func (s Snapshot) Score() int {
	return s.score
}

// Tiles returns a copy of the captured tiles ordered by Y then X.
func (s Snapshot) Tiles() []Tile {
	return slices.Clone(s.tiles)
}

// Free returns a copy of the captured free coordinates ordered by Y then X.
func (s Snapshot) Free() []Coordinate {
	return slices.Clone(s.free)
}
