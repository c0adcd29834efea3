package grid

import "fmt"

// Tile is a numbered tile on the grid.
// The merged flag is set at most once per turn, on the surviving partner
// of a merge, and blocks any further merge into it until the next turn.
type Tile struct {
	value  int
	coord  Coordinate
	merged bool
}

// NewTile creates an unmerged tile with the given value at c.
func NewTile(value int, c Coordinate) Tile {
	return Tile{value: value, coord: c}
}

// Value returns the tile's number.
func (t Tile) Value() int {
	return t.value
}

// Coordinate returns where the tile sits.
func (t Tile) Coordinate() Coordinate {
	return t.coord
}

// MergedThisTurn reports whether the tile already absorbed another tile this turn.
func (t Tile) MergedThisTurn() bool {
	return t.merged
}

// String returns a string representation of the tile.
func (t Tile) String() string {
	return fmt.Sprintf("%d@%s", t.value, t.coord)
}

// Merge doubles the tile's value and marks it merged.
// Returns false without changing anything if it already merged this turn.
func (t *Tile) Merge() bool {
	if t.merged {
		return false
	}
	t.value *= 2
	t.merged = true
	return true
}

// MoveTo relocates the tile.
func (t *Tile) MoveTo(c Coordinate) {
	t.coord = c
}

func (t *Tile) resetTurn() {
	t.merged = false
}

// isPowerOfTwo reports whether v is a power of two no smaller than 2.
func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
