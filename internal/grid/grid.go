package grid

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrNoFreeCoordinate is the panic value cause when Spawn is called on a full grid.
	ErrNoFreeCoordinate = errors.New("grid: no free coordinate")

	// ErrInvalidPlacement is returned by Place for out-of-range, occupied or
	// malformed placements.
	ErrInvalidPlacement = errors.New("grid: invalid placement")
)

// Merge describes one merge performed by Move.
type Merge struct {
	Into  Coordinate // Surviving tile
	From  Coordinate // Former position of the absorbed tile
	Value int        // New value of the surviving tile, also the score delta
}

// Option configures a Grid.
type Option func(*Grid)

// WithMergeListener registers fn to be called for every merge Move performs.
func WithMergeListener(fn func(Merge)) Option {
	return func(g *Grid) {
		g.onMerge = fn
	}
}

// Grid owns every tile and the set of free coordinates.
// Occupied and free coordinates are disjoint and together cover the
// whole length x length board.
type Grid struct {
	length  int
	tiles   map[Coordinate]*Tile
	free    mapset.Set[Coordinate]
	rng     Source
	onMerge func(Merge)
}

// New creates an empty grid of the given side length.
// Panics if length < 2 or rng is nil.
func New(length int, rng Source, opts ...Option) *Grid {
	if length < 2 {
		panic(fmt.Sprintf("grid: length %d is smaller than 2", length))
	}
	if rng == nil {
		panic("grid: nil random source")
	}

	g := &Grid{
		length: length,
		tiles:  make(map[Coordinate]*Tile, length*length),
		rng:    rng,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Restart()
	return g
}

// Length returns the side length of the grid.
func (g *Grid) Length() int {
	return g.length
}

// InBounds returns true if the coordinate lies on the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.length && c.Y >= 0 && c.Y < g.length
}

// Restart discards all tiles and frees every coordinate.
func (g *Grid) Restart() {
	clear(g.tiles)
	g.free = mapset.New[Coordinate]()
	for y := range g.length {
		for x := range g.length {
			g.free.Put(C(x, y))
		}
	}
}

// ResetTurnFlags clears the merged flag of every tile.
// Call it once before processing a player move.
func (g *Grid) ResetTurnFlags() {
	for _, t := range g.tiles {
		t.resetTurn()
	}
}

// Move slides every tile in the given direction, merging equal neighbours.
// Returns true if any tile changed position or merged. None is a no-op.
func (g *Grid) Move(dir Direction) bool {
	return g.displace(dir, true)
}

// MovesAvailable reports whether any direction would change the grid.
// It runs the same displacement pass as Move with mutation suppressed.
func (g *Grid) MovesAvailable() bool {
	for _, dir := range Directions() {
		if g.displace(dir, false) {
			return true
		}
	}
	return false
}

// displace runs one move pass. With commit false nothing is mutated and the
// pass stops at the first tile that would change; the tiles processed
// before it stayed put, so the answer matches a committed pass exactly.
func (g *Grid) displace(dir Direction, commit bool) bool {
	if !dir.Valid() {
		return false
	}

	changed := false
	for _, t := range g.sortedTiles(dir) {
		if !g.displaceTile(t, dir, commit) {
			continue
		}
		if !commit {
			return true
		}
		changed = true
	}
	return changed
}

// sortedTiles orders tiles so the ones nearest the destination wall come first.
func (g *Grid) sortedTiles(dir Direction) []*Tile {
	vec := dir.Vector()
	sorted := make([]*Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		sorted = append(sorted, t)
	}
	slices.SortFunc(sorted, func(a, b *Tile) int {
		if c := cmp.Compare(b.coord.dot(vec), a.coord.dot(vec)); c != 0 {
			return c
		}
		if c := cmp.Compare(a.coord.Y, b.coord.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.coord.X, b.coord.X)
	})
	return sorted
}

// displaceTile walks t towards the wall until it hits the edge or another tile.
func (g *Grid) displaceTile(t *Tile, dir Direction, commit bool) bool {
	vec := dir.Vector()
	start := t.coord
	dest := start

	for next := start.Add(vec); g.InBounds(next); next = next.Add(vec) {
		other, occupied := g.tiles[next]
		if !occupied {
			dest = next
			continue
		}
		if canMerge(t, other) {
			if commit {
				g.merge(other, t)
			}
			return true
		}
		break // acts as a wall
	}

	if dest == start {
		return false
	}
	if commit {
		g.relocate(t, dest)
	}
	return true
}

// canMerge reports whether moving may be absorbed into stationary.
func canMerge(moving, stationary *Tile) bool {
	return moving.value == stationary.value && !stationary.merged
}

// merge absorbs removed into survivor and frees removed's coordinate.
func (g *Grid) merge(survivor, removed *Tile) {
	if !survivor.Merge() {
		panic(fmt.Sprintf("grid: tile %s merged twice in one turn", survivor))
	}
	g.take(removed.coord)
	if g.onMerge != nil {
		g.onMerge(Merge{Into: survivor.coord, From: removed.coord, Value: survivor.value})
	}
}

// relocate moves t to dest, keeping the occupied and free sets in sync.
func (g *Grid) relocate(t *Tile, dest Coordinate) {
	g.take(t.coord)
	t.MoveTo(dest)
	g.put(t)
}

// put places t at its coordinate. The coordinate must be free.
func (g *Grid) put(t *Tile) {
	if !g.free.Has(t.coord) {
		panic(fmt.Sprintf("grid: coordinate %s is not free", t.coord))
	}
	g.free.Remove(t.coord)
	g.tiles[t.coord] = t
}

// take removes the tile at c and frees the coordinate.
func (g *Grid) take(c Coordinate) {
	if _, ok := g.tiles[c]; !ok {
		panic(fmt.Sprintf("grid: no tile at %s", c))
	}
	delete(g.tiles, c)
	g.free.Put(c)
}

// Spawn places a new tile with the given value at a uniformly random free
// coordinate and returns it.
// Panics if the grid is full or the value is not a power of two; callers
// must check FreeCount first.
func (g *Grid) Spawn(value int) Tile {
	if !isPowerOfTwo(value) {
		panic(fmt.Sprintf("grid: spawn value %d is not a power of two", value))
	}
	free := g.FreeCoordinates()
	if len(free) == 0 {
		panic(fmt.Errorf("grid: spawn %d: %w", value, ErrNoFreeCoordinate))
	}

	t := NewTile(value, free[g.rng.Intn(len(free))])
	g.put(&t)
	return t
}

// Place puts a tile with the given value at c.
func (g *Grid) Place(c Coordinate, value int) error {
	switch {
	case !g.InBounds(c):
		return fmt.Errorf("%w: %s is outside a %dx%d grid", ErrInvalidPlacement, c, g.length, g.length)
	case !isPowerOfTwo(value):
		return fmt.Errorf("%w: value %d is not a power of two", ErrInvalidPlacement, value)
	case !g.free.Has(c):
		return fmt.Errorf("%w: %s is occupied", ErrInvalidPlacement, c)
	}

	t := NewTile(value, c)
	g.put(&t)
	return nil
}

// Tiles returns copies of all tiles ordered by Y then X.
func (g *Grid) Tiles() []Tile {
	tiles := make([]Tile, 0, len(g.tiles))
	for _, t := range g.tiles {
		tiles = append(tiles, *t)
	}
	slices.SortFunc(tiles, func(a, b Tile) int {
		return compareCoordinates(a.coord, b.coord)
	})
	return tiles
}

// TileAt returns a copy of the tile at c, if any.
func (g *Grid) TileAt(c Coordinate) (Tile, bool) {
	t, ok := g.tiles[c]
	if !ok {
		return Tile{}, false
	}
	return *t, true
}

// FreeCoordinates returns the free coordinates ordered by Y then X.
func (g *Grid) FreeCoordinates() []Coordinate {
	free := make([]Coordinate, 0, g.free.Size())
	g.free.Each(func(c Coordinate) {
		free = append(free, c)
	})
	slices.SortFunc(free, compareCoordinates)
	return free
}

// FreeCount returns the number of free coordinates.
func (g *Grid) FreeCount() int {
	return g.free.Size()
}

// MaxTile returns the highest tile value, or 0 for an empty grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, t := range g.tiles {
		maxVal = max(maxVal, t.value)
	}
	return maxVal
}

// Rows returns the tile values as a matrix, top row first. Empty cells are 0.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.length)
	for i := range rows {
		y := g.length - 1 - i
		rows[i] = make([]int, g.length)
		for x := range g.length {
			if t, ok := g.tiles[C(x, y)]; ok {
				rows[i][x] = t.value
			}
		}
	}
	return rows
}

func compareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
