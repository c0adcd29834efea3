// Package grid implements the slide-and-merge engine of a 2048-style puzzle.
// It owns tile placement, executes directional moves, detects when no move
// is left and captures snapshots for undo. The package has no UI or I/O
// dependencies so the rules stay deterministic and easy to test.
package grid

import (
	"fmt"
	"strings"
)

// Coordinate is a cell position on the grid.
// X increases to the right, Y increases upward.
type Coordinate struct {
	X int
	Y int
}

// C is a convenience constructor for Coordinate.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns c minus other.
func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y}
}

// Step returns the coordinate one step away in the given direction.
func (c Coordinate) Step(d Direction) Coordinate {
	return c.Add(d.Vector())
}

// dot projects c onto v.
func (c Coordinate) dot(v Coordinate) int {
	return c.X*v.X + c.Y*v.Y
}

// Direction is a move direction. None is an input sentinel meaning
// "no movement" and never moves a tile.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	None
)

// Directions returns the four real directions in probe order.
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}

// Vector returns the unit displacement for one step in this direction.
// None and unknown values map to the zero vector.
func (d Direction) Vector() Coordinate {
	switch d {
	case Up:
		return Coordinate{X: 0, Y: 1}
	case Down:
		return Coordinate{X: 0, Y: -1}
	case Left:
		return Coordinate{X: -1, Y: 0}
	case Right:
		return Coordinate{X: 1, Y: 0}
	default:
		return Coordinate{}
	}
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// ParseDirection converts a direction name (case-insensitive) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "none", "":
		return None, nil
	default:
		return None, fmt.Errorf("grid: unknown direction %q", s)
	}
}
