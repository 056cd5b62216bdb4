// Package maze defines the grid maze model: coordinates, wall bitmasks,
// and the immutable Maze produced by Generate.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrInvalidDimensions is returned when a maze smaller than 2×2 is requested.
	ErrInvalidDimensions = errors.New("maze: rows and cols must both be at least 2")

	// ErrBadEndpoint is returned when a custom start or goal lies outside the grid.
	ErrBadEndpoint = errors.New("maze: start or goal outside the grid")
)

// Side is a 4-bit wall mask for a single cell. A set bit means the wall
// on that side exists.
type Side uint8

// Wall bit flags, one per side of a cell.
const (
	North Side = 1 << iota
	East
	South
	West
)

// AllSides is the mask of a fully walled cell.
const AllSides = North | East | South | West

// Coord identifies a cell by (row, column). It is an immutable value type,
// comparable, and safe to use as a map key.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(r,c)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Maze is a perfect maze on a rows×cols grid: the open-cell graph
// (edges = absence of a wall) is a spanning tree, so exactly one simple
// path connects any two cells. A Maze is immutable once built and may be
// shared freely across solvers and renderers.
type Maze struct {
	rows, cols int
	walls      [][]Side
	start      Coord
	goal       Coord
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the entry cell.
func (m *Maze) Start() Coord { return m.start }

// Goal returns the target cell.
func (m *Maze) Goal() Coord { return m.goal }

// InBounds reports whether c lies within the grid.
func (m *Maze) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// HasWall reports whether the wall on side s of cell c exists.
// Pure bit test, no side effects.
func (m *Maze) HasWall(c Coord, s Side) bool {
	return m.walls[c.Row][c.Col]&s != 0
}

// WallMask returns the full 4-bit wall mask of cell c.
func (m *Maze) WallMask(c Coord) Side {
	return m.walls[c.Row][c.Col]
}
