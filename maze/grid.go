/*
Package maze generates perfect mazes on a square grid.

A Grid stores wall presence in two flat, boundary-inclusive matrices. The
carver removes walls with a randomized depth-first walk so that the open
passages form a spanning tree over the cells, then opens an entrance and an
exit on the outer boundary.

Coordinates follow one convention throughout: X grows east and Y grows north,
so row y=0 touches the south boundary and row y=n the north boundary.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize    = errors.New("maze size must be positive")
	ErrOutOfBounds    = errors.New("cell is out of bounds")
	ErrNotAdjacent    = errors.New("cells are not adjacent")
	ErrNotBoundary    = errors.New("edge is not on the grid boundary")
	ErrInvalidOpening = errors.New("invalid opening")
)

// Grid holds wall state for an n x n maze.
//
// vertical has n+1 entries per row and n rows: entry (x, y) separates cell
// (x-1, y) from (x, y). horizontal has n entries per row and n+1 rows: entry
// (x, y) separates cell (x, y-1) from (x, y). true means the wall is present.
type Grid struct {
	n          int
	vertical   []bool
	horizontal []bool
}

// NewGrid returns a fully walled n x n grid.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	g := &Grid{
		n:          n,
		vertical:   make([]bool, n*(n+1)),
		horizontal: make([]bool, n*(n+1)),
	}
	for i := range g.vertical {
		g.vertical[i] = true
	}
	for i := range g.horizontal {
		g.horizontal[i] = true
	}
	return g, nil
}

// Size returns the number of cells along one side.
func (g *Grid) Size() int {
	return g.n
}

// InBound reports whether c lies inside the grid.
func (g *Grid) InBound(c Cell) bool {
	return c.X >= 0 && c.X < g.n && c.Y >= 0 && c.Y < g.n
}

func (g *Grid) vIndex(x, y int) int {
	return y*(g.n+1) + x
}

func (g *Grid) hIndex(x, y int) int {
	return y*g.n + x
}

// VerticalWall reports whether vertical wall (x, y) is present, x in [0, n], y in [0, n-1].
func (g *Grid) VerticalWall(x, y int) bool {
	return g.vertical[g.vIndex(x, y)]
}

// HorizontalWall reports whether horizontal wall (x, y) is present, x in [0, n-1], y in [0, n].
func (g *Grid) HorizontalWall(x, y int) bool {
	return g.horizontal[g.hIndex(x, y)]
}

// wallOf returns the matrix and offset holding the wall on edge e of cell c.
func (g *Grid) wallOf(c Cell, e Edge) ([]bool, int) {
	switch e {
	case West:
		return g.vertical, g.vIndex(c.X, c.Y)
	case East:
		return g.vertical, g.vIndex(c.X+1, c.Y)
	case South:
		return g.horizontal, g.hIndex(c.X, c.Y)
	case North:
		return g.horizontal, g.hIndex(c.X, c.Y+1)
	}
	return nil, -1
}

// HasWall reports whether edge e of cell c is walled.
func (g *Grid) HasWall(c Cell, e Edge) bool {
	if !g.InBound(c) {
		return true
	}
	walls, idx := g.wallOf(c, e)
	if walls == nil {
		return true
	}
	return walls[idx]
}

// edgeBetween returns the edge of a that faces b.
func edgeBetween(a, b Cell) Edge {
	switch {
	case b.X == a.X-1:
		return West
	case b.X == a.X+1:
		return East
	case b.Y == a.Y-1:
		return South
	default:
		return North
	}
}

// RemoveWallBetween opens the wall shared by two adjacent in-bound cells.
// Any error is a caller bug: the grid is left untouched.
func (g *Grid) RemoveWallBetween(a, b Cell) error {
	if !g.InBound(a) || !g.InBound(b) {
		return fmt.Errorf("%w: %v, %v", ErrOutOfBounds, a, b)
	}
	if !Adjacent(a, b) {
		return fmt.Errorf("%w: %v, %v", ErrNotAdjacent, a, b)
	}

	walls, idx := g.wallOf(a, edgeBetween(a, b))
	walls[idx] = false
	return nil
}

// IsBoundary reports whether edge o.Edge of o.Cell is an exterior wall.
func (g *Grid) IsBoundary(o Opening) bool {
	if !g.InBound(o.Cell) {
		return false
	}
	switch o.Edge {
	case West:
		return o.Cell.X == 0
	case East:
		return o.Cell.X == g.n-1
	case South:
		return o.Cell.Y == 0
	case North:
		return o.Cell.Y == g.n-1
	}
	return false
}

// RemoveBoundaryWall opens an exterior wall.
func (g *Grid) RemoveBoundaryWall(o Opening) error {
	if !g.InBound(o.Cell) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, o.Cell)
	}
	if !g.IsBoundary(o) {
		return fmt.Errorf("%w: %s", ErrNotBoundary, o)
	}

	walls, idx := g.wallOf(o.Cell, o.Edge)
	walls[idx] = false
	return nil
}

// Passable reports whether a and b are adjacent with no wall between them.
func (g *Grid) Passable(a, b Cell) bool {
	if !g.InBound(a) || !g.InBound(b) || !Adjacent(a, b) {
		return false
	}
	return !g.HasWall(a, edgeBetween(a, b))
}

// Neighbors returns the in-bound cells adjacent to c in west, east, south, north order.
func (g *Grid) Neighbors(c Cell) []Cell {
	result := make([]Cell, 0, 4)
	for _, e := range []Edge{West, East, South, North} {
		if nbr := c.Step(e); g.InBound(nbr) {
			result = append(result, nbr)
		}
	}
	return result
}

// WallCount returns the number of walls still present, boundary included.
func (g *Grid) WallCount() int {
	count := 0
	for _, present := range g.vertical {
		if present {
			count++
		}
	}
	for _, present := range g.horizontal {
		if present {
			count++
		}
	}
	return count
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		n:          g.n,
		vertical:   append([]bool(nil), g.vertical...),
		horizontal: append([]bool(nil), g.horizontal...),
	}
}

// Equal reports whether both grids have the same size and wall state.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.n != other.n {
		return false
	}
	for i := range g.vertical {
		if g.vertical[i] != other.vertical[i] {
			return false
		}
	}
	for i := range g.horizontal {
		if g.horizontal[i] != other.horizontal[i] {
			return false
		}
	}
	return true
}
