package maze

import (
	"errors"
	"fmt"
)

var ErrAlreadyCarved = errors.New("grid has already been carved")

// Stats summarises one carving run.
type Stats struct {
	Visited  int `json:"visited"`   // cells incorporated into the tree
	Removed  int `json:"removed"`   // internal walls opened
	Pushes   int `json:"pushes"`    // stack pushes, start cell included
	Pops     int `json:"pops"`      // stack pops
	MaxDepth int `json:"max_depth"` // deepest stack seen
}

// Option configures a Carver.
type Option func(*Carver)

// Carver turns a fully walled grid into a perfect maze by randomized
// depth-first carving.
type Carver struct {
	picker   Picker
	start    Cell
	entrance *Opening
	exit     *Opening
}

// NewCarver returns a Carver. Without options it starts at (0, 0), draws
// from a randomly seeded picker, enters through the south edge of (0, 0)
// and exits through the north edge of (n-1, n-1).
func NewCarver(options ...Option) *Carver {
	c := &Carver{}
	for _, opt := range options {
		opt(c)
	}
	if c.picker == nil {
		c.picker = NewSeededPicker(RandomSeed())
	}
	return c
}

// WithPicker sets the source of random choices.
func WithPicker(p Picker) Option {
	return func(c *Carver) {
		c.picker = p
	}
}

// WithSeed is shorthand for WithPicker(NewSeededPicker(seed)).
func WithSeed(seed int64) Option {
	return func(c *Carver) {
		c.picker = NewSeededPicker(seed)
	}
}

// WithStart sets the cell the depth-first walk starts from.
func WithStart(start Cell) Option {
	return func(c *Carver) {
		c.start = start
	}
}

// WithEntrance overrides the entrance opening.
func WithEntrance(o Opening) Option {
	return func(c *Carver) {
		c.entrance = &o
	}
}

// WithExit overrides the exit opening.
func WithExit(o Opening) Option {
	return func(c *Carver) {
		c.exit = &o
	}
}

// DefaultEntrance is the south edge of the south-west corner.
func DefaultEntrance() Opening {
	return Opening{Cell: Cell{X: 0, Y: 0}, Edge: South}
}

// DefaultExit is the north edge of the north-east corner of an n x n grid.
func DefaultExit(n int) Opening {
	return Opening{Cell: Cell{X: n - 1, Y: n - 1}, Edge: North}
}

// Openings returns the entrance and exit the carver uses on an n x n grid.
func (c *Carver) Openings(n int) (Opening, Opening) {
	entrance, exit := DefaultEntrance(), DefaultExit(n)
	if c.entrance != nil {
		entrance = *c.entrance
	}
	if c.exit != nil {
		exit = *c.exit
	}
	return entrance, exit
}

func (c *Carver) validate(g *Grid) (Opening, Opening, error) {
	if !g.InBound(c.start) {
		return Opening{}, Opening{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, c.start)
	}

	entrance, exit := c.Openings(g.Size())
	if !g.IsBoundary(entrance) {
		return Opening{}, Opening{}, fmt.Errorf("%w: entrance %s is not a boundary edge", ErrInvalidOpening, entrance)
	}
	if !g.IsBoundary(exit) {
		return Opening{}, Opening{}, fmt.Errorf("%w: exit %s is not a boundary edge", ErrInvalidOpening, exit)
	}
	if entrance == exit {
		return Opening{}, Opening{}, fmt.Errorf("%w: entrance and exit are both %s", ErrInvalidOpening, entrance)
	}
	return entrance, exit, nil
}

// Carve carves g in place. g must be fully walled.
func (c *Carver) Carve(g *Grid) (Stats, error) {
	n := g.Size()
	if g.WallCount() != 2*n*(n+1) {
		return Stats{}, ErrAlreadyCarved
	}

	entrance, exit, err := c.validate(g)
	if err != nil {
		return Stats{}, err
	}

	stats := c.carveTree(g)

	mustOpen(g.RemoveBoundaryWall(entrance))
	mustOpen(g.RemoveBoundaryWall(exit))
	return stats, nil
}

// carveTree runs the depth-first walk until the stack drains.
func (c *Carver) carveTree(g *Grid) Stats {
	n := g.Size()
	visited := make([]bool, n*n)
	stack := make([]Cell, 0, n*n)

	visited[c.start.Y*n+c.start.X] = true
	stack = append(stack, c.start)
	stats := Stats{Visited: 1, Pushes: 1, MaxDepth: 1}

	candidates := make([]Cell, 0, 4)
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, nbr := range g.Neighbors(current) {
			if !visited[nbr.Y*n+nbr.X] {
				candidates = append(candidates, nbr)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			stats.Pops++
			continue
		}

		next := candidates[c.picker.Pick(len(candidates))]
		mustOpen(g.RemoveWallBetween(current, next))
		visited[next.Y*n+next.X] = true
		stack = append(stack, next)

		stats.Visited++
		stats.Removed++
		stats.Pushes++
		stats.MaxDepth = max(stats.MaxDepth, len(stack))
	}

	return stats
}

// mustOpen panics on a wall removal the carver itself got wrong.
func mustOpen(err error) {
	if err != nil {
		panic("maze: carver contract violation: " + err.Error())
	}
}

// Generate builds and carves an n x n maze.
func Generate(n int, options ...Option) (*Grid, Stats, error) {
	g, err := NewGrid(n)
	if err != nil {
		return nil, Stats{}, err
	}

	stats, err := NewCarver(options...).Carve(g)
	if err != nil {
		return nil, Stats{}, err
	}
	return g, stats, nil
}
