package maze

import (
	"fmt"
	"strconv"
	"strings"
)

// Edge names one side of a cell.
type Edge int

const (
	West Edge = iota
	East
	South
	North
)

var edgeNames = map[Edge]string{
	West:  "west",
	East:  "east",
	South: "south",
	North: "north",
}

// String returns the lower case name of the edge.
func (e Edge) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return "edge(" + strconv.Itoa(int(e)) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	if _, ok := edgeNames[e]; !ok {
		return nil, fmt.Errorf("%w: unknown edge %d", ErrInvalidOpening, int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	parsed, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// ParseEdge converts a name such as "north" or "N" to an Edge.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "west":
		return West, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "n", "north":
		return North, nil
	}
	return 0, fmt.Errorf("%w: unknown edge %q", ErrInvalidOpening, s)
}

// Cell is a grid position. X grows east, Y grows north.
type Cell struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Step returns the cell adjacent to c across edge e.
func (c Cell) Step(e Edge) Cell {
	switch e {
	case West:
		return Cell{X: c.X - 1, Y: c.Y}
	case East:
		return Cell{X: c.X + 1, Y: c.Y}
	case South:
		return Cell{X: c.X, Y: c.Y - 1}
	case North:
		return Cell{X: c.X, Y: c.Y + 1}
	}
	return c
}

// Adjacent reports whether a and b differ by exactly one along exactly one axis.
func Adjacent(a, b Cell) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return dx+dy == 1
}

// Opening is an exterior wall of a boundary cell.
type Opening struct {
	Cell Cell `json:"cell" bson:"cell"`
	Edge Edge `json:"edge" bson:"edge"`
}

// String formats the opening as "x,y,edge", the form ParseOpening accepts.
func (o Opening) String() string {
	return fmt.Sprintf("%d,%d,%s", o.Cell.X, o.Cell.Y, o.Edge)
}

// ParseOpening parses "x,y,edge", e.g. "0,0,south".
func ParseOpening(s string) (Opening, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Opening{}, fmt.Errorf("%w: want x,y,edge got %q", ErrInvalidOpening, s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Opening{}, fmt.Errorf("%w: bad x in %q", ErrInvalidOpening, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Opening{}, fmt.Errorf("%w: bad y in %q", ErrInvalidOpening, s)
	}
	edge, err := ParseEdge(parts[2])
	if err != nil {
		return Opening{}, err
	}

	return Opening{Cell: Cell{X: x, Y: y}, Edge: edge}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
