// Package geometry converts the walls left standing in a carved maze into
// positioned box solids laid out on a floor centred at the origin.
package geometry

import (
	"fmt"

	"github.com/beka-birhanu/maze-world/maze"
)

// Orientation tells which wall matrix a solid came from.
type Orientation string

const (
	Vertical   Orientation = "V"
	Horizontal Orientation = "H"
)

// Wall is one box solid. Translation and Size are (x, y, z) with y up;
// maze x maps to world x and maze y maps to world z.
type Wall struct {
	Name        string      `json:"name"`
	Orientation Orientation `json:"orientation"`
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Translation [3]float64  `json:"translation"`
	Size        [3]float64  `json:"size"`
	Color       [3]float64  `json:"color"`
}

// FloorSize returns the side length of the floor an n x n maze covers.
func FloorSize(n int, s Style) float64 {
	return float64(n) * s.CellSize
}

// Emit returns one Wall per wall present in g: vertical walls row by row,
// then horizontal walls row by row.
func Emit(g *maze.Grid, s Style) ([]Wall, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	n := g.Size()
	cell := s.CellSize
	offset := -FloorSize(n, s)/2 + cell/2
	elevation := s.WallHeight / 2

	walls := make([]Wall, 0, g.WallCount())
	for y := 0; y < n; y++ {
		for x := 0; x <= n; x++ {
			if !g.VerticalWall(x, y) {
				continue
			}
			walls = append(walls, Wall{
				Name:        fmt.Sprintf("WALL_V_%d_%d", x, y),
				Orientation: Vertical,
				X:           x,
				Y:           y,
				Translation: [3]float64{offset + (float64(x)-0.5)*cell, elevation, offset + float64(y)*cell},
				Size:        [3]float64{s.WallThickness, s.WallHeight, cell},
				Color:       s.Color,
			})
		}
	}

	for y := 0; y <= n; y++ {
		for x := 0; x < n; x++ {
			if !g.HorizontalWall(x, y) {
				continue
			}
			walls = append(walls, Wall{
				Name:        fmt.Sprintf("WALL_H_%d_%d", x, y),
				Orientation: Horizontal,
				X:           x,
				Y:           y,
				Translation: [3]float64{offset + float64(x)*cell, elevation, offset + (float64(y)-0.5)*cell},
				Size:        [3]float64{cell, s.WallHeight, s.WallThickness},
				Color:       s.Color,
			})
		}
	}

	return walls, nil
}
