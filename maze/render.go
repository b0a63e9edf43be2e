package maze

import (
	"strings"
)

// String draws the grid as ASCII art with north at the top.
func (g *Grid) String() string {
	var output strings.Builder

	// Walls at row y, drawn as a "+---+" line.
	wallRow := func(y int) {
		output.WriteString("+")
		for x := 0; x < g.n; x++ {
			if g.HorizontalWall(x, y) {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	wallRow(g.n)
	for y := g.n - 1; y >= 0; y-- {
		if g.VerticalWall(0, y) {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for x := 0; x < g.n; x++ {
			output.WriteString("   ")
			if g.VerticalWall(x+1, y) {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")
		wallRow(y)
	}

	return output.String()
}
