// Package grid holds the character grids and points shared by the
// map-shaped puzzles.
package grid

import (
	"github.com/mesh-intelligence/advent/internal/input"
)

// Point is a (row, column) position.
type Point struct {
	R, C int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point { return Point{p.R + d.R, p.C + d.C} }

// Directions.
var (
	North = Point{-1, 0}
	South = Point{1, 0}
	West  = Point{0, -1}
	East  = Point{0, 1}
)

// Orthogonal lists the four axis-aligned offsets.
var Orthogonal = []Point{North, South, West, East}

// Adjacent lists all eight neighbouring offsets.
var Adjacent = []Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Bytes is a rectangular grid of characters.
type Bytes [][]byte

// Parse reads a non-empty rectangular grid. Ragged rows are malformed.
func Parse(s string) (Bytes, error) {
	lines := input.Lines(s)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, input.Malformed("empty grid")
	}
	g := make(Bytes, len(lines))
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, input.Malformed("grid row %d has width %d, want %d", i+1, len(line), len(lines[0]))
		}
		g[i] = []byte(line)
	}
	return g, nil
}

// Rows returns the grid height.
func (g Bytes) Rows() int { return len(g) }

// Cols returns the grid width.
func (g Bytes) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Inside reports whether p is on the grid.
func (g Bytes) Inside(p Point) bool {
	return p.R >= 0 && p.R < g.Rows() && p.C >= 0 && p.C < g.Cols()
}

// At returns the byte at p, or 0 off the grid.
func (g Bytes) At(p Point) byte {
	if !g.Inside(p) {
		return 0
	}
	return g[p.R][p.C]
}

// Find returns the first position holding c.
func (g Bytes) Find(c byte) (Point, bool) {
	for r, row := range g {
		for col, b := range row {
			if b == c {
				return Point{r, col}, true
			}
		}
	}
	return Point{}, false
}
