// Package day08 solves 2022 day 8, "Treetop Tree House".
package day08

import (
	"github.com/mesh-intelligence/advent/internal/input"
)

// Grid holds tree heights, row-major.
type Grid [][]int8

// Parse reads a rectangular grid of digits.
func Parse(s string) (Grid, error) {
	lines := input.Lines(s)
	if len(lines) == 0 {
		return nil, input.Malformed("empty grid")
	}
	g := make(Grid, len(lines))
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, input.Malformed("row %d has width %d, want %d", r+1, len(line), len(lines[0]))
		}
		g[r] = make([]int8, len(line))
		for c := 0; c < len(line); c++ {
			if line[c] < '0' || line[c] > '9' {
				return nil, input.Malformed("row %d: %q is not a height", r+1, line[c])
			}
			g[r][c] = int8(line[c] - '0')
		}
	}
	return g, nil
}

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func (g Grid) inside(r, c int) bool {
	return r >= 0 && r < len(g) && c >= 0 && c < len(g[r])
}

// look walks from (r, c) in direction d. It returns the number of trees
// seen and whether the view reached the edge unblocked.
func (g Grid) look(r, c int, d [2]int) (seen int, clear bool) {
	h := g[r][c]
	for r, c = r+d[0], c+d[1]; g.inside(r, c); r, c = r+d[0], c+d[1] {
		seen++
		if g[r][c] >= h {
			return seen, false
		}
	}
	return seen, true
}

// Visible reports whether the tree at (r, c) can be seen from outside the
// grid along a row or column.
func (g Grid) Visible(r, c int) bool {
	for _, d := range directions {
		if _, clear := g.look(r, c, d); clear {
			return true
		}
	}
	return false
}

// ScenicScore multiplies the viewing distances in all four directions.
// Trees on the edge score zero.
func (g Grid) ScenicScore(r, c int) int {
	score := 1
	for _, d := range directions {
		seen, _ := g.look(r, c, d)
		score *= seen
	}
	return score
}

// Part1 counts the trees visible from outside the grid.
func Part1(s string) (int, error) {
	g, err := Parse(s)
	if err != nil {
		return 0, err
	}
	n := 0
	for r := range g {
		for c := range g[r] {
			if g.Visible(r, c) {
				n++
			}
		}
	}
	return n, nil
}

// Part2 returns the highest scenic score in the grid.
func Part2(s string) (int, error) {
	g, err := Parse(s)
	if err != nil {
		return 0, err
	}
	best := 0
	for r := range g {
		for c := range g[r] {
			best = max(best, g.ScenicScore(r, c))
		}
	}
	return best, nil
}
