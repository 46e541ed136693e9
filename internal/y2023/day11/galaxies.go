// Package day11 solves 2023 day 11, "Cosmic Expansion".
package day11

import (
	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/internal/mathx"
)

// Image is the telescope image reduced to its galaxies.
type Image struct {
	Galaxies  []grid.Point
	emptyRows []bool
	emptyCols []bool
}

// Parse reads the image. '#' marks a galaxy.
func Parse(s string) (*Image, error) {
	g, err := grid.Parse(s)
	if err != nil {
		return nil, err
	}
	img := &Image{
		emptyRows: make([]bool, g.Rows()),
		emptyCols: make([]bool, g.Cols()),
	}
	for i := range img.emptyRows {
		img.emptyRows[i] = true
	}
	for i := range img.emptyCols {
		img.emptyCols[i] = true
	}
	for r, row := range g {
		for c, b := range row {
			if b == '#' {
				img.Galaxies = append(img.Galaxies, grid.Point{R: r, C: c})
				img.emptyRows[r] = false
				img.emptyCols[c] = false
			}
		}
	}
	return img, nil
}

// offsets maps each index to its position once every empty line before
// it is widened to factor lines.
func offsets(empty []bool, factor int) []int {
	out := make([]int, len(empty))
	pos := 0
	for i, e := range empty {
		out[i] = pos
		if e {
			pos += factor
		} else {
			pos++
		}
	}
	return out
}

// Expand sums the Manhattan distances between every pair of galaxies
// after each empty row and column grows to factor rows or columns.
func (img *Image) Expand(factor int) int {
	rows := offsets(img.emptyRows, factor)
	cols := offsets(img.emptyCols, factor)
	sum := 0
	for i, a := range img.Galaxies {
		for _, b := range img.Galaxies[i+1:] {
			sum += mathx.Abs(rows[a.R]-rows[b.R]) + mathx.Abs(cols[a.C]-cols[b.C])
		}
	}
	return sum
}

// Part1 doubles the empty space.
func Part1(s string) (int, error) {
	img, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return img.Expand(2), nil
}

// Part2 grows each empty line a million times over.
func Part2(s string) (int, error) {
	img, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return img.Expand(1000000), nil
}
