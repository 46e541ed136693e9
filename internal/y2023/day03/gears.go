// Package day03 solves 2023 day 3, "Gear Ratios".
package day03

import (
	"github.com/mesh-intelligence/advent/internal/grid"
)

// Number is a run of digits on one row of the schematic.
type Number struct {
	Value    int
	Row      int
	Col, End int // End is exclusive.
}

// Schematic is the parsed engine schematic.
type Schematic struct {
	Grid    grid.Bytes
	Numbers []Number
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != 0 && b != '.' && !isDigit(b) }

// Parse reads the schematic and indexes its numbers.
func Parse(s string) (*Schematic, error) {
	g, err := grid.Parse(s)
	if err != nil {
		return nil, err
	}
	sc := &Schematic{Grid: g}
	for r, row := range g {
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}
			n := Number{Row: r, Col: c}
			for c < len(row) && isDigit(row[c]) {
				n.Value = n.Value*10 + int(row[c]-'0')
				c++
			}
			n.End = c
			sc.Numbers = append(sc.Numbers, n)
		}
	}
	return sc, nil
}

// touches calls fn for every cell bordering n, diagonals included.
func (n Number) touches(fn func(grid.Point)) {
	for r := n.Row - 1; r <= n.Row+1; r++ {
		for c := n.Col - 1; c <= n.End; c++ {
			if r == n.Row && c >= n.Col && c < n.End {
				continue
			}
			fn(grid.Point{R: r, C: c})
		}
	}
}

// PartNumbers returns the numbers adjacent to at least one symbol.
func (sc *Schematic) PartNumbers() []Number {
	var out []Number
	for _, n := range sc.Numbers {
		part := false
		n.touches(func(p grid.Point) {
			if isSymbol(sc.Grid.At(p)) {
				part = true
			}
		})
		if part {
			out = append(out, n)
		}
	}
	return out
}

// GearRatios returns the product of the two numbers next to each '*'
// that touches exactly two numbers.
func (sc *Schematic) GearRatios() []int {
	near := make(map[grid.Point][]int)
	var order []grid.Point
	for _, n := range sc.Numbers {
		n.touches(func(p grid.Point) {
			if sc.Grid.At(p) != '*' {
				return
			}
			if _, ok := near[p]; !ok {
				order = append(order, p)
			}
			near[p] = append(near[p], n.Value)
		})
	}
	var ratios []int
	for _, p := range order {
		if vs := near[p]; len(vs) == 2 {
			ratios = append(ratios, vs[0]*vs[1])
		}
	}
	return ratios
}

// Part1 sums the part numbers.
func Part1(s string) (int, error) {
	sc, err := Parse(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, n := range sc.PartNumbers() {
		sum += n.Value
	}
	return sum, nil
}

// Part2 sums the gear ratios.
func Part2(s string) (int, error) {
	sc, err := Parse(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range sc.GearRatios() {
		sum += r
	}
	return sum, nil
}
