// Package day10 solves 2023 day 10, "Pipe Maze".
package day10

import (
	"github.com/mesh-intelligence/advent/internal/grid"
	"github.com/mesh-intelligence/advent/internal/input"
)

type dir uint8

const (
	north dir = 1 << iota
	south
	west
	east
)

var (
	step = map[dir]grid.Point{north: grid.North, south: grid.South, west: grid.West, east: grid.East}
	back = map[dir]dir{north: south, south: north, west: east, east: west}
	dirs = []dir{north, south, west, east}
)

// pipes maps each tile to the sides it connects.
var pipes = map[byte]dir{
	'|': north | south,
	'-': west | east,
	'L': north | east,
	'J': north | west,
	'7': south | west,
	'F': south | east,
}

// Loop is the pipe loop through S.
type Loop struct {
	Grid  grid.Bytes
	Start grid.Point
	Pipe  byte // the tile hidden under S
	Tiles map[grid.Point]bool
	Len   int
}

// Trace finds S and follows the loop through it.
func Trace(s string) (*Loop, error) {
	g, err := grid.Parse(s)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find('S')
	if !ok {
		return nil, input.Malformed("no start tile")
	}
	for _, d := range dirs {
		if pipes[g.At(start.Add(step[d]))]&back[d] == 0 {
			continue
		}
		if l, ok := follow(g, start, d); ok {
			return l, nil
		}
	}
	return nil, input.Malformed("no loop through %v", start)
}

// follow walks from start leaving in direction d. It reports false when
// the path breaks before returning to start.
func follow(g grid.Bytes, start grid.Point, d dir) (*Loop, bool) {
	first := d
	tiles := map[grid.Point]bool{start: true}
	p := start
	for n := 1; ; n++ {
		p = p.Add(step[d])
		if p == start {
			var pipe byte
			for b, m := range pipes {
				if m == first|back[d] {
					pipe = b
				}
			}
			return &Loop{Grid: g, Start: start, Pipe: pipe, Tiles: tiles, Len: n}, true
		}
		m := pipes[g.At(p)]
		if m&back[d] == 0 || tiles[p] {
			return nil, false
		}
		tiles[p] = true
		d = m &^ back[d]
	}
}

// Enclosed counts the tiles inside the loop. Scanning each row left to
// right, crossing a loop tile that connects north flips inside and out.
func (l *Loop) Enclosed() int {
	n := 0
	for r, row := range l.Grid {
		inside := false
		for c, b := range row {
			p := grid.Point{R: r, C: c}
			if !l.Tiles[p] {
				if inside {
					n++
				}
				continue
			}
			if p == l.Start {
				b = l.Pipe
			}
			if pipes[b]&north != 0 {
				inside = !inside
			}
		}
	}
	return n
}

// Part1 returns the distance to the point of the loop farthest from S.
func Part1(s string) (int, error) {
	l, err := Trace(s)
	if err != nil {
		return 0, err
	}
	return l.Len / 2, nil
}

// Part2 counts the tiles enclosed by the loop.
func Part2(s string) (int, error) {
	l, err := Trace(s)
	if err != nil {
		return 0, err
	}
	return l.Enclosed(), nil
}
