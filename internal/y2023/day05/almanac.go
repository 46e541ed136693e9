// Package day05 solves 2023 day 5, "If You Give A Seed A Fertilizer".
//
// Part 2 treats the seeds as ranges. Ranges are pushed through each map
// by splitting them at rule boundaries, so no seed is visited one by one.
package day05

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Rule maps [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst, Src, Len int
}

// Map is one "x-to-y map:" section, rules sorted by Src.
type Map struct {
	Name  string
	Rules []Rule
}

// Interval is the half-open range [Lo, Hi).
type Interval struct {
	Lo, Hi int
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	Maps  []Map
}

// Parse reads the seeds line and every map section.
func Parse(s string) (*Almanac, error) {
	blocks := input.Blocks(s)
	if len(blocks) == 0 {
		return nil, input.Malformed("empty almanac")
	}
	head, ok := strings.CutPrefix(blocks[0][0], "seeds:")
	if !ok || len(blocks[0]) != 1 {
		return nil, input.Malformed("seeds line %q", blocks[0][0])
	}
	seeds, err := input.Ints(head)
	if err != nil {
		return nil, err
	}
	a := &Almanac{Seeds: seeds}
	for _, b := range blocks[1:] {
		name, ok := strings.CutSuffix(b[0], " map:")
		if !ok {
			return nil, input.Malformed("map header %q", b[0])
		}
		m := Map{Name: name}
		for _, line := range b[1:] {
			ns, err := input.Ints(line)
			if err != nil {
				return nil, err
			}
			if len(ns) != 3 {
				return nil, input.Malformed("rule %q in %s", line, name)
			}
			m.Rules = append(m.Rules, Rule{Dst: ns[0], Src: ns[1], Len: ns[2]})
		}
		sort.Slice(m.Rules, func(i, j int) bool { return m.Rules[i].Src < m.Rules[j].Src })
		a.Maps = append(a.Maps, m)
	}
	return a, nil
}

// Lookup maps a single value. Values no rule covers map to themselves.
func (m Map) Lookup(v int) int {
	for _, r := range m.Rules {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// Translate maps every interval in in, splitting at rule boundaries.
func (m Map) Translate(in []Interval) []Interval {
	var out []Interval
	for _, iv := range in {
		lo := iv.Lo
		for _, r := range m.Rules {
			if lo >= iv.Hi {
				break
			}
			end := r.Src + r.Len
			if end <= lo {
				continue
			}
			if r.Src >= iv.Hi {
				break
			}
			if lo < r.Src {
				out = append(out, Interval{lo, r.Src})
				lo = r.Src
			}
			hi := min(iv.Hi, end)
			shift := r.Dst - r.Src
			out = append(out, Interval{lo + shift, hi + shift})
			lo = hi
		}
		if lo < iv.Hi {
			out = append(out, Interval{lo, iv.Hi})
		}
	}
	return out
}

// Location follows a seed through every map.
func (a *Almanac) Location(seed int) int {
	for _, m := range a.Maps {
		seed = m.Lookup(seed)
	}
	return seed
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, input.Malformed("odd number of seed values: %d", len(a.Seeds))
	}
	var out []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
	}
	return out, nil
}

// Part1 returns the lowest location of any listed seed.
func Part1(s string) (int, error) {
	a, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if len(a.Seeds) == 0 {
		return 0, input.Malformed("no seeds")
	}
	best := a.Location(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		best = min(best, a.Location(seed))
	}
	return best, nil
}

// Part2 returns the lowest location over every seed range.
func Part2(s string) (int, error) {
	a, err := Parse(s)
	if err != nil {
		return 0, err
	}
	ivs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	for _, m := range a.Maps {
		ivs = m.Translate(ivs)
	}
	if len(ivs) == 0 {
		return 0, input.Malformed("no seeds")
	}
	best := ivs[0].Lo
	for _, iv := range ivs[1:] {
		best = min(best, iv.Lo)
	}
	return best, nil
}
