// Package day04 solves 2022 day 4, "Camp Cleanup".
package day04

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Range is an inclusive section range.
type Range struct {
	Lo, Hi int
}

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && r.Hi >= o.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return !(r.Lo > o.Hi || o.Lo > r.Hi)
}

func parseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, input.Malformed("range %q", s)
	}
	a, err := input.Atoi(lo)
	if err != nil {
		return Range{}, err
	}
	b, err := input.Atoi(hi)
	if err != nil {
		return Range{}, err
	}
	return Range{a, b}, nil
}

// Pairs parses "a-b,c-d" lines.
func Pairs(s string) ([][2]Range, error) {
	var pairs [][2]Range
	for _, line := range input.Lines(s) {
		left, right, ok := strings.Cut(line, ",")
		if !ok {
			return nil, input.Malformed("pair %q", line)
		}
		a, err := parseRange(left)
		if err != nil {
			return nil, err
		}
		b, err := parseRange(right)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]Range{a, b})
	}
	return pairs, nil
}

func count(s string, match func(a, b Range) bool) (int, error) {
	pairs, err := Pairs(s)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range pairs {
		if match(p[0], p[1]) {
			n++
		}
	}
	return n, nil
}

func Part1(s string) (int, error) {
	return count(s, func(a, b Range) bool { return a.Contains(b) || b.Contains(a) })
}

func Part2(s string) (int, error) {
	return count(s, Range.Overlaps)
}
