// Package day03 solves 2022 day 3, "Rucksack Reorganization".
package day03

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Priority maps a-z to 1..26 and A-Z to 27..52. Other bytes are 0.
func Priority(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27
	}
	return 0
}

// set is a bitmask over the 52 priorities.
type set uint64

func itemSet(s string) (set, error) {
	var m set
	for i := 0; i < len(s); i++ {
		p := Priority(s[i])
		if p == 0 {
			return 0, input.Malformed("item %q", s[i])
		}
		m |= 1 << p
	}
	return m, nil
}

// lowest returns the priority of the single item left in m, or 0.
func (m set) lowest() int {
	for p := 1; p <= 52; p++ {
		if m&(1<<p) != 0 {
			return p
		}
	}
	return 0
}

// Common returns the priority of the item present in every string.
func Common(items ...string) (int, error) {
	all := ^set(0)
	for _, it := range items {
		m, err := itemSet(it)
		if err != nil {
			return 0, err
		}
		all &= m
	}
	p := all.lowest()
	if p == 0 {
		return 0, input.Malformed("no common item in %s", strings.Join(items, ","))
	}
	return p, nil
}

func Part1(s string) (int, error) {
	sum := 0
	for _, line := range input.Lines(s) {
		if len(line)%2 != 0 {
			return 0, input.Malformed("rucksack %q has odd length", line)
		}
		half := len(line) / 2
		p, err := Common(line[:half], line[half:])
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

// Part2 sums the badge priority of each group of three elves.
func Part2(s string) (int, error) {
	lines := input.Lines(s)
	if len(lines)%3 != 0 {
		return 0, input.Malformed("%d rucksacks do not form groups of three", len(lines))
	}
	sum := 0
	for i := 0; i < len(lines); i += 3 {
		p, err := Common(lines[i : i+3]...)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}
