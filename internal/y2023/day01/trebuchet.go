// Package day01 solves 2023 day 1, "Trebuchet?!".
package day01

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at s[i]. Spelled-out words count
// only when spelled is set.
func digitAt(s string, i int, spelled bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, w := range words {
		if strings.HasPrefix(s[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}

// Calibration joins the first and last digit of line. Spelled words may
// overlap, so "eightwo" ends in 2.
func Calibration(line string, spelled bool) (int, bool) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, false
	}
	return first*10 + last, true
}

func sum(s string, spelled bool) (int, error) {
	total := 0
	for i, line := range input.Lines(s) {
		if line == "" {
			continue
		}
		v, ok := Calibration(line, spelled)
		if !ok {
			return 0, input.Malformed("line %d has no digit: %q", i+1, line)
		}
		total += v
	}
	return total, nil
}

// Part1 sums calibration values using numeric digits only.
func Part1(s string) (int, error) { return sum(s, false) }

// Part2 also counts digits spelled out as words.
func Part2(s string) (int, error) { return sum(s, true) }
