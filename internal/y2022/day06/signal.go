// Package day06 solves 2022 day 6, "Tuning Trouble".
package day06

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Marker returns the number of characters processed when the last n
// characters are first all different. ok is false when no such window
// exists.
func Marker(signal string, n int) (pos int, ok bool) {
	var seen [256]int
	dup := 0
	for i := 0; i < len(signal); i++ {
		c := signal[i]
		if seen[c]++; seen[c] == 2 {
			dup++
		}
		if i >= n {
			old := signal[i-n]
			if seen[old]--; seen[old] == 1 {
				dup--
			}
		}
		if i >= n-1 && dup == 0 {
			return i + 1, true
		}
	}
	return 0, false
}

func find(s string, n int) (int, error) {
	signal := strings.TrimSpace(s)
	pos, ok := Marker(signal, n)
	if !ok {
		return 0, input.Malformed("no window of %d distinct characters", n)
	}
	return pos, nil
}

// Part1 finds the start-of-packet marker.
func Part1(s string) (int, error) { return find(s, 4) }

// Part2 finds the start-of-message marker.
func Part2(s string) (int, error) { return find(s, 14) }
