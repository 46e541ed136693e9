// Package day09 solves 2023 day 9, "Mirage Maintenance".
package day09

import (
	"github.com/mesh-intelligence/advent/internal/input"
)

// Differences returns the successive differences of xs.
func Differences(xs []int) []int {
	if len(xs) < 2 {
		return nil
	}
	out := make([]int, len(xs)-1)
	for i := range out {
		out[i] = xs[i+1] - xs[i]
	}
	return out
}

func allZero(xs []int) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

// Extrapolate predicts the value after the sequence and the value before
// it, by differencing down to a row of zeros.
func Extrapolate(xs []int) (next, prev int) {
	var firsts, lasts []int
	for row := xs; len(row) > 0 && !allZero(row); row = Differences(row) {
		firsts = append(firsts, row[0])
		lasts = append(lasts, row[len(row)-1])
	}
	for i := len(firsts) - 1; i >= 0; i-- {
		next += lasts[i]
		prev = firsts[i] - prev
	}
	return next, prev
}

func histories(s string) ([][]int, error) {
	var out [][]int
	for _, line := range input.Lines(s) {
		if line == "" {
			continue
		}
		xs, err := input.Ints(line)
		if err != nil {
			return nil, err
		}
		out = append(out, xs)
	}
	return out, nil
}

// Part1 sums the predicted next values.
func Part1(s string) (int, error) {
	hs, err := histories(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, h := range hs {
		next, _ := Extrapolate(h)
		sum += next
	}
	return sum, nil
}

// Part2 sums the predicted previous values.
func Part2(s string) (int, error) {
	hs, err := histories(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, h := range hs {
		_, prev := Extrapolate(h)
		sum += prev
	}
	return sum, nil
}
