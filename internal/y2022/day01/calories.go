// Package day01 solves 2022 day 1, "Calorie Counting".
package day01

import (
	"sort"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Totals returns the calories carried by each elf, in input order.
// Elves are separated by blank lines.
func Totals(s string) ([]int, error) {
	var totals []int
	for _, block := range input.Blocks(s) {
		sum := 0
		for _, line := range block {
			n, err := input.Atoi(line)
			if err != nil {
				return nil, err
			}
			sum += n
		}
		totals = append(totals, sum)
	}
	if len(totals) == 0 {
		return nil, input.Malformed("no elves")
	}
	return totals, nil
}

// TopN sums the n largest totals.
func TopN(totals []int, n int) int {
	sorted := append([]int(nil), totals...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if n > len(sorted) {
		n = len(sorted)
	}
	sum := 0
	for _, v := range sorted[:n] {
		sum += v
	}
	return sum
}

func Part1(s string) (int, error) {
	totals, err := Totals(s)
	if err != nil {
		return 0, err
	}
	return TopN(totals, 1), nil
}

func Part2(s string) (int, error) {
	totals, err := Totals(s)
	if err != nil {
		return 0, err
	}
	return TopN(totals, 3), nil
}
