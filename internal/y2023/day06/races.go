// Package day06 solves 2023 day 6, "Wait For It".
package day06

import (
	"math"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Race is a time limit and the distance record to beat.
type Race struct {
	Time, Record int
}

func (r Race) beats(hold int) bool {
	return hold*(r.Time-hold) > r.Record
}

// Ways counts the hold times that travel strictly further than the
// record. The bounds come from the roots of h*(T-h) = D, nudged onto the
// integers that actually win.
func (r Race) Ways() int {
	disc := float64(r.Time*r.Time - 4*r.Record)
	if disc < 0 {
		return 0
	}
	root := math.Sqrt(disc)
	lo := int(math.Floor((float64(r.Time) - root) / 2))
	hi := int(math.Ceil((float64(r.Time) + root) / 2))
	for lo <= r.Time && !r.beats(lo) {
		lo++
	}
	for hi >= 0 && !r.beats(hi) {
		hi--
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

func parse(s string, joined bool) ([]Race, error) {
	lines := input.Lines(s)
	if len(lines) < 2 {
		return nil, input.Malformed("want Time and Distance lines")
	}
	times, err := field(lines[0], "Time:", joined)
	if err != nil {
		return nil, err
	}
	dists, err := field(lines[1], "Distance:", joined)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, input.Malformed("%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: dists[i]}
	}
	return races, nil
}

// field parses one labelled line. With joined set the digits are read as
// a single number, ignoring the spaces between them.
func field(line, label string, joined bool) ([]int, error) {
	rest, ok := strings.CutPrefix(line, label)
	if !ok {
		return nil, input.Malformed("line %q lacks %q", line, label)
	}
	if joined {
		rest = strings.Join(strings.Fields(rest), "")
	}
	return input.Ints(rest)
}

// Part1 multiplies the number of ways to win each race.
func Part1(s string) (int, error) {
	races, err := parse(s, false)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

// Part2 reads the sheet as one long race.
func Part2(s string) (int, error) {
	races, err := parse(s, true)
	if err != nil {
		return 0, err
	}
	if len(races) != 1 {
		return 0, input.Malformed("want one race, got %d", len(races))
	}
	return races[0].Ways(), nil
}
