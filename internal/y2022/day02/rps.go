// Package day02 solves 2022 day 2, "Rock Paper Scissors".
//
// Each line names the opponent's shape (A, B, C) and a second column
// (X, Y, Z). Part 1 reads the second column as our shape; part 2 reads it
// as the outcome the round needs.
package day02

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Shape is a hand shape. Its value is also its score.
type Shape int

const (
	Rock Shape = iota + 1
	Paper
	Scissors
)

// Outcome scores for the round, from our side.
const (
	Lose = 0
	Draw = 3
	Win  = 6
)

// Beats returns the shape that s defeats.
func (s Shape) Beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// LosesTo returns the shape that defeats s.
func (s Shape) LosesTo() Shape {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Score returns our score for playing s against opp.
func (s Shape) Score(opp Shape) int {
	switch {
	case s == opp:
		return int(s) + Draw
	case s.Beats() == opp:
		return int(s) + Win
	default:
		return int(s) + Lose
	}
}

func parseShape(c byte) (Shape, bool) {
	switch c {
	case 'A', 'X', 'a', 'x':
		return Rock, true
	case 'B', 'Y', 'b', 'y':
		return Paper, true
	case 'C', 'Z', 'c', 'z':
		return Scissors, true
	}
	return 0, false
}

type round struct {
	opp    Shape
	second byte
}

func parse(s string) ([]round, error) {
	var rounds []round
	for _, line := range input.Lines(s) {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 1 || len(f[1]) != 1 {
			return nil, input.Malformed("round %q", line)
		}
		opp, ok := parseShape(f[0][0])
		if !ok {
			return nil, input.Malformed("opponent shape %q", f[0])
		}
		if _, ok := parseShape(f[1][0]); !ok {
			return nil, input.Malformed("strategy %q", f[1])
		}
		rounds = append(rounds, round{opp: opp, second: f[1][0]})
	}
	return rounds, nil
}

// Respond picks our shape for the wanted outcome letter: X lose, Y draw,
// Z win.
func Respond(opp Shape, want byte) Shape {
	switch want {
	case 'X', 'x':
		return opp.Beats()
	case 'Z', 'z':
		return opp.LosesTo()
	default:
		return opp
	}
}

func Part1(s string) (int, error) {
	rounds, err := parse(s)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rounds {
		me, _ := parseShape(r.second)
		total += me.Score(r.opp)
	}
	return total, nil
}

func Part2(s string) (int, error) {
	rounds, err := parse(s)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range rounds {
		total += Respond(r.opp, r.second).Score(r.opp)
	}
	return total, nil
}
