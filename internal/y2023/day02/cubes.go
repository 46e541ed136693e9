// Package day02 solves 2023 day 2, "Cube Conundrum".
package day02

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Set counts cubes of each color.
type Set struct {
	Red, Green, Blue int
}

// Within reports whether every count of s fits in bag.
func (s Set) Within(bag Set) bool {
	return s.Red <= bag.Red && s.Green <= bag.Green && s.Blue <= bag.Blue
}

// Power multiplies the three counts.
func (s Set) Power() int { return s.Red * s.Green * s.Blue }

// Game is one line: an id and the handfuls revealed.
type Game struct {
	ID    int
	Draws []Set
}

// Minimum returns the fewest cubes that make every draw possible.
func (g Game) Minimum() Set {
	var m Set
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// Bag is the load that part 1 checks against.
var Bag = Set{Red: 12, Green: 13, Blue: 14}

// ParseGame reads "Game 3: 8 green, 6 blue; 20 red".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok || !strings.HasPrefix(head, "Game ") {
		return Game{}, input.Malformed("game %q", line)
	}
	id, err := input.Atoi(strings.TrimPrefix(head, "Game "))
	if err != nil {
		return Game{}, err
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		var set Set
		for _, part := range strings.Split(draw, ",") {
			fields := strings.Fields(part)
			if len(fields) != 2 {
				return Game{}, input.Malformed("draw %q in game %d", part, id)
			}
			n, err := input.Atoi(fields[0])
			if err != nil {
				return Game{}, err
			}
			switch fields[1] {
			case "red":
				set.Red += n
			case "green":
				set.Green += n
			case "blue":
				set.Blue += n
			default:
				return Game{}, input.Malformed("color %q in game %d", fields[1], id)
			}
		}
		g.Draws = append(g.Draws, set)
	}
	return g, nil
}

func games(s string) ([]Game, error) {
	var out []Game
	for _, line := range input.Lines(s) {
		if line == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

// Part1 sums the ids of the games possible with Bag.
func Part1(s string) (int, error) {
	gs, err := games(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range gs {
		if g.Minimum().Within(Bag) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of each game's minimum set.
func Part2(s string) (int, error) {
	gs, err := games(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, g := range gs {
		sum += g.Minimum().Power()
	}
	return sum, nil
}
