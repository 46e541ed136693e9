// Package day04 solves 2023 day 4, "Scratchcards".
package day04

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Card lists the winning numbers and the numbers we have.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the numbers we have that are winning numbers.
func (c Card) Matches() int {
	win := make(map[int]bool, len(c.Winning))
	for _, n := range c.Winning {
		win[n] = true
	}
	m := 0
	for _, n := range c.Have {
		if win[n] {
			m++
		}
	}
	return m
}

// Points is 1 for the first match, doubled for each match after it.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard reads "Card 1: 41 48 83 | 83 86 6".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	fields := strings.Fields(head)
	if !ok || len(fields) != 2 || fields[0] != "Card" {
		return Card{}, input.Malformed("card %q", line)
	}
	id, err := input.Atoi(fields[1])
	if err != nil {
		return Card{}, err
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, input.Malformed("card %d has no '|'", id)
	}
	c := Card{ID: id}
	if c.Winning, err = input.Ints(left); err != nil {
		return Card{}, err
	}
	if c.Have, err = input.Ints(right); err != nil {
		return Card{}, err
	}
	return c, nil
}

func cards(s string) ([]Card, error) {
	var out []Card
	for _, line := range input.Lines(s) {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Copies returns how many of each card we end up with when every match
// wins one copy of each following card.
func Copies(cs []Card) []int {
	n := make([]int, len(cs))
	for i := range n {
		n[i] = 1
	}
	for i, c := range cs {
		for j := i + 1; j <= i+c.Matches() && j < len(cs); j++ {
			n[j] += n[i]
		}
	}
	return n
}

// Part1 sums the points of every card.
func Part1(s string) (int, error) {
	cs, err := cards(s)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, c := range cs {
		sum += c.Points()
	}
	return sum, nil
}

// Part2 counts the cards held once every copy is won.
func Part2(s string) (int, error) {
	cs, err := cards(s)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, n := range Copies(cs) {
		total += n
	}
	return total, nil
}
