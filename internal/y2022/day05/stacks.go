// Package day05 solves 2022 day 5, "Supply Stacks".
//
// The input is a drawing of crate stacks, a blank line, and a list of
// crane moves. The answer is the crate on top of each stack, read left to
// right.
package day05

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
)

// Stacks holds crates bottom first.
type Stacks [][]byte

// Move is one crane instruction. From and To are 1-based.
type Move struct {
	N, From, To int
}

// Parse splits the input into the starting stacks and the moves.
func Parse(s string) (Stacks, []Move, error) {
	blocks := input.Blocks(s)
	if len(blocks) != 2 {
		return nil, nil, input.Malformed("want drawing and moves, got %d blocks", len(blocks))
	}
	stacks, err := parseDrawing(blocks[0])
	if err != nil {
		return nil, nil, err
	}
	moves, err := parseMoves(blocks[1], len(stacks))
	if err != nil {
		return nil, nil, err
	}
	return stacks, moves, nil
}

func parseDrawing(lines []string) (Stacks, error) {
	ids := strings.Fields(lines[len(lines)-1])
	if len(ids) == 0 {
		return nil, input.Malformed("missing stack numbers")
	}
	stacks := make(Stacks, len(ids))
	for i := len(lines) - 2; i >= 0; i-- {
		line := lines[i]
		for j := range stacks {
			col := 1 + 4*j
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			stacks[j] = append(stacks[j], line[col])
		}
	}
	return stacks, nil
}

func parseMoves(lines []string, nstacks int) ([]Move, error) {
	moves := make([]Move, 0, len(lines))
	for _, line := range lines {
		var m Move
		if _, err := fmt.Sscanf(line, "move %d from %d to %d", &m.N, &m.From, &m.To); err != nil {
			return nil, input.Malformed("move %q", line)
		}
		if m.From < 1 || m.From > nstacks || m.To < 1 || m.To > nstacks {
			return nil, input.Malformed("move %q names a missing stack", line)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Apply performs m. With keepOrder the crates move as one lifted pile;
// otherwise one at a time, which reverses them.
func (st Stacks) Apply(m Move, keepOrder bool) error {
	from := st[m.From-1]
	if m.N > len(from) {
		return input.Malformed("move %d from stack %d holding %d", m.N, m.From, len(from))
	}
	pile := from[len(from)-m.N:]
	st[m.From-1] = from[:len(from)-m.N]
	moved := make([]byte, len(pile))
	copy(moved, pile)
	if !keepOrder {
		for i, j := 0, len(moved)-1; i < j; i, j = i+1, j-1 {
			moved[i], moved[j] = moved[j], moved[i]
		}
	}
	st[m.To-1] = append(st[m.To-1], moved...)
	return nil
}

// Tops reads the top crate of each stack. Empty stacks read as a space.
func (st Stacks) Tops() string {
	var b strings.Builder
	for _, s := range st {
		if len(s) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(s[len(s)-1])
	}
	return b.String()
}

func run(s string, keepOrder bool) (string, error) {
	stacks, moves, err := Parse(s)
	if err != nil {
		return "", err
	}
	for _, m := range moves {
		if err := stacks.Apply(m, keepOrder); err != nil {
			return "", err
		}
	}
	return stacks.Tops(), nil
}

// Part1 uses the CrateMover 9000, which lifts one crate at a time.
func Part1(s string) (string, error) { return run(s, false) }

// Part2 uses the CrateMover 9001, which lifts several crates at once.
func Part2(s string) (string, error) { return run(s, true) }
