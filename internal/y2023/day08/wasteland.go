// Package day08 solves 2023 day 8, "Haunted Wasteland".
package day08

import (
	"strings"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/internal/mathx"
)

// Network is the instruction string and the left/right node table.
type Network struct {
	Steps string
	Nodes map[string][2]string
}

// Parse reads "LR" followed by "AAA = (BBB, CCC)" lines.
func Parse(s string) (*Network, error) {
	blocks := input.Blocks(s)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, input.Malformed("want instructions, a blank line, then nodes")
	}
	n := &Network{Steps: strings.TrimSpace(blocks[0][0]), Nodes: make(map[string][2]string)}
	if strings.Trim(n.Steps, "LR") != "" || n.Steps == "" {
		return nil, input.Malformed("instructions %q", n.Steps)
	}
	for _, line := range blocks[1] {
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, input.Malformed("node %q", line)
		}
		rest, ok = strings.CutPrefix(rest, "(")
		if ok {
			rest, ok = strings.CutSuffix(rest, ")")
		}
		left, right, found := strings.Cut(rest, ", ")
		if !ok || !found {
			return nil, input.Malformed("node %q", line)
		}
		n.Nodes[strings.TrimSpace(name)] = [2]string{left, right}
	}
	return n, nil
}

// Walk counts steps from start until done reports true.
func (n *Network) Walk(start string, done func(string) bool) (int, error) {
	cur := start
	for steps := 0; ; steps++ {
		if done(cur) {
			return steps, nil
		}
		next, ok := n.Nodes[cur]
		if !ok {
			return 0, input.Malformed("no node %q", cur)
		}
		if n.Steps[steps%len(n.Steps)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
		if steps > len(n.Nodes)*len(n.Steps) {
			return 0, input.Malformed("%s never arrives", start)
		}
	}
}

// Part1 walks from AAA to ZZZ.
func Part1(s string) (int, error) {
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return n.Walk("AAA", func(node string) bool { return node == "ZZZ" })
}

// Part2 walks every node ending in A at once until all stand on a node
// ending in Z. Each ghost loops with its first arrival time as period, so
// the answer is the LCM of those times.
func Part2(s string) (int, error) {
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	var cycles []int
	for name := range n.Nodes {
		if !strings.HasSuffix(name, "A") {
			continue
		}
		c, err := n.Walk(name, func(node string) bool { return strings.HasSuffix(node, "Z") })
		if err != nil {
			return 0, err
		}
		cycles = append(cycles, c)
	}
	if len(cycles) == 0 {
		return 0, input.Malformed("no start nodes")
	}
	return mathx.LCM(cycles...), nil
}
