package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// Lines splits s into lines, dropping carriage returns and the final
// newline. Interior blank lines are kept.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s on blank lines. Each block is returned as its lines.
func Blocks(s string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Atoi parses a trimmed integer, wrapping failures in ErrMalformedInput.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Malformed("not an integer: %q", s)
	}
	return n, nil
}

// Ints parses every whitespace-separated field of s as an integer.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Malformed builds an error wrapping types.ErrMalformedInput.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", types.ErrMalformedInput, fmt.Sprintf(format, args...))
}
