// Package puzzle defines the registry of daily puzzles and the adapters
// that lift typed solvers into the uniform SolveFunc shape.
package puzzle

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// SolveFunc computes one part's answer from the raw puzzle input.
type SolveFunc func(input string) (string, error)

// Puzzle is one day of one season.
type Puzzle struct {
	Year  int
	Day   int
	Title string
	Part1 SolveFunc
	Part2 SolveFunc
}

// Part returns the solver for part 1 or 2.
func (p Puzzle) Part(n int) (SolveFunc, error) {
	var fn SolveFunc
	switch n {
	case 1:
		fn = p.Part1
	case 2:
		fn = p.Part2
	}
	if fn == nil {
		return nil, fmt.Errorf("%w: %d/%02d part %d", types.ErrPartNotFound, p.Year, p.Day, n)
	}
	return fn, nil
}

// Parts lists the part numbers that have a solver.
func (p Puzzle) Parts() []int {
	var parts []int
	if p.Part1 != nil {
		parts = append(parts, 1)
	}
	if p.Part2 != nil {
		parts = append(parts, 2)
	}
	return parts
}

func (p Puzzle) String() string {
	return fmt.Sprintf("%d day %02d: %s", p.Year, p.Day, p.Title)
}

// Int adapts a solver returning an integer.
func Int[T constraints.Integer](fn func(string) (T, error)) SolveFunc {
	return func(input string) (string, error) {
		v, err := fn(input)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}

// Text adapts a solver whose answer is already text.
func Text(fn func(string) (string, error)) SolveFunc {
	return SolveFunc(fn)
}

type key struct {
	year, day int
}

// Registry indexes puzzles by (year, day).
type Registry struct {
	puzzles map[key]Puzzle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[key]Puzzle)}
}

// Register adds p. Duplicate days and days outside 1..25 are rejected.
func (r *Registry) Register(p Puzzle) error {
	if p.Year <= 0 || p.Day < 1 || p.Day > 25 {
		return fmt.Errorf("register %d/%d: %w", p.Year, p.Day, types.ErrInvalidData)
	}
	k := key{p.Year, p.Day}
	if _, ok := r.puzzles[k]; ok {
		return fmt.Errorf("register %d/%02d: already registered", p.Year, p.Day)
	}
	r.puzzles[k] = p
	return nil
}

// MustRegister is Register for static catalogs; it panics on error.
func (r *Registry) MustRegister(ps ...Puzzle) {
	for _, p := range ps {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
}

// Get returns the puzzle for year and day, or ErrPuzzleNotFound.
func (r *Registry) Get(year, day int) (Puzzle, error) {
	p, ok := r.puzzles[key{year, day}]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %d day %d", types.ErrPuzzleNotFound, year, day)
	}
	return p, nil
}

// List returns every puzzle ordered by year then day. A non-zero year
// restricts the list to that season.
func (r *Registry) List(year int) []Puzzle {
	out := make([]Puzzle, 0, len(r.puzzles))
	for k, p := range r.puzzles {
		if year != 0 && k.year != year {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// Years returns the registered seasons in ascending order.
func (r *Registry) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for k := range r.puzzles {
		if !seen[k.year] {
			seen[k.year] = true
			years = append(years, k.year)
		}
	}
	sort.Ints(years)
	return years
}
