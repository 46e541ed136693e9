package types

import (
	"fmt"
	"time"
)

// Run is one execution of a puzzle part against an input file.
type Run struct {
	ID         string    // UUID v7, generated when recorded.
	Year       int       // Season, e.g. 2023.
	Day        int       // 1..25.
	Part       int       // 1 or 2.
	Demo       bool      // True when the demo fixture was used.
	Answer     string    // Printed answer.
	DurationMS int64     // Solver wall time in milliseconds.
	CreatedAt  time.Time // When the run finished.
}

// Validate reports ErrInvalidData when the run does not name a puzzle part.
func (r Run) Validate() error {
	if err := validatePart(r.Year, r.Day, r.Part); err != nil {
		return err
	}
	return nil
}

// RunFilter narrows Ledger.Runs. Zero fields match everything.
type RunFilter struct {
	Year  int
	Day   int
	Part  int
	Limit int
}

// Answer is the accepted answer for the real input of a puzzle part.
type Answer struct {
	Year      int
	Day       int
	Part      int
	Value     string
	UpdatedAt time.Time
}

// Validate reports ErrInvalidData when the answer is empty or does not name
// a puzzle part.
func (a Answer) Validate() error {
	if err := validatePart(a.Year, a.Day, a.Part); err != nil {
		return err
	}
	if a.Value == "" {
		return fmt.Errorf("%w: empty answer", ErrInvalidData)
	}
	return nil
}

func validatePart(year, day, part int) error {
	switch {
	case year <= 0:
		return fmt.Errorf("%w: year %d", ErrInvalidData, year)
	case day < 1 || day > 25:
		return fmt.Errorf("%w: day %d", ErrInvalidData, day)
	case part != 1 && part != 2:
		return fmt.Errorf("%w: part %d", ErrInvalidData, part)
	}
	return nil
}
