package types

import "errors"

// Puzzle errors. Solvers wrap ErrMalformedInput with the offending line;
// the input helper wraps ErrInputNotFound with the path it tried.
var (
	ErrInputNotFound  = errors.New("input file not found")
	ErrMalformedInput = errors.New("malformed input")
	ErrPuzzleNotFound = errors.New("puzzle not found")
	ErrPartNotFound   = errors.New("puzzle part not found")
)
