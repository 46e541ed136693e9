package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// userErrors are the sentinels caused by bad flags or bad input rather
// than by the machine.
var userErrors = []error{
	types.ErrPuzzleNotFound,
	types.ErrPartNotFound,
	types.ErrInputNotFound,
	types.ErrMalformedInput,
	types.ErrInvalidData,
	types.ErrNotFound,
}

// classify marks err as a system error unless it wraps one of userErrors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return err
		}
	}
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps err to a process exit code. Errors not marked otherwise,
// such as flag parsing failures, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}
