package types

import "errors"

// Ledger records puzzle runs and the accepted answer for each puzzle part.
// Callers attach to a backend, record and query, and detach when done.
type Ledger interface {
	// Attach connects the Ledger to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, every other operation returns ErrLedgerDetached.
	Detach() error

	// RecordRun stores a run. When run.ID is empty a new UUID v7 is
	// generated. Returns the ID used.
	RecordRun(run Run) (string, error)

	// Runs returns the recorded runs matching filter, newest first.
	Runs(filter RunFilter) ([]Run, error)

	// SetAnswer creates or replaces the accepted answer for a puzzle part.
	SetAnswer(answer Answer) error

	// GetAnswer returns the accepted answer for a puzzle part.
	// Returns ErrNotFound if none has been stored.
	GetAnswer(year, day, part int) (Answer, error)
}

// Ledger lifecycle and lookup errors.
var (
	ErrLedgerDetached  = errors.New("ledger is detached")
	ErrAlreadyAttached = errors.New("ledger is already attached")
	ErrNotFound        = errors.New("entry not found")
	ErrInvalidData     = errors.New("invalid entry data")
)
