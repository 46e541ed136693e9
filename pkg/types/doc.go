// Package types defines the Ledger interface, the run and answer entity
// types, and the standard errors shared by the advent puzzle runner.
//
// Puzzle packages only depend on the input and malformed-input errors;
// the ledger types are used by the runner and the sqlite backend.
package types
