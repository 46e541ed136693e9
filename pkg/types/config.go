package types

import (
	"errors"
	"fmt"
)

// Config selects the ledger backend and the directory holding its files.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// BackendSQLite is the only ledger backend.
const BackendSQLite = "sqlite"

// DefaultDataDir is used by WithDefaults when DataDir is empty.
const DefaultDataDir = "."

var (
	ErrBackendEmpty   = errors.New("ledger backend not set")
	ErrBackendUnknown = errors.New("ledger backend not supported")
)

// Validate reports ErrBackendEmpty or ErrBackendUnknown. DataDir is not
// checked; see WithDefaults.
func (c Config) Validate() error {
	switch c.Backend {
	case "":
		return ErrBackendEmpty
	case BackendSQLite:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	}
}

// WithDefaults returns c with an empty DataDir replaced by DefaultDataDir.
func (c Config) WithDefaults() Config {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	return c
}
