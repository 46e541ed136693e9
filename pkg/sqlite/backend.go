// Package sqlite exposes the SQLite ledger for programs that record puzzle
// runs without going through the advent CLI.
package sqlite

import (
	"github.com/mesh-intelligence/advent/internal/sqlite"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// NewLedger creates a SQLite ledger. It is not attached; call Attach with a
// Config first.
//
// Example:
//
//	ledger := sqlite.NewLedger()
//	err := ledger.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".advent",
//	})
//	defer ledger.Detach()
func NewLedger() types.Ledger {
	return sqlite.NewBackend()
}
