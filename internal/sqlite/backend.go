// Package sqlite implements the Ledger on SQLite.
//
// JSONL files in the data directory are the source of truth. Attach loads
// them into a fresh database file; every write updates the database and
// then rewrites the affected JSONL file atomically.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/advent/pkg/types"
)

var _ types.Ledger = (*Backend)(nil)

// Backend implements types.Ledger.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend returns a detached backend. Call Attach before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach validates config, creates DataDir, rebuilds the database and loads
// the JSONL files into it. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	config = config.WithDefaults()
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, databaseFile)
	// The database is a cache of the JSONL files.
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	if err := initJSONLFiles(config.DataDir); err != nil {
		db.Close()
		return err
	}
	if err := loadAllJSONL(db, config.DataDir); err != nil {
		db.Close()
		return fmt.Errorf("load JSONL: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. It is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		err := b.db.Close()
		b.db = nil
		return err
	}
	return nil
}

func (b *Backend) path(name string) string {
	return filepath.Join(b.config.DataDir, name)
}
