package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/advent/pkg/types"
)

const runColumns = "run_id, year, day, part, demo, answer, duration_ms, created_at"

// RecordRun inserts run and rewrites runs.jsonl. An empty ID is replaced
// by a new UUID v7 and a zero CreatedAt by the current time.
func (b *Backend) RecordRun(run types.Run) (string, error) {
	if err := run.Validate(); err != nil {
		return "", err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return "", types.ErrLedgerDetached
	}

	if run.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("generating UUID v7: %w", err)
		}
		run.ID = id.String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := b.db.Exec(
		"INSERT OR REPLACE INTO runs ("+runColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		run.ID, run.Year, run.Day, run.Part, boolInt(run.Demo), run.Answer, run.DurationMS, formatTime(run.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	if err := b.persistRuns(); err != nil {
		return "", fmt.Errorf("persisting %s: %w", runsJSONL, err)
	}
	return run.ID, nil
}

// Runs returns the runs matching filter, newest first.
func (b *Backend) Runs(filter types.RunFilter) ([]types.Run, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrLedgerDetached
	}

	var where []string
	var args []any
	for _, f := range []struct {
		col string
		val int
	}{{"year", filter.Year}, {"day", filter.Day}, {"part", filter.Part}} {
		if f.val != 0 {
			where = append(where, f.col+" = ?")
			args = append(args, f.val)
		}
	}
	query := "SELECT " + runColumns + " FROM runs"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, run_id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	return b.queryRuns(query, args...)
}

func (b *Backend) queryRuns(query string, args ...any) ([]types.Run, error) {
	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var rec runJSON
		var demo int
		if err := rows.Scan(&rec.RunID, &rec.Year, &rec.Day, &rec.Part, &demo, &rec.Answer, &rec.DurationMS, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Demo = demo != 0
		run, err := rec.run()
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", rec.RunID, err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

// persistRuns rewrites runs.jsonl from the table, oldest first.
// The caller holds b.mu.
func (b *Backend) persistRuns() error {
	runs, err := b.queryRuns("SELECT " + runColumns + " FROM runs ORDER BY created_at, run_id")
	if err != nil {
		return err
	}
	recs := make([]runJSON, len(runs))
	for i, r := range runs {
		recs[i] = runJSON{
			RunID:      r.ID,
			Year:       r.Year,
			Day:        r.Day,
			Part:       r.Part,
			Demo:       r.Demo,
			Answer:     r.Answer,
			DurationMS: r.DurationMS,
			CreatedAt:  formatTime(r.CreatedAt),
		}
	}
	records, err := marshalAll(recs)
	if err != nil {
		return err
	}
	return writeJSONL(b.path(runsJSONL), records)
}
