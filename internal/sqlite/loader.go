package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// jsonlTableMapping maps each data file to its table, its columns and the
// decoder that turns one line into column values.
var jsonlTableMapping = []struct {
	file    string
	table   string
	columns []string
	row     func(json.RawMessage) ([]any, error)
}{
	{runsJSONL, "runs", []string{"run_id", "year", "day", "part", "demo", "answer", "duration_ms", "created_at"}, runRow},
	{answersJSONL, "answers", []string{"year", "day", "part", "value", "updated_at"}, answerRow},
}

// runRow decodes one runs.jsonl line. Timestamps are rewritten in
// timeFormat so created_at orders correctly.
func runRow(line json.RawMessage) ([]any, error) {
	var rec runJSON
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, err
	}
	if rec.RunID == "" {
		return nil, fmt.Errorf("%w: missing run_id", types.ErrInvalidData)
	}
	run, err := rec.run()
	if err != nil {
		return nil, err
	}
	if err := run.Validate(); err != nil {
		return nil, err
	}
	return []any{run.ID, run.Year, run.Day, run.Part, boolInt(run.Demo), run.Answer, run.DurationMS, formatTime(run.CreatedAt)}, nil
}

// answerRow decodes one answers.jsonl line.
func answerRow(line json.RawMessage) ([]any, error) {
	var rec answerJSON
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, err
	}
	ans, err := rec.answer()
	if err != nil {
		return nil, err
	}
	if err := ans.Validate(); err != nil {
		return nil, err
	}
	return []any{ans.Year, ans.Day, ans.Part, ans.Value, formatTime(ans.UpdatedAt)}, nil
}

// loadAllJSONL fills the empty database from the JSONL files in one
// transaction. Lines that do not decode into a valid record, including
// ones with unparseable timestamps, are skipped. Unknown keys are ignored.
func loadAllJSONL(db *sql.DB, dataDir string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, mapping := range jsonlTableMapping {
		records, err := readJSONL(filepath.Join(dataDir, mapping.file))
		if err != nil {
			return err
		}
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(tx, mapping.table, mapping.columns, mapping.row, records); err != nil {
			return fmt.Errorf("loading %s into %s: %w", mapping.file, mapping.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertRecords inserts the records that row accepts into table. A later
// record with the same primary key replaces an earlier one.
func insertRecords(tx *sql.Tx, table string, columns []string, row func(json.RawMessage) ([]any, error), records []json.RawMessage) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		args, err := row(rec)
		if err != nil {
			continue
		}
		if _, err := stmt.Exec(args...); err != nil {
			continue
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
