package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// SetAnswer creates or replaces the accepted answer for a puzzle part and
// rewrites answers.jsonl.
func (b *Backend) SetAnswer(answer types.Answer) error {
	if err := answer.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrLedgerDetached
	}

	if answer.UpdatedAt.IsZero() {
		answer.UpdatedAt = time.Now()
	}
	_, err := b.db.Exec(
		`INSERT INTO answers (year, day, part, value, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (year, day, part) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		answer.Year, answer.Day, answer.Part, answer.Value, formatTime(answer.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving answer: %w", err)
	}
	if err := b.persistAnswers(); err != nil {
		return fmt.Errorf("persisting %s: %w", answersJSONL, err)
	}
	return nil
}

// GetAnswer returns the accepted answer, or ErrNotFound.
func (b *Backend) GetAnswer(year, day, part int) (types.Answer, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return types.Answer{}, types.ErrLedgerDetached
	}

	rec := answerJSON{Year: year, Day: day, Part: part}
	err := b.db.QueryRow(
		"SELECT value, updated_at FROM answers WHERE year = ? AND day = ? AND part = ?",
		year, day, part,
	).Scan(&rec.Value, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Answer{}, fmt.Errorf("%w: answer for %d day %d part %d", types.ErrNotFound, year, day, part)
	}
	if err != nil {
		return types.Answer{}, fmt.Errorf("getting answer: %w", err)
	}
	return rec.answer()
}

func (b *Backend) persistAnswers() error {
	rows, err := b.db.Query("SELECT year, day, part, value, updated_at FROM answers ORDER BY year, day, part")
	if err != nil {
		return fmt.Errorf("querying answers: %w", err)
	}
	defer rows.Close()

	var recs []answerJSON
	for rows.Next() {
		var rec answerJSON
		if err := rows.Scan(&rec.Year, &rec.Day, &rec.Part, &rec.Value, &rec.UpdatedAt); err != nil {
			return fmt.Errorf("scanning answer: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating answers: %w", err)
	}
	records, err := marshalAll(recs)
	if err != nil {
		return err
	}
	return writeJSONL(b.path(answersJSONL), records)
}
