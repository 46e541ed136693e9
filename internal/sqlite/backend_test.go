package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/advent/pkg/types"
)

func attach(t *testing.T, dir string) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackend_Attach(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	b := attach(t, dir)

	for _, name := range []string{databaseFile, runsJSONL, answersJSONL} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.ErrorIs(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}), types.ErrAlreadyAttached)
}

func TestBackend_AttachInvalidConfig(t *testing.T) {
	b := NewBackend()
	assert.ErrorIs(t, b.Attach(types.Config{DataDir: t.TempDir()}), types.ErrBackendEmpty)
	assert.ErrorIs(t, b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()}), types.ErrBackendUnknown)
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach(), "idempotent")

	_, err := b.RecordRun(types.Run{Year: 2022, Day: 1, Part: 1, Answer: "1"})
	assert.ErrorIs(t, err, types.ErrLedgerDetached)
	_, err = b.Runs(types.RunFilter{})
	assert.ErrorIs(t, err, types.ErrLedgerDetached)
	assert.ErrorIs(t, b.SetAnswer(types.Answer{Year: 2022, Day: 1, Part: 1, Value: "1"}), types.ErrLedgerDetached)
	_, err = b.GetAnswer(2022, 1, 1)
	assert.ErrorIs(t, err, types.ErrLedgerDetached)
}

func TestBackend_RecordRun(t *testing.T) {
	b := attach(t, t.TempDir())

	id, err := b.RecordRun(types.Run{Year: 2023, Day: 7, Part: 2, Demo: true, Answer: "5905", DurationMS: 3})
	require.NoError(t, err)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	runs, err := b.Runs(types.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "5905", runs[0].Answer)
	assert.True(t, runs[0].Demo)
	assert.EqualValues(t, 3, runs[0].DurationMS)
	assert.WithinDuration(t, time.Now(), runs[0].CreatedAt, time.Minute)

	_, err = b.RecordRun(types.Run{Year: 2023, Day: 7, Part: 3})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestBackend_RunsFilter(t *testing.T) {
	b := attach(t, t.TempDir())
	base := time.Date(2023, 12, 1, 6, 0, 0, 0, time.UTC)

	seed := []types.Run{
		{Year: 2022, Day: 1, Part: 1, Answer: "a"},
		{Year: 2022, Day: 1, Part: 2, Answer: "b"},
		{Year: 2023, Day: 1, Part: 1, Answer: "c"},
		{Year: 2023, Day: 2, Part: 1, Answer: "d"},
		{Year: 2023, Day: 2, Part: 1, Answer: "e"},
	}
	for i, r := range seed {
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := b.RecordRun(r)
		require.NoError(t, err)
	}

	answers := func(f types.RunFilter) []string {
		runs, err := b.Runs(f)
		require.NoError(t, err)
		var out []string
		for _, r := range runs {
			out = append(out, r.Answer)
		}
		return out
	}
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, answers(types.RunFilter{}))
	assert.Equal(t, []string{"b", "a"}, answers(types.RunFilter{Year: 2022}))
	assert.Equal(t, []string{"e", "d"}, answers(types.RunFilter{Year: 2023, Day: 2}))
	assert.Equal(t, []string{"b"}, answers(types.RunFilter{Part: 2}))
	assert.Equal(t, []string{"e", "d"}, answers(types.RunFilter{Limit: 2}))
	assert.Empty(t, answers(types.RunFilter{Year: 2021}))
}

func TestBackend_Answers(t *testing.T) {
	b := attach(t, t.TempDir())

	_, err := b.GetAnswer(2023, 6, 1)
	assert.ErrorIs(t, err, types.ErrNotFound)

	require.NoError(t, b.SetAnswer(types.Answer{Year: 2023, Day: 6, Part: 1, Value: "288"}))
	got, err := b.GetAnswer(2023, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, "288", got.Value)
	assert.False(t, got.UpdatedAt.IsZero())

	require.NoError(t, b.SetAnswer(types.Answer{Year: 2023, Day: 6, Part: 1, Value: "300"}))
	got, err = b.GetAnswer(2023, 6, 1)
	require.NoError(t, err)
	assert.Equal(t, "300", got.Value)

	assert.ErrorIs(t, b.SetAnswer(types.Answer{Year: 2023, Day: 6, Part: 1}), types.ErrInvalidData)
	assert.ErrorIs(t, b.SetAnswer(types.Answer{Year: 2023, Day: 26, Part: 1, Value: "x"}), types.ErrInvalidData)
}

func TestBackend_Reattach(t *testing.T) {
	dir := t.TempDir()

	b := NewBackend()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}
	require.NoError(t, b.Attach(cfg))
	id, err := b.RecordRun(types.Run{Year: 2022, Day: 5, Part: 1, Answer: "CMZ"})
	require.NoError(t, err)
	require.NoError(t, b.SetAnswer(types.Answer{Year: 2022, Day: 5, Part: 1, Value: "CMZ"}))
	require.NoError(t, b.Detach())

	b2 := attach(t, dir)
	runs, err := b2.Runs(types.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "CMZ", runs[0].Answer)
	assert.False(t, runs[0].Demo)

	got, err := b2.GetAnswer(2022, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got.Value)
}

func TestBackend_LoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	lines := `{"run_id":"r1","year":2023,"day":9,"part":1,"demo":true,"answer":"114","duration_ms":1,"created_at":"2023-12-09T06:00:00Z"}
not json
{"run_id":"r2","year":2023}
{"run_id":"r4","year":2023,"day":9,"part":1,"demo":false,"answer":"1","duration_ms":0,"created_at":"yesterday"}
{"run_id":"r5","year":2023,"day":9,"part":1,"demo":"yes","answer":"1","duration_ms":0,"created_at":"2023-12-09T06:02:00Z"}
{"run_id":"r6","year":2023,"day":26,"part":1,"demo":false,"answer":"1","duration_ms":0,"created_at":"2023-12-09T06:03:00Z"}

{"run_id":"r3","year":2023,"day":9,"part":2,"demo":false,"answer":"2","duration_ms":0,"created_at":"2023-12-09T06:01:00Z","extra":"ignored"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, runsJSONL), []byte(lines), 0o644))

	b := attach(t, dir)
	runs, err := b.Runs(types.RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "r3", runs[0].ID)
	assert.Equal(t, "r1", runs[1].ID)
	assert.True(t, runs[1].Demo)

	// The ledger stays writable and the rewritten file drops the bad lines.
	_, err = b.RecordRun(types.Run{Year: 2023, Day: 9, Part: 1, Answer: "114"})
	require.NoError(t, err)
	records, err := readJSONL(filepath.Join(dir, runsJSONL))
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestBackend_LoadSkipsMalformedAnswers(t *testing.T) {
	dir := t.TempDir()
	lines := `{"year":2022,"day":5,"part":1,"value":"CMZ","updated_at":"soon"}
{"year":2022,"day":5,"part":2,"value":"MCD","updated_at":"2022-12-05T00:00:00Z"}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, answersJSONL), []byte(lines), 0o644))

	b := attach(t, dir)
	_, err := b.GetAnswer(2022, 5, 1)
	assert.ErrorIs(t, err, types.ErrNotFound)

	ans, err := b.GetAnswer(2022, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, "MCD", ans.Value)

	require.NoError(t, b.SetAnswer(types.Answer{Year: 2022, Day: 5, Part: 1, Value: "CMZ"}))
	ans, err = b.GetAnswer(2022, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", ans.Value)
}

func TestBackend_ConcurrentRecord(t *testing.T) {
	b := attach(t, t.TempDir())

	done := make(chan error)
	for i := 0; i < 8; i++ {
		go func(day int) {
			_, err := b.RecordRun(types.Run{Year: 2023, Day: day, Part: 1, Answer: "x"})
			done <- err
		}(i + 1)
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}

	runs, err := b.Runs(types.RunFilter{})
	require.NoError(t, err)
	assert.Len(t, runs, 8)

	records, err := readJSONL(filepath.Join(b.config.DataDir, runsJSONL))
	require.NoError(t, err)
	assert.Len(t, records, 8)
}
