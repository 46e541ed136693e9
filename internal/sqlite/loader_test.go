package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSchema(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), databaseFile))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		_, err := db.Exec(ddl)
		require.NoError(t, err)
	}
	return db
}

func TestLoadAllJSONL(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, initJSONLFiles(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, answersJSONL), []byte(
		`{"year":2023,"day":1,"part":1,"value":"142","updated_at":"2023-12-01T00:00:00Z"}
{"year":2023,"day":1,"part":1,"value":"143","updated_at":"2023-12-02T00:00:00Z"}
{"year":2023,"day":1,"part":2,"updated_at":"2023-12-02T00:00:00Z"}
`), 0o644))

	db := openSchema(t)
	require.NoError(t, loadAllJSONL(db, dir))

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM answers").Scan(&n))
	assert.Equal(t, 1, n, "duplicate key replaced, missing value skipped")

	var value string
	require.NoError(t, db.QueryRow("SELECT value FROM answers WHERE year = 2023 AND day = 1 AND part = 1").Scan(&value))
	assert.Equal(t, "143", value)
}

func TestLoadAllJSONLMissingFile(t *testing.T) {
	db := openSchema(t)
	assert.Error(t, loadAllJSONL(db, t.TempDir()))
}
