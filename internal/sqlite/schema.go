package sqlite

// Schema DDL. The database is rebuilt from the JSONL files on every Attach,
// so there are no migrations.
const (
	createRuns = `CREATE TABLE runs (
    run_id TEXT PRIMARY KEY,
    year INTEGER NOT NULL,
    day INTEGER NOT NULL,
    part INTEGER NOT NULL,
    demo INTEGER NOT NULL DEFAULT 0,
    answer TEXT NOT NULL,
    duration_ms INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createAnswers = `CREATE TABLE answers (
    year INTEGER NOT NULL,
    day INTEGER NOT NULL,
    part INTEGER NOT NULL,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (year, day, part)
);`
)

// Index DDL for the history queries.
const (
	idxRunsPuzzle  = `CREATE INDEX idx_runs_puzzle ON runs(year, day, part);`
	idxRunsCreated = `CREATE INDEX idx_runs_created ON runs(created_at);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createRuns,
	createAnswers,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxRunsPuzzle,
	idxRunsCreated,
}
