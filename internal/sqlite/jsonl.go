package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Data files in DataDir.
const (
	runsJSONL    = "runs.jsonl"
	answersJSONL = "answers.jsonl"
	databaseFile = "advent.db"
)

// readJSONL returns each non-empty line of path that is valid JSON.
// Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		records = append(records, json.RawMessage(append([]byte(nil), line...)))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL replaces path with records, one per line. The file is written
// to a temporary sibling, synced and renamed into place.
func writeJSONL(path string, records []json.RawMessage) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err = w.Write(rec); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err = w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// marshalAll encodes each value as one JSONL record.
func marshalAll[T any](values []T) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		records = append(records, data)
	}
	return records, nil
}

// initJSONLFiles creates empty data files that do not exist yet.
func initJSONLFiles(dataDir string) error {
	for _, name := range []string{runsJSONL, answersJSONL} {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
	}
	return nil
}
