package sqlite

import (
	"time"

	"github.com/mesh-intelligence/advent/pkg/types"
)

// timeFormat is fixed width so that stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string { return t.UTC().Format(timeFormat) }

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		// Older or hand-edited files may carry plain RFC 3339.
		return time.Parse(time.RFC3339Nano, s)
	}
	return t, nil
}

// runJSON is one line of runs.jsonl.
type runJSON struct {
	RunID      string `json:"run_id"`
	Year       int    `json:"year"`
	Day        int    `json:"day"`
	Part       int    `json:"part"`
	Demo       bool   `json:"demo"`
	Answer     string `json:"answer"`
	DurationMS int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"`
}

func (r runJSON) run() (types.Run, error) {
	created, err := parseTime(r.CreatedAt)
	if err != nil {
		return types.Run{}, err
	}
	return types.Run{
		ID:         r.RunID,
		Year:       r.Year,
		Day:        r.Day,
		Part:       r.Part,
		Demo:       r.Demo,
		Answer:     r.Answer,
		DurationMS: r.DurationMS,
		CreatedAt:  created,
	}, nil
}

// answerJSON is one line of answers.jsonl.
type answerJSON struct {
	Year      int    `json:"year"`
	Day       int    `json:"day"`
	Part      int    `json:"part"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at"`
}

func (a answerJSON) answer() (types.Answer, error) {
	updated, err := parseTime(a.UpdatedAt)
	if err != nil {
		return types.Answer{}, err
	}
	return types.Answer{
		Year:      a.Year,
		Day:       a.Day,
		Part:      a.Part,
		Value:     a.Value,
		UpdatedAt: updated,
	}, nil
}
