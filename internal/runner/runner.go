// Package runner executes registered puzzles against their input files,
// records each run in the ledger and checks answers against the accepted
// ones.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/internal/puzzle"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// Verdict compares an answer with the accepted one.
type Verdict string

const (
	VerdictUnknown Verdict = "unknown"
	VerdictCorrect Verdict = "correct"
	VerdictWrong   Verdict = "wrong"
)

// Request names one puzzle part.
type Request struct {
	Year int
	Day  int
	Part int
}

func (r Request) String() string {
	return fmt.Sprintf("%d day %02d part %d", r.Year, r.Day, r.Part)
}

// Result is the outcome of one Request.
type Result struct {
	Request
	Title    string
	Answer   string
	Demo     bool
	Duration time.Duration
	RunID    string  // empty without a ledger
	Verdict  Verdict // always unknown for demo runs
	Expected string  // accepted answer when Verdict is wrong
	Err      error   // set only by RunAll
}

// Runner resolves puzzles in Registry and reads their input below
// InputDir. Ledger and Logger are optional.
type Runner struct {
	Registry *puzzle.Registry
	InputDir string
	Demo     bool
	Ledger   types.Ledger
	Logger   *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run solves one part. Unknown puzzles, missing input and malformed input
// are returned as errors wrapping the types sentinels.
func (r *Runner) Run(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	p, err := r.Registry.Get(req.Year, req.Day)
	if err != nil {
		return Result{}, err
	}
	solve, err := p.Part(req.Part)
	if err != nil {
		return Result{}, err
	}

	src := input.Source{Dir: input.PuzzleDir(r.InputDir, req.Year, req.Day), Demo: r.Demo, Part: req.Part}
	text, err := src.Read()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", req, err)
	}

	log := r.logger().With(zap.Int("year", req.Year), zap.Int("day", req.Day), zap.Int("part", req.Part))
	log.Debug("solving", zap.String("input", src.Path()))

	start := time.Now()
	answer, err := solve(text)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", req, err)
	}

	res := Result{
		Request:  req,
		Title:    p.Title,
		Answer:   answer,
		Demo:     r.Demo,
		Duration: elapsed,
		Verdict:  VerdictUnknown,
	}
	log.Debug("solved", zap.String("answer", answer), zap.Duration("elapsed", elapsed))

	if r.Ledger == nil {
		return res, nil
	}
	res.RunID, err = r.Ledger.RecordRun(types.Run{
		Year:       req.Year,
		Day:        req.Day,
		Part:       req.Part,
		Demo:       r.Demo,
		Answer:     answer,
		DurationMS: elapsed.Milliseconds(),
	})
	if err != nil {
		return res, fmt.Errorf("recording run: %w", err)
	}
	if r.Demo {
		return res, nil
	}

	accepted, err := r.Ledger.GetAnswer(req.Year, req.Day, req.Part)
	switch {
	case errors.Is(err, types.ErrNotFound):
	case err != nil:
		return res, fmt.Errorf("looking up answer: %w", err)
	case accepted.Value == answer:
		res.Verdict = VerdictCorrect
	default:
		res.Verdict = VerdictWrong
		res.Expected = accepted.Value
		log.Warn("answer differs from accepted", zap.String("answer", answer), zap.String("accepted", accepted.Value))
	}
	return res, nil
}

// RunDay solves every part of one day in order.
func (r *Runner) RunDay(ctx context.Context, year, day int) ([]Result, error) {
	p, err := r.Registry.Get(year, day)
	if err != nil {
		return nil, err
	}
	var out []Result
	for _, part := range p.Parts() {
		res, err := r.Run(ctx, Request{Year: year, Day: day, Part: part})
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

// RunAll solves every registered part of a season, at most parallelism at
// a time (no limit when parallelism < 1). Results are ordered by day then
// part. A failing part sets its Result.Err and does not stop the others;
// the returned error reports cancellation only.
func (r *Runner) RunAll(ctx context.Context, year, parallelism int) ([]Result, error) {
	var reqs []Request
	for _, p := range r.Registry.List(year) {
		for _, part := range p.Parts() {
			reqs = append(reqs, Request{Year: p.Year, Day: p.Day, Part: part})
		}
	}

	results := make([]Result, len(reqs))
	eg, egCtx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		eg.SetLimit(parallelism)
	}
	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := r.Run(egCtx, req)
			if err != nil {
				r.logger().Debug("run failed", zap.Stringer("request", req), zap.Error(err))
				res.Request = req
				res.Err = err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Failed reports whether any result carries an error.
func Failed(results []Result) bool {
	for _, res := range results {
		if res.Err != nil {
			return true
		}
	}
	return false
}
