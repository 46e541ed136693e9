package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/advent/internal/runner"
)

type runFlags struct {
	year, day, part int
	all             bool
	parallel        int
	noRecord        bool
}

type resultJSON struct {
	Year       int    `json:"year"`
	Day        int    `json:"day"`
	Part       int    `json:"part"`
	Title      string `json:"title,omitempty"`
	Answer     string `json:"answer,omitempty"`
	Demo       bool   `json:"demo"`
	DurationMS int64  `json:"duration_ms"`
	RunID      string `json:"run_id,omitempty"`
	Verdict    string `json:"verdict,omitempty"`
	Expected   string `json:"expected,omitempty"`
	Error      string `json:"error,omitempty"`
}

func toResultJSON(res runner.Result) resultJSON {
	out := resultJSON{
		Year:       res.Year,
		Day:        res.Day,
		Part:       res.Part,
		Title:      res.Title,
		Answer:     res.Answer,
		Demo:       res.Demo,
		DurationMS: res.Duration.Milliseconds(),
		RunID:      res.RunID,
		Verdict:    string(res.Verdict),
		Expected:   res.Expected,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a puzzle and print its answers",
		Long: `run solves one day (both parts unless --part is given) and prints one
answer per line. With --all it solves every day of the season concurrently.

Answers are checked against the accepted answers stored with
"advent answer set"; a mismatch is reported on stderr.`,
		Example: `  advent run --year 2022 --day 5
  advent run --year 2023 --day 7 --part 2 --demo
  advent run --year 2023 --all --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRun(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&f.year, "year", 0, "season (required)")
	fl.IntVar(&f.day, "day", 0, "day of the season (required unless --all)")
	fl.IntVar(&f.part, "part", 0, "part 1 or 2 (default: both)")
	fl.BoolVar(&f.all, "all", false, "run every day of the season")
	fl.IntVar(&f.parallel, "parallel", 0, "puzzles solved at once with --all (default: config parallelism)")
	fl.BoolVar(&f.noRecord, "no-record", false, "do not record runs in the ledger")
	_ = cmd.MarkFlagRequired("year")
	cmd.MarkFlagsMutuallyExclusive("day", "all")
	cmd.MarkFlagsOneRequired("day", "all")
	return cmd
}

func (a *app) runRun(cmd *cobra.Command, f runFlags) error {
	inputDir, err := a.inputDir()
	if err != nil {
		return sysError("resolve input dir: %w", err)
	}
	r := &runner.Runner{
		Registry: a.registry,
		InputDir: inputDir,
		Demo:     a.demo(),
		Logger:   a.logger,
	}
	if !f.noRecord {
		ledger, err := a.attachLedger()
		if err != nil {
			return err
		}
		defer ledger.Detach()
		r.Ledger = ledger
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var results []runner.Result
	switch {
	case f.all:
		parallel := f.parallel
		if parallel == 0 {
			parallel = a.config.GetInt(cfgKeyParallelism)
		}
		results, err = r.RunAll(ctx, f.year, parallel)
	case f.part != 0:
		var res runner.Result
		res, err = r.Run(ctx, runner.Request{Year: f.year, Day: f.day, Part: f.part})
		if err == nil {
			results = append(results, res)
		}
	default:
		results, err = r.RunDay(ctx, f.year, f.day)
	}

	if a.flags.jsonMode {
		out := make([]resultJSON, 0, len(results))
		for _, res := range results {
			out = append(out, toResultJSON(res))
		}
		if perr := printJSON(cmd.OutOrStdout(), out); perr != nil {
			return sysError("write output: %w", perr)
		}
	} else {
		printResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, f.all)
	}

	if err != nil {
		return classify(err)
	}
	return failure(results)
}

// failure summarizes the failed results. Any system error among them makes
// the whole run a system error.
func failure(results []runner.Result) error {
	if !runner.Failed(results) {
		return nil
	}
	for _, res := range results {
		if res.Err != nil && exitCode(classify(res.Err)) == exitSysError {
			return sysError("some puzzles failed: %w", res.Err)
		}
	}
	return errors.New("some puzzles failed")
}

// printResults writes answers to out and verdicts and failures to errOut.
// A single day prints bare answers; a season prefixes each with its part.
func printResults(out, errOut io.Writer, results []runner.Result, labelled bool) {
	for _, res := range results {
		label := fmt.Sprintf("%d day %02d part %d", res.Year, res.Day, res.Part)
		if res.Err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", label, res.Err)
			continue
		}
		if labelled {
			fmt.Fprintf(out, "%s: %s\n", label, res.Answer)
		} else {
			fmt.Fprintln(out, res.Answer)
		}
		switch res.Verdict {
		case runner.VerdictCorrect:
			fmt.Fprintf(errOut, "%s: correct\n", label)
		case runner.VerdictWrong:
			fmt.Fprintf(errOut, "%s: wrong, accepted answer is %s\n", label, res.Expected)
		}
	}
}
