package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/advent/pkg/types"
)

type runJSON struct {
	ID         string    `json:"id"`
	Year       int       `json:"year"`
	Day        int       `json:"day"`
	Part       int       `json:"part"`
	Demo       bool      `json:"demo"`
	Answer     string    `json:"answer"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

func newHistoryCmd(a *app) *cobra.Command {
	var filter types.RunFilter
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs, newest first",
		Example: `  advent history
  advent history --year 2023 --day 5 --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := a.attachLedger()
			if err != nil {
				return err
			}
			defer ledger.Detach()

			runs, err := ledger.Runs(filter)
			if err != nil {
				return sysError("query runs: %w", err)
			}
			if a.flags.jsonMode {
				out := make([]runJSON, 0, len(runs))
				for _, r := range runs {
					out = append(out, runJSON(r))
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tPUZZLE\tPART\tINPUT\tANSWER\tMS")
			for _, r := range runs {
				source := "real"
				if r.Demo {
					source = "demo"
				}
				fmt.Fprintf(w, "%s\t%d/%02d\t%d\t%s\t%s\t%d\n",
					r.CreatedAt.Local().Format(time.DateTime), r.Year, r.Day, r.Part, source, r.Answer, r.DurationMS)
			}
			return w.Flush()
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&filter.Year, "year", 0, "only this season")
	fl.IntVar(&filter.Day, "day", 0, "only this day")
	fl.IntVar(&filter.Part, "part", 0, "only this part")
	fl.IntVar(&filter.Limit, "limit", 20, "maximum runs shown (0 for all)")
	return cmd
}
