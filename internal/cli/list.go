package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type puzzleJSON struct {
	Year  int    `json:"year"`
	Day   int    `json:"day"`
	Title string `json:"title"`
	Parts []int  `json:"parts"`
}

func newListCmd(a *app) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles",
		Example: `  advent list
  advent list --year 2023 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzles := a.registry.List(year)
			if a.flags.jsonMode {
				out := make([]puzzleJSON, 0, len(puzzles))
				for _, p := range puzzles {
					out = append(out, puzzleJSON{Year: p.Year, Day: p.Day, Title: p.Title, Parts: p.Parts()})
				}
				return printJSON(cmd.OutOrStdout(), out)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "YEAR\tDAY\tTITLE")
			for _, p := range puzzles {
				fmt.Fprintf(w, "%d\t%02d\t%s\n", p.Year, p.Day, p.Title)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "only list this season")
	return cmd
}
