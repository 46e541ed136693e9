package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/advent/pkg/types"
)

type answerFlags struct {
	year, day, part int
}

func (f *answerFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.year, "year", 0, "season")
	fl.IntVar(&f.day, "day", 0, "day of the season")
	fl.IntVar(&f.part, "part", 0, "part 1 or 2")
	for _, name := range []string{"year", "day", "part"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func newAnswerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Manage the accepted answers that runs are checked against",
	}
	cmd.AddCommand(newAnswerSetCmd(a), newAnswerGetCmd(a))
	return cmd
}

func newAnswerSetCmd(a *app) *cobra.Command {
	var f answerFlags
	cmd := &cobra.Command{
		Use:     "set VALUE",
		Short:   "Store the accepted answer for a puzzle part",
		Example: `  advent answer set --year 2022 --day 5 --part 1 CMZ`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ans := types.Answer{Year: f.year, Day: f.day, Part: f.part, Value: args[0]}
			if err := ans.Validate(); err != nil {
				return err
			}
			if _, err := a.registry.Get(f.year, f.day); err != nil {
				return err
			}
			ledger, err := a.attachLedger()
			if err != nil {
				return err
			}
			defer ledger.Detach()

			if err := ledger.SetAnswer(ans); err != nil {
				return classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d day %02d part %d: %s\n", f.year, f.day, f.part, ans.Value)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newAnswerGetCmd(a *app) *cobra.Command {
	var f answerFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the accepted answer for a puzzle part",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger, err := a.attachLedger()
			if err != nil {
				return err
			}
			defer ledger.Detach()

			ans, err := ledger.GetAnswer(f.year, f.day, f.part)
			if err != nil {
				return classify(err)
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"year":       ans.Year,
					"day":        ans.Day,
					"part":       ans.Part,
					"value":      ans.Value,
					"updated_at": ans.UpdatedAt,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), ans.Value)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
