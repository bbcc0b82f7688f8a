package commands

import "github.com/spf13/cobra"

// NewPeriodsCommand creates the periods command.
func NewPeriodsCommand() *cobra.Command {
	var byMonth bool

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List the periods (worksheet tabs) in the source",
		Long: `List the periods available in the configured source, in source-declared
order. With --by-month, only periods whose names encode a month number
("3월", "11월") are shown, sorted ascending by that number.`,
		Example: `  # All tabs, source order
  meritboard periods

  # Monthly tabs only, calendar order
  meritboard periods --by-month`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			var periods []string
			if byMonth {
				periods, err = cmdCtx.Board.PeriodsByMonth(cmd.Context())
			} else {
				periods, err = cmdCtx.Board.Periods(cmd.Context())
			}
			if err != nil {
				return err
			}

			return renderList(cmdCtx.Renderer, periods)
		},
	}

	cmd.Flags().BoolVar(&byMonth, "by-month", false, "Only monthly periods, sorted by month number")

	return cmd
}
