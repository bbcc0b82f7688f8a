package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// NewDayCommand creates the day command.
func NewDayCommand() *cobra.Command {
	var month, day int

	cmd := &cobra.Command{
		Use:   "day <period>",
		Short: "Show the conduct entries for one day",
		Long: `Show the conduct entries recorded for a single day of a period.

Rows whose date cell resolved only a day-of-month are matched against the
month the period name declares. When the sheet carries a time-of-day
column, only morning entries are shown; without one, the whole day is
shown.`,
		Example: `  # March 1st, from the 3월 tab
  meritboard day 3월 --day 1

  # Override the month when the tab name does not declare it
  meritboard day 학기말 --month 7 --day 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			table, ok, err := loadTable(cmd, cmdCtx, args[0])
			if err != nil || !ok {
				return err
			}
			if err := table.RequireDates(); err != nil {
				return fmt.Errorf("period %q: %w", args[0], err)
			}

			m := month
			if m == 0 {
				m = table.Month
			}
			if m == 0 {
				return fmt.Errorf("period %q does not declare a month; use --month", args[0])
			}
			if day == 0 {
				return fmt.Errorf("--day is required")
			}

			records := conduct.ByExactDay(table, m, day)

			r := cmdCtx.Renderer
			r.Header(2, fmt.Sprintf("%d/%d — %d record(s)", m, day, len(records)))
			if !table.HasTimeColumn() {
				cmdCtx.Logger.Debug("no time-of-day column; showing the whole day", "period", args[0])
			}
			return renderRecords(r, table, records)
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month number (defaults to the period's declared month)")
	cmd.Flags().IntVar(&day, "day", 0, "Day of month (required)")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}
