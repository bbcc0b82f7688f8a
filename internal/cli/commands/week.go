package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// weekWindow returns the Monday and Sunday enclosing day.
func weekWindow(day time.Time) (time.Time, time.Time) {
	// time.Weekday counts Sunday as 0; the school week starts Monday.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// NewWeekCommand creates the week command.
func NewWeekCommand() *cobra.Command {
	var grade, class, on string

	cmd := &cobra.Command{
		Use:   "week <period>",
		Short: "Show a class's entries for today and the current week",
		Long: `Show a class's conduct entries for one day and for the Monday-to-Sunday
week enclosing it. Only rows with a fully resolved calendar date can
match.`,
		Example: `  # Grade 2, class 4, today
  meritboard week 3월 --grade 2 --class 4

  # A specific day instead of today
  meritboard week 3월 --grade 2 --class 4 --on 2024-03-06`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			day := time.Now()
			if on != "" {
				day, err = parseDateFlag(on, "on")
				if err != nil {
					return err
				}
			}

			table, ok, err := loadTable(cmd, cmdCtx, args[0])
			if err != nil || !ok {
				return err
			}
			if err := table.RequireDates(); err != nil {
				return fmt.Errorf("period %q: %w", args[0], err)
			}

			filter := groupFilter(grade, class)
			start, end := weekWindow(day)

			r := cmdCtx.Renderer

			today := conduct.ByDateRange(table, day, day, filter)
			r.Header(2, fmt.Sprintf("%s — %d record(s)", day.Format("2006-01-02"), len(today)))
			if err := renderRecords(r, table, today); err != nil {
				return err
			}

			week := conduct.ByDateRange(table, start, end, filter)
			r.Header(2, fmt.Sprintf("Week %s ~ %s — %d record(s)",
				start.Format("2006-01-02"), end.Format("2006-01-02"), len(week)))
			return renderRecords(r, table, week)
		},
	}

	cmd.Flags().StringVar(&grade, "grade", "", "Grade group key (position 0)")
	cmd.Flags().StringVar(&class, "class", "", "Class group key (position 1)")
	cmd.Flags().StringVar(&on, "on", "", "Reference day, YYYY-MM-DD (default today)")

	return cmd
}
