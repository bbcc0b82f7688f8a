package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// NewRecordsCommand creates the records command.
func NewRecordsCommand() *cobra.Command {
	var grade, class, from, to string

	cmd := &cobra.Command{
		Use:   "records <period>",
		Short: "Dump a period's records, optionally filtered",
		Long: `Dump a period's normalized records. Without flags, every kept row is
shown, including rows whose date never resolved. --grade/--class narrow by
group key; --from/--to narrow to an inclusive calendar-date window (which
excludes rows without a fully resolved date).`,
		Example: `  # Everything in the 3월 tab
  meritboard records 3월

  # One class across a date window
  meritboard records 3월 --grade 2 --class 4 --from 2024-03-01 --to 2024-03-07`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			if (from == "") != (to == "") {
				return fmt.Errorf("--from and --to must be used together")
			}

			table, ok, err := loadTable(cmd, cmdCtx, args[0])
			if err != nil || !ok {
				return err
			}

			filter := groupFilter(grade, class)

			var records []conduct.Record
			if from != "" {
				start, err := parseDateFlag(from, "from")
				if err != nil {
					return err
				}
				end, err := parseDateFlag(to, "to")
				if err != nil {
					return err
				}
				records = conduct.ByDateRange(table, start, end, filter)
			} else {
				records = conduct.ByGroup(table, filter)
			}

			r := cmdCtx.Renderer
			r.Header(2, fmt.Sprintf("%s — %d record(s)", args[0], len(records)))
			if err := renderRecords(r, table, records); err != nil {
				return err
			}

			if d := table.Diag; cmdCtx.Cfg.Verbose && (d.UnresolvedDates > 0 || d.DroppedRows > 0 || d.ShortIDs > 0) {
				r.Warnf("row issues: %d unresolved date(s), %d dropped row(s), %d short identifier(s)\n",
					d.UnresolvedDates, d.DroppedRows, d.ShortIDs)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&grade, "grade", "", "Grade group key (position 0)")
	cmd.Flags().StringVar(&class, "class", "", "Class group key (position 1)")
	cmd.Flags().StringVar(&from, "from", "", "Window start, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "Window end (inclusive), YYYY-MM-DD")

	return cmd
}
