package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// NewDaysCommand creates the days command.
func NewDaysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "days <period>",
		Short: "List the distinct days recorded in a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			table, ok, err := loadTable(cmd, cmdCtx, args[0])
			if err != nil || !ok {
				return err
			}

			return renderList(cmdCtx.Renderer, conduct.DistinctDays(table))
		},
	}
}

// NewMonthsCommand creates the months command.
func NewMonthsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "months <period>",
		Short: "List the distinct months recorded in a period",
		Long: `List the distinct months recorded in a period. Most sheets carry a
single month, but carry-over rows dated into an adjacent month show up here.`,
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

			return renderList(cmdCtx.Renderer, conduct.DistinctMonths(table))
		},
	}
}

// NewGroupsCommand creates the groups command.
func NewGroupsCommand() *cobra.Command {
	var position int

	cmd := &cobra.Command{
		Use:   "groups <period>",
		Short: "List the distinct group-key values in a period",
		Example: `  # Grades present in the 3월 tab
  meritboard groups 3월

  # Classes present
  meritboard groups 3월 --position 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}

			if position < 0 || position >= conduct.GroupKeyCount {
				return fmt.Errorf("position must be between 0 and %d", conduct.GroupKeyCount-1)
			}

			table, ok, err := loadTable(cmd, cmdCtx, args[0])
			if err != nil || !ok {
				return err
			}

			return renderList(cmdCtx.Renderer, conduct.DistinctGroupValues(table, position))
		},
	}

	cmd.Flags().IntVar(&position, "position", 0, "Group-key position (0 = grade, 1 = class)")

	return cmd
}
