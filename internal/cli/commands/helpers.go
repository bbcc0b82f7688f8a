package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// loadTable loads one period and absorbs the empty-period signal: ok is
// false when the period legitimately has nothing to show, which is not a
// command failure. Schema failures still propagate as errors.
func loadTable(cmd *cobra.Command, cmdCtx *CommandContext, period string) (*conduct.Table, bool, error) {
	t, err := cmdCtx.Board.Load(cmd.Context(), period)
	if errors.Is(err, conduct.ErrEmptyTable) {
		cmdCtx.Renderer.Warnf("period %q has no data to show\n", period)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// parseDateFlag parses a YYYY-MM-DD flag value.
func parseDateFlag(value, flag string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s value %q (expected YYYY-MM-DD)", flag, value)
	}
	return t, nil
}

// groupFilter builds the positional filter for the grade/class flags.
// Empty flags constrain nothing.
func groupFilter(grade, class string) conduct.GroupFilter {
	var filter conduct.GroupFilter
	if grade != "" {
		filter = append(filter, conduct.GroupConstraint{Position: 0, Value: grade})
	}
	if class != "" {
		filter = append(filter, conduct.GroupConstraint{Position: 1, Value: class})
	}
	return filter
}
