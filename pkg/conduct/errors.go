package conduct

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyTable signals a period with no data rows or an all-blank header
// row. It is a "nothing to show" condition, distinct from a misconfigured
// schema, and callers are expected to branch on it with errors.Is.
var ErrEmptyTable = errors.New("period has no data")

// ErrNoDates signals a table in which no row resolved any date information,
// so date-based queries cannot be offered.
var ErrNoDates = errors.New("no resolvable dates in period")

// MissingColumnError reports mandatory columns absent from a period's
// header. It is raised once per table, never per row, and no partial table
// accompanies it.
type MissingColumnError struct {
	Period  string
	Columns []string
	Header  []string
}

func (e *MissingColumnError) Error() string {
	cols := strings.Join(e.Columns, ", ")
	if e.Period != "" {
		return fmt.Sprintf("period %q is missing mandatory column(s): %s (header: %s)",
			e.Period, cols, strings.Join(e.Header, ", "))
	}
	return fmt.Sprintf("missing mandatory column(s): %s", cols)
}
