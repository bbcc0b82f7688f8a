package conduct

import (
	"sort"
	"strconv"
	"strings"
)

// PeriodMonth extracts the month number a period name encodes: the leading
// integer immediately before the unit marker, as in "8월" or "11월 상벌점".
// It returns false for names without a parseable leading number.
func PeriodMonth(name, unit string) (int, bool) {
	if unit == "" {
		unit = DefaultPeriodUnit
	}
	name = strings.TrimSpace(name)

	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(name[i:], unit) {
		return 0, false
	}

	n, err := strconv.Atoi(name[:i])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// SortPeriodsByMonth returns the period names that encode a month number,
// sorted ascending by that number. Names without one are excluded; ties
// keep source-declared order.
func SortPeriodsByMonth(names []string, unit string) []string {
	type entry struct {
		name  string
		month int
	}
	var entries []entry
	for _, name := range names {
		if m, ok := PeriodMonth(name, unit); ok {
			entries = append(entries, entry{name: name, month: m})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].month < entries[j].month
	})
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}
