package conduct

import (
	"sort"
	"time"
)

// GroupConstraint pins one group-key position to an expected value.
// Position 0 is the grade, position 1 the class.
type GroupConstraint struct {
	Position int
	Value    string
}

// GroupFilter is an ordered set of positional group constraints. All
// constraints must hold for a record to match. A record with fewer group
// keys than a constraint references never matches.
type GroupFilter []GroupConstraint

func (f GroupFilter) matches(r *Record) bool {
	for _, c := range f {
		if c.Position < 0 || c.Position >= len(r.GroupKeys) {
			return false
		}
		if r.GroupKeys[c.Position] != c.Value {
			return false
		}
	}
	return true
}

// ByExactDay returns the records for the given month and day. A record
// matches on its canonical date when it has one; a record with only a
// day-of-month matches when the day agrees and the month agrees with the
// record's own partial month, falling back to the table's declared month.
//
// When the source header carried the time-of-day column, results are
// narrowed to morning entries; without that column the whole day is
// returned. Results are sorted by raw date ascending, original row order
// breaking ties.
func ByExactDay(t *Table, month, day int) []Record {
	out := collect(t, func(r *Record) bool {
		if !matchesDay(t, r, month, day) {
			return false
		}
		if t.hasTimeColumn {
			return r.Fields[t.Schema.TimeColumn] == t.Schema.MorningLabel
		}
		return true
	})
	sortByRawDate(out)
	return out
}

func matchesDay(t *Table, r *Record, month, day int) bool {
	if r.HasDate() {
		return int(r.Date.Month()) == month && r.Date.Day() == day
	}
	if !r.HasDay() || r.Day != day {
		return false
	}
	if r.Month != 0 {
		return r.Month == month
	}
	return t.Month == month
}

// ByCalendarDate returns the records whose canonical date equals date.
// Records without a canonical date never match.
func ByCalendarDate(t *Table, date time.Time) []Record {
	return collect(t, func(r *Record) bool {
		return r.HasDate() && SameDate(*r.Date, date)
	})
}

// ByDateRange returns the records whose canonical date falls inside
// [start, end], inclusive on both ends, optionally narrowed by a group
// filter. Records without a canonical date never match.
func ByDateRange(t *Table, start, end time.Time, filter GroupFilter) []Record {
	lo, hi := dateOnly(start), dateOnly(end)
	return collect(t, func(r *Record) bool {
		if !r.HasDate() {
			return false
		}
		d := *r.Date
		if d.Before(lo) || d.After(hi) {
			return false
		}
		return filter.matches(r)
	})
}

// ByGroup returns every record matching the group filter, ignoring dates.
func ByGroup(t *Table, filter GroupFilter) []Record {
	return collect(t, func(r *Record) bool {
		return filter.matches(r)
	})
}

// DistinctDays returns the distinct resolved days-of-month, ascending.
func DistinctDays(t *Table) []int {
	return distinctInts(t, func(r *Record) int { return r.Day })
}

// DistinctMonths returns the distinct resolved months, ascending.
func DistinctMonths(t *Table) []int {
	return distinctInts(t, func(r *Record) int { return r.Month })
}

// DistinctGroupValues returns the distinct group-key values at position,
// lexically ascending. NoValue markers are excluded.
func DistinctGroupValues(t *Table, position int) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range t.Records {
		v := t.Records[i].GroupKey(position)
		if v == NoValue {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// collect copies the matching records in original order. The table is never
// mutated; every query returns a fresh slice.
func collect(t *Table, match func(*Record) bool) []Record {
	var out []Record
	for i := range t.Records {
		if match(&t.Records[i]) {
			out = append(out, t.Records[i])
		}
	}
	return out
}

func sortByRawDate(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RawDate < records[j].RawDate
	})
}

func distinctInts(t *Table, value func(*Record) int) []int {
	seen := make(map[int]struct{})
	var out []int
	for i := range t.Records {
		v := value(&t.Records[i])
		if v == 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
