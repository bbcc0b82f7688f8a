package conduct

import "time"

// NoValue marks a group-key position the identifier was too short to fill.
const NoValue = "-"

// Record is one normalized worksheet row.
type Record struct {
	// Index is the row's position in the original sheet (0-based, data rows
	// only). It is the tie-breaker for every sorted query result.
	Index int

	// RawDate is the date cell after forward-fill. It is empty only when the
	// very first data row had no date to inherit.
	RawDate string

	// Date is the fully resolved calendar date, nil when the cell could not
	// be parsed beyond a partial form.
	Date *time.Time

	// Month and Day hold partial resolution (1-based, 0 = unknown). When
	// Date is set they mirror its month and day.
	Month int
	Day   int

	// ID is the trimmed compound identifier (e.g. "2414").
	ID string

	// GroupKeys are the hierarchical classifiers derived from ID, in order
	// (grade first, then class). Positions the identifier could not fill
	// hold NoValue.
	GroupKeys []string

	// Fields holds the remaining declared columns by header label.
	Fields map[string]string
}

// HasDate reports whether the record carries a full calendar date.
func (r *Record) HasDate() bool { return r.Date != nil }

// HasDay reports whether at least a day-of-month was resolved.
func (r *Record) HasDay() bool { return r.Day != 0 }

// GroupKey returns the group key at position, or NoValue when the record
// has fewer keys.
func (r *Record) GroupKey(position int) string {
	if position < 0 || position >= len(r.GroupKeys) {
		return NoValue
	}
	return r.GroupKeys[position]
}

// Diagnostics counts per-row issues absorbed during a build. They never
// abort the build; they exist so callers can report data quality.
type Diagnostics struct {
	// UnresolvedDates is the number of kept rows with neither a canonical
	// date nor a day-of-month.
	UnresolvedDates int
	// DroppedRows is the number of rows removed for a blank identifier.
	DroppedRows int
	// ShortIDs is the number of kept rows whose identifier was too short to
	// fill every group-key position.
	ShortIDs int
}

// Table is an immutable, ordered set of Records sharing one header schema.
// A Table belongs to exactly one period and is rebuilt on every load.
type Table struct {
	// Period is the worksheet tab this table was built from.
	Period string

	// Month is the month declared by the period name ("8월" -> 8), 0 when
	// the name does not encode one. It backs day-exact matching for rows
	// that resolved only a day-of-month.
	Month int

	// Schema is the column schema the table was built against, with
	// defaults applied.
	Schema Schema

	// Records are the kept rows in original sheet order.
	Records []Record

	// Diag holds the per-row issue counters from the build.
	Diag Diagnostics

	hasTimeColumn bool
}

// HasTimeColumn reports whether the optional time-of-day column was present
// in the source header. When it is absent, day queries degrade to whole-day
// results instead of failing.
func (t *Table) HasTimeColumn() bool { return t.hasTimeColumn }

// HasDateInfo reports whether any record resolved at least a day-of-month.
// When false the table cannot answer date-based queries.
func (t *Table) HasDateInfo() bool {
	for i := range t.Records {
		if t.Records[i].HasDay() {
			return true
		}
	}
	return false
}

// RequireDates returns ErrNoDates when the table has no date information.
// Callers use it to refuse date-based queries as a structured failure.
func (t *Table) RequireDates() error {
	if !t.HasDateInfo() {
		return ErrNoDates
	}
	return nil
}

// Len returns the number of kept records.
func (t *Table) Len() int { return len(t.Records) }
