package conduct

// Default column labels, matching the worksheet convention the system was
// built for (1행: 날짜, 학번, 이름, 사유, 비고).
const (
	DefaultDateColumn  = "날짜"
	DefaultIDColumn    = "학번"
	DefaultNameColumn  = "이름"
	DefaultItemColumn  = "사유"
	DefaultNoteColumn  = "비고"
	DefaultGradeColumn = "학년"
	DefaultClassColumn = "반"
	DefaultTimeColumn  = "시간대"

	// DefaultMorningLabel is the time-of-day value that marks morning
	// entries.
	DefaultMorningLabel = "아침"

	// DefaultPeriodUnit is the marker that follows the month number in
	// period (tab) names, as in "8월".
	DefaultPeriodUnit = "월"
)

// Schema declares which header labels a worksheet must and may carry, and
// how derived columns are named.
type Schema struct {
	// DateColumn is the mandatory date column label.
	DateColumn string `koanf:"date_column"`

	// IDColumn is the compound identifier column label. When set it is
	// mandatory and rows with a blank identifier are dropped; when empty,
	// identifier handling is disabled entirely.
	IDColumn string `koanf:"id_column"`

	// GroupColumns name the derived group-key columns in key order (grade
	// first, then class). Empty disables decomposition.
	GroupColumns []string `koanf:"group_columns"`

	// DisplayColumns are the remaining columns copied into Record.Fields.
	// Labels absent from the header are skipped, not errors.
	DisplayColumns []string `koanf:"display_columns"`

	// TimeColumn is the optional time-of-day column label. When the header
	// lacks it, day queries return whole-day results.
	TimeColumn string `koanf:"time_column"`

	// MorningLabel is the TimeColumn value that marks morning entries.
	MorningLabel string `koanf:"morning_label"`

	// PeriodUnit is the marker following the month number in period names.
	PeriodUnit string `koanf:"period_unit"`
}

// DefaultSchema returns the schema for the standard worksheet layout.
func DefaultSchema() Schema {
	return Schema{
		DateColumn:     DefaultDateColumn,
		IDColumn:       DefaultIDColumn,
		GroupColumns:   []string{DefaultGradeColumn, DefaultClassColumn},
		DisplayColumns: []string{DefaultNameColumn, DefaultItemColumn, DefaultNoteColumn},
		TimeColumn:     DefaultTimeColumn,
		MorningLabel:   DefaultMorningLabel,
		PeriodUnit:     DefaultPeriodUnit,
	}
}

// withDefaults fills unset schema fields that have meaningful defaults.
// Column labels are left alone: an empty IDColumn is a deliberate opt-out.
func (s Schema) withDefaults() Schema {
	if s.DateColumn == "" {
		s.DateColumn = DefaultDateColumn
	}
	if s.MorningLabel == "" {
		s.MorningLabel = DefaultMorningLabel
	}
	if s.PeriodUnit == "" {
		s.PeriodUnit = DefaultPeriodUnit
	}
	return s
}

// mandatoryColumns returns the labels that must appear in the header.
func (s Schema) mandatoryColumns() []string {
	cols := []string{s.DateColumn}
	if s.IDColumn != "" {
		cols = append(cols, s.IDColumn)
	}
	return cols
}
