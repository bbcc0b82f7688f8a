package conduct

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultHeader() []string {
	return []string{"날짜", "학번", "이름", "사유", "비고"}
}

func TestBuild_Basic(t *testing.T) {
	rows := [][]string{
		{"2024-03-01", "2414", "김하늘", "지각", ""},
		{"", "2415", "이서준", "실내화 미착용", "재발"},
		{"2024-03-02", "3101", "박지우", "지각", ""},
	}

	table, err := Build("3월", defaultHeader(), rows, DefaultSchema())
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, "3월", table.Period)
	assert.Equal(t, 3, table.Month)

	first := table.Records[0]
	require.True(t, first.HasDate())
	assert.Equal(t, "2024-03-01", first.RawDate)
	assert.Equal(t, "2414", first.ID)
	assert.Equal(t, []string{"2", "4"}, first.GroupKeys)
	assert.Equal(t, "2", first.Fields["학년"])
	assert.Equal(t, "4", first.Fields["반"])
	assert.Equal(t, "김하늘", first.Fields["이름"])

	// Blank date inherits the row above.
	second := table.Records[1]
	assert.Equal(t, "2024-03-01", second.RawDate)
	require.True(t, second.HasDate())
	assert.Equal(t, 1, second.Day)
}

func TestBuild_MissingColumn(t *testing.T) {
	header := []string{"날짜", "이름"}
	rows := [][]string{{"2024-03-01", "김하늘"}}

	table, err := Build("3월", header, rows, DefaultSchema())
	require.Error(t, err)
	assert.Nil(t, table, "no partial table on missing column")

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing), "expected *MissingColumnError, got %T", err)
	assert.Equal(t, "3월", missing.Period)
	assert.Equal(t, []string{"학번"}, missing.Columns)
}

func TestBuild_MissingColumn_NamesAll(t *testing.T) {
	_, err := Build("3월", []string{"이름"}, [][]string{{"김하늘"}}, DefaultSchema())

	var missing *MissingColumnError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"날짜", "학번"}, missing.Columns)
	assert.Contains(t, missing.Error(), "날짜")
	assert.Contains(t, missing.Error(), "학번")
	assert.Contains(t, missing.Error(), "3월")
}

func TestBuild_EmptyInputs(t *testing.T) {
	// No data rows: empty table even with a valid header.
	_, err := Build("3월", defaultHeader(), nil, DefaultSchema())
	assert.ErrorIs(t, err, ErrEmptyTable)

	// All-blank header: empty table, not missing-column.
	_, err = Build("3월", []string{"", "  ", ""}, [][]string{{"a", "b", "c"}}, DefaultSchema())
	assert.ErrorIs(t, err, ErrEmptyTable)

	var missing *MissingColumnError
	assert.False(t, errors.As(err, &missing))
}

func TestBuild_DropsBlankIdentifiers(t *testing.T) {
	rows := [][]string{
		{"2024-03-01", "2414", "김하늘", "지각", ""},
		{"2024-03-02", "   ", "무명", "지각", ""},
		{"", "2415", "이서준", "지각", ""},
	}

	table, err := Build("3월", defaultHeader(), rows, DefaultSchema())
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 1, table.Diag.DroppedRows)

	// Forward-fill ran over the original order: the kept third row inherits
	// its date from the dropped second row, not from the first.
	third := table.Records[1]
	assert.Equal(t, "2024-03-02", third.RawDate)
	require.True(t, third.HasDate())
	assert.Equal(t, 2, third.Day)
	assert.Equal(t, 2, third.Index, "original row index is preserved")
}

func TestBuild_NoIDColumnDeclared(t *testing.T) {
	schema := DefaultSchema()
	schema.IDColumn = ""
	schema.GroupColumns = nil

	rows := [][]string{
		{"2024-03-01", "", "김하늘", "지각", ""},
	}

	table, err := Build("3월", defaultHeader(), rows, schema)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Empty(t, table.Records[0].GroupKeys)
	assert.Zero(t, table.Diag.DroppedRows)
}

func TestBuild_RaggedRowsAndTrimmedHeader(t *testing.T) {
	header := []string{" 날짜 ", " 학번", "이름 "}
	rows := [][]string{
		{"2024-03-01", "2414"},
		{"2024-03-02"},
	}

	table, err := Build("3월", header, rows, DefaultSchema())
	require.NoError(t, err)
	// Second row has no identifier cell at all: dropped.
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "", table.Records[0].Fields["이름"])
}

func TestBuild_Diagnostics(t *testing.T) {
	rows := [][]string{
		{"미정", "2414", "김하늘", "지각", ""},
		{"2024-03-01", "2", "이서준", "지각", ""},
	}

	table, err := Build("3월", defaultHeader(), rows, DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, 1, table.Diag.UnresolvedDates)
	assert.Equal(t, 1, table.Diag.ShortIDs)
	assert.Equal(t, []string{"2", NoValue}, table.Records[1].GroupKeys)
}

func TestBuild_Idempotent(t *testing.T) {
	rows := [][]string{
		{"2024-03-01", "2414", "김하늘", "지각", ""},
		{"", "2415", "이서준", "떠듦", ""},
	}

	a, err := Build("3월", defaultHeader(), rows, DefaultSchema())
	require.NoError(t, err)
	b, err := Build("3월", defaultHeader(), rows, DefaultSchema())
	require.NoError(t, err)

	assert.Equal(t, a.Records, b.Records)
	assert.Equal(t, a.Diag, b.Diag)
}

func TestBuild_UnknownPeriodName(t *testing.T) {
	rows := [][]string{{"2024-03-01", "2414", "김하늘", "지각", ""}}

	table, err := Build("학기말", defaultHeader(), rows, DefaultSchema())
	require.NoError(t, err)
	assert.Zero(t, table.Month)
}

func TestTable_RequireDates(t *testing.T) {
	rows := [][]string{
		{"미정", "2414", "김하늘", "지각", ""},
		{"", "2415", "이서준", "지각", ""},
	}

	table, err := Build("3월", defaultHeader(), rows, DefaultSchema())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len(), "undated rows stay in the table")
	assert.ErrorIs(t, table.RequireDates(), ErrNoDates)
	assert.Empty(t, ByExactDay(table, 3, 1), "undated rows never match date queries")
}
