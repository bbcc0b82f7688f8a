package board

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haneul-labs/meritboard/internal/source"
	"github.com/haneul-labs/meritboard/pkg/conduct"
)

type fakeSource struct {
	periods []string
	sheets  map[string][][]string
}

func (s *fakeSource) ListPeriods(context.Context) ([]string, error) {
	return s.periods, nil
}

func (s *fakeSource) FetchRows(_ context.Context, period string) ([]string, [][]string, error) {
	rows, ok := s.sheets[period]
	if !ok {
		return nil, nil, source.ErrUnknownPeriod
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}

func newFake() *fakeSource {
	return &fakeSource{
		periods: []string{"8월", "공지", "3월"},
		sheets: map[string][][]string{
			"3월": {
				{"날짜", "학번", "이름", "사유", "비고"},
				{"2024-03-01", "2414", "김하늘", "지각", ""},
				{"", "2415", "이서준", "지각", ""},
			},
			"8월": {
				{"날짜", "학번", "이름", "사유", "비고"},
			},
			"공지": {},
		},
	}
}

func TestBoard_RequiresSource(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestBoard_Periods(t *testing.T) {
	b, err := New(Config{Source: newFake()})
	require.NoError(t, err)

	periods, err := b.Periods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"8월", "공지", "3월"}, periods, "source-declared order is kept")

	byMonth, err := b.PeriodsByMonth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"3월", "8월"}, byMonth)
}

func TestBoard_Load(t *testing.T) {
	b, err := New(Config{Source: newFake()})
	require.NoError(t, err)

	table, err := b.Load(context.Background(), "3월")
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 3, table.Month)
}

func TestBoard_Load_EmptyPeriod(t *testing.T) {
	b, err := New(Config{Source: newFake()})
	require.NoError(t, err)

	_, err = b.Load(context.Background(), "8월")
	assert.ErrorIs(t, err, conduct.ErrEmptyTable)

	_, err = b.Load(context.Background(), "공지")
	assert.ErrorIs(t, err, conduct.ErrEmptyTable)
}

func TestBoard_Load_UnknownPeriod(t *testing.T) {
	b, err := New(Config{Source: newFake()})
	require.NoError(t, err)

	_, err = b.Load(context.Background(), "9월")
	assert.ErrorIs(t, err, source.ErrUnknownPeriod)
}
