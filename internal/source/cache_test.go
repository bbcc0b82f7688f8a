package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how often the backend is consulted.
type countingSource struct {
	listCalls  int
	fetchCalls int
}

func (s *countingSource) ListPeriods(context.Context) ([]string, error) {
	s.listCalls++
	return []string{"3월", "8월"}, nil
}

func (s *countingSource) FetchRows(_ context.Context, period string) ([]string, [][]string, error) {
	if period != "3월" {
		return nil, nil, ErrUnknownPeriod
	}
	s.fetchCalls++
	return []string{"날짜", "학번"}, [][]string{{"2024-03-01", "2414"}}, nil
}

func TestCached_MemoizesWithinTTL(t *testing.T) {
	backend := &countingSource{}
	cached := NewCached(backend, time.Minute, nil)
	ctx := context.Background()

	for range 3 {
		periods, err := cached.ListPeriods(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"3월", "8월"}, periods)

		header, rows, err := cached.FetchRows(ctx, "3월")
		require.NoError(t, err)
		assert.Equal(t, []string{"날짜", "학번"}, header)
		assert.Len(t, rows, 1)
	}

	assert.Equal(t, 1, backend.listCalls)
	assert.Equal(t, 1, backend.fetchCalls)
}

func TestCached_FlushForcesRefetch(t *testing.T) {
	backend := &countingSource{}
	cached := NewCached(backend, time.Minute, nil)
	ctx := context.Background()

	_, _, err := cached.FetchRows(ctx, "3월")
	require.NoError(t, err)
	cached.Flush()
	_, _, err = cached.FetchRows(ctx, "3월")
	require.NoError(t, err)

	assert.Equal(t, 2, backend.fetchCalls)
}

func TestCached_ErrorsAreNotCached(t *testing.T) {
	backend := &countingSource{}
	cached := NewCached(backend, time.Minute, nil)
	ctx := context.Background()

	_, _, err := cached.FetchRows(ctx, "9월")
	assert.ErrorIs(t, err, ErrUnknownPeriod)

	// The miss is consulted again rather than served from cache.
	_, _, err = cached.FetchRows(ctx, "9월")
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}
