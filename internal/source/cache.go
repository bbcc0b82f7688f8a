package source

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL bounds how long listed periods and fetched rows are reused
// before the backend is consulted again.
const DefaultTTL = 5 * time.Minute

const periodsKey = "periods"

type fetchResult struct {
	header []string
	rows   [][]string
}

// Cached memoizes a Source with a time bound. It keeps the conduct core
// pure: rebuilds within the TTL reuse the same raw rows, and a Flush (or
// the TTL) forces a refetch. Safe for concurrent use.
type Cached struct {
	src    Source
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewCached wraps src with a TTL cache. A non-positive ttl falls back to
// DefaultTTL.
func NewCached(src Source, ttl time.Duration, logger *slog.Logger) *Cached {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cached{
		src:    src,
		cache:  gocache.New(ttl, ttl),
		logger: logger,
	}
}

// ListPeriods returns the cached period list, consulting the backend on a
// miss.
func (c *Cached) ListPeriods(ctx context.Context) ([]string, error) {
	if v, ok := c.cache.Get(periodsKey); ok {
		return v.([]string), nil
	}

	periods, err := c.src.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(periodsKey, periods)
	return periods, nil
}

// FetchRows returns the cached rows for period, consulting the backend on a
// miss. Errors are never cached.
func (c *Cached) FetchRows(ctx context.Context, period string) ([]string, [][]string, error) {
	key := "rows:" + period
	if v, ok := c.cache.Get(key); ok {
		r := v.(fetchResult)
		return r.header, r.rows, nil
	}

	header, rows, err := c.src.FetchRows(ctx, period)
	if err != nil {
		return nil, nil, err
	}
	c.cache.SetDefault(key, fetchResult{header: header, rows: rows})
	return header, rows, nil
}

// Flush drops every cached entry so the next call hits the backend.
func (c *Cached) Flush() {
	c.cache.Flush()
	c.logger.Debug("source cache flushed")
}
