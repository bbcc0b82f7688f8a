// Package source provides the record-retrieval collaborators: worksheet
// backends that list periods and fetch raw rows, a TTL cache over them, and
// a file watcher that invalidates the cache. The conduct core never touches
// this package; callers fetch here, then build.
package source

import (
	"context"
	"errors"
)

// ErrUnknownPeriod signals a period name the backend does not carry.
var ErrUnknownPeriod = errors.New("unknown period")

// Source retrieves raw worksheet data. ListPeriods returns tab names in
// source-declared order; FetchRows returns the header row and the data rows
// beneath it, unmodified.
type Source interface {
	ListPeriods(ctx context.Context) ([]string, error)
	FetchRows(ctx context.Context, period string) (header []string, rows [][]string, err error)
}
