// Package board ties the retrieval collaborator and the conduct core
// together: it fetches a period's raw rows and builds the normalized table
// the query operations run against.
package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/haneul-labs/meritboard/internal/source"
	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// Board loads period tables on demand. Tables are built fresh per load and
// never shared mutable state, so one Board may serve concurrent queries.
type Board struct {
	src    source.Source
	schema conduct.Schema
	logger *slog.Logger
}

// Config holds Board dependencies.
type Config struct {
	// Source retrieves raw worksheet data. Required.
	Source source.Source
	// Schema declares the worksheet columns. Zero value means the default
	// worksheet layout.
	Schema conduct.Schema
	// Logger is the structured logger (optional, discards if nil).
	Logger *slog.Logger
}

// New creates a Board.
func New(cfg Config) (*Board, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("board: source is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	schema := cfg.Schema
	if schema.DateColumn == "" && schema.IDColumn == "" {
		schema = conduct.DefaultSchema()
	}
	return &Board{src: cfg.Source, schema: schema, logger: logger}, nil
}

// Schema returns the column schema the board builds against.
func (b *Board) Schema() conduct.Schema { return b.schema }

// Periods returns the period names in source-declared order.
func (b *Board) Periods(ctx context.Context) ([]string, error) {
	periods, err := b.src.ListPeriods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}
	return periods, nil
}

// PeriodsByMonth returns the periods whose names encode a month number,
// sorted ascending by that number.
func (b *Board) PeriodsByMonth(ctx context.Context) ([]string, error) {
	periods, err := b.Periods(ctx)
	if err != nil {
		return nil, err
	}
	return conduct.SortPeriodsByMonth(periods, b.schema.PeriodUnit), nil
}

// Load fetches one period and builds its table. Table-level failures
// (missing columns, empty period) propagate; per-row issues surface only as
// diagnostics on the table.
func (b *Board) Load(ctx context.Context, period string) (*conduct.Table, error) {
	header, rows, err := b.src.FetchRows(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch period %s: %w", period, err)
	}

	table, err := conduct.Build(period, header, rows, b.schema)
	if err != nil {
		return nil, err
	}

	if d := table.Diag; d.UnresolvedDates > 0 || d.DroppedRows > 0 || d.ShortIDs > 0 {
		b.logger.Warn("period built with row issues",
			"period", period,
			"unresolved_dates", d.UnresolvedDates,
			"dropped_rows", d.DroppedRows,
			"short_ids", d.ShortIDs)
	}
	b.logger.Debug("period loaded", "period", period, "records", table.Len())

	return table, nil
}
