package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Workbook serves an XLSX workbook: each sheet is one period. The file is
// reopened per call so a workbook replaced on disk is picked up on the next
// fetch; the TTL cache in front keeps that cheap.
type Workbook struct {
	path   string
	logger *slog.Logger
}

// NewWorkbook creates a Workbook source over the given .xlsx file.
func NewWorkbook(path string, logger *slog.Logger) *Workbook {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Workbook{path: path, logger: logger}
}

// ListPeriods returns the sheet names in workbook-declared order.
func (s *Workbook) ListPeriods(_ context.Context) ([]string, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// FetchRows reads one sheet. The first row is the header; excelize already
// returns ragged rows, which the builder tolerates.
func (s *Workbook) FetchRows(_ context.Context, period string) ([]string, [][]string, error) {
	loadID := uuid.New().String()
	start := time.Now()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(period); err != nil || idx < 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPeriod, period)
	}

	rows, err := f.GetRows(period)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", period, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	s.logger.Debug("fetched period",
		"load_id", loadID,
		"period", period,
		"rows", len(rows)-1,
		"duration", time.Since(start).Round(time.Millisecond))

	return rows[0], rows[1:], nil
}
