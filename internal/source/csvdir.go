package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// CSVDir serves a directory of CSV files as a spreadsheet stand-in: each
// file is one period, the file stem is the period name. Intended for local
// use and tests.
type CSVDir struct {
	dir    string
	logger *slog.Logger
}

// NewCSVDir creates a CSVDir source over dir.
func NewCSVDir(dir string, logger *slog.Logger) *CSVDir {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CSVDir{dir: dir, logger: logger}
}

// ListPeriods returns the CSV file stems in directory order.
func (s *CSVDir) ListPeriods(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory %s: %w", s.dir, err)
	}

	var periods []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		periods = append(periods, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	return periods, nil
}

// FetchRows reads one period file. The first record is the header; ragged
// rows are tolerated. A file with no records at all yields an empty header
// and no rows.
func (s *CSVDir) FetchRows(_ context.Context, period string) ([]string, [][]string, error) {
	path := filepath.Join(s.dir, period+".csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownPeriod, period)
		}
		return nil, nil, fmt.Errorf("failed to open period %s: %w", period, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse period %s: %w", period, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	s.logger.Debug("fetched period", "period", period, "rows", len(records)-1)
	return records[0], records[1:], nil
}
