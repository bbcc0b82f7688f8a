package conduct

import "strings"

// Build assembles raw worksheet values into a Table.
//
// The header row is trimmed cell by cell. An empty row set or an all-blank
// header yields ErrEmptyTable regardless of schema. Mandatory columns
// missing from the header yield a *MissingColumnError naming every missing
// label and the period; no partial table is returned.
//
// Date normalization (including forward-fill) runs over the original column
// order before identifier-based row drops, so a dropped row still donates
// its date to rows below it. Row order in the result is the original sheet
// order.
//
// Build is a pure function: identical inputs produce identical tables.
func Build(period string, header []string, rows [][]string, schema Schema) (*Table, error) {
	schema = schema.withDefaults()

	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	trimmed := make([]string, len(header))
	blank := true
	for i, h := range header {
		trimmed[i] = strings.TrimSpace(h)
		if trimmed[i] != "" {
			blank = false
		}
	}
	if blank {
		return nil, ErrEmptyTable
	}

	colIndex := make(map[string]int, len(trimmed))
	for i, h := range trimmed {
		if h == "" {
			continue
		}
		if _, ok := colIndex[h]; !ok {
			colIndex[h] = i
		}
	}

	var missing []string
	for _, col := range schema.mandatoryColumns() {
		if _, ok := colIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Period: period, Columns: missing, Header: trimmed}
	}

	dateIdx := colIndex[schema.DateColumn]
	rawDates := make([]string, len(rows))
	for i, row := range rows {
		rawDates[i] = cellAt(row, dateIdx)
	}
	dates := NormalizeDates(rawDates)
	filled := ForwardFill(rawDates)

	idIdx, hasID := -1, false
	if schema.IDColumn != "" {
		idIdx, hasID = colIndex[schema.IDColumn], true
	}
	timeIdx, hasTime := -1, false
	if schema.TimeColumn != "" {
		timeIdx, hasTime = colIndex[schema.TimeColumn]
	}

	month, _ := PeriodMonth(period, schema.PeriodUnit)

	t := &Table{
		Period:        period,
		Month:         month,
		Schema:        schema,
		Records:       make([]Record, 0, len(rows)),
		hasTimeColumn: hasTime,
	}

	for i, row := range rows {
		var id string
		if hasID {
			id = strings.TrimSpace(cellAt(row, idIdx))
			if id == "" {
				t.Diag.DroppedRows++
				continue
			}
		}

		rec := Record{
			Index:   i,
			RawDate: filled[i],
			Date:    dates[i].Date,
			Month:   dates[i].Month,
			Day:     dates[i].Day,
			ID:      id,
			Fields:  make(map[string]string),
		}
		if !rec.HasDay() {
			t.Diag.UnresolvedDates++
		}

		if hasID && len(schema.GroupColumns) > 0 {
			rec.GroupKeys = DecomposeID(id)
			for pos, label := range schema.GroupColumns {
				rec.Fields[label] = rec.GroupKey(pos)
			}
			for _, key := range rec.GroupKeys {
				if key == NoValue {
					t.Diag.ShortIDs++
					break
				}
			}
		}

		for _, label := range schema.DisplayColumns {
			if idx, ok := colIndex[label]; ok {
				rec.Fields[label] = cellAt(row, idx)
			}
		}
		if hasTime {
			rec.Fields[schema.TimeColumn] = strings.TrimSpace(cellAt(row, timeIdx))
		}

		t.Records = append(t.Records, rec)
	}

	return t, nil
}

// cellAt tolerates ragged rows: positions past the row's end read as empty.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
