package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/haneul-labs/meritboard/internal/cli/output"
	"github.com/haneul-labs/meritboard/pkg/conduct"
)

// displayColumns returns the column order for rendered records: date,
// derived group columns, identifier, then the declared display columns and
// the time-of-day column when the sheet carried one.
func displayColumns(t *conduct.Table) []string {
	s := t.Schema
	cols := []string{s.DateColumn}
	cols = append(cols, s.GroupColumns...)
	if s.IDColumn != "" {
		cols = append(cols, s.IDColumn)
	}
	cols = append(cols, s.DisplayColumns...)
	if t.HasTimeColumn() {
		cols = append(cols, s.TimeColumn)
	}
	return cols
}

// recordValue resolves one display cell. The date column shows the
// canonical date when one resolved, the raw cell otherwise.
func recordValue(t *conduct.Table, r *conduct.Record, col string) string {
	s := t.Schema
	switch col {
	case s.DateColumn:
		if r.HasDate() {
			return r.Date.Format("2006-01-02")
		}
		return r.RawDate
	case s.IDColumn:
		return r.ID
	default:
		return r.Fields[col]
	}
}

// renderRecords writes records in the renderer's effective mode.
func renderRecords(r *output.Renderer, t *conduct.Table, records []conduct.Record) error {
	cols := displayColumns(t)
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return renderRecordsJSON(r.Out(), t, cols, records)
	case output.ModeCSV:
		return renderRecordsCSV(r.Out(), t, cols, records)
	case output.ModeMarkdown:
		return renderRecordsMarkdown(r.Out(), t, cols, records)
	default:
		return renderRecordsTable(r.Out(), t, cols, records)
	}
}

func renderRecordsTable(w io.Writer, t *conduct.Table, cols []string, records []conduct.Record) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 records)")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	tw.AppendHeader(headerRow)

	for i := range records {
		row := make(table.Row, len(cols))
		for j, col := range cols {
			row[j] = recordValue(t, &records[i], col)
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d records)\n", len(records))
	return nil
}

func renderRecordsMarkdown(w io.Writer, t *conduct.Table, cols []string, records []conduct.Record) error {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "(0 records)")
		return nil
	}

	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
	sep := make([]string, len(cols))
	for i := range sep {
		sep[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | "))

	for i := range records {
		values := make([]string, len(cols))
		for j, col := range cols {
			values[j] = strings.ReplaceAll(recordValue(t, &records[i], col), "|", "\\|")
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

func renderRecordsJSON(w io.Writer, t *conduct.Table, cols []string, records []conduct.Record) error {
	out := make([]map[string]string, 0, len(records))
	for i := range records {
		row := make(map[string]string, len(cols))
		for _, col := range cols {
			row[col] = recordValue(t, &records[i], col)
		}
		out = append(out, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderRecordsCSV(w io.Writer, t *conduct.Table, cols []string, records []conduct.Record) error {
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))
	for i := range records {
		values := make([]string, len(cols))
		for j, col := range cols {
			values[j] = escapeCSV(recordValue(t, &records[i], col))
		}
		_, _ = fmt.Fprintln(w, strings.Join(values, ","))
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// renderList writes a plain value list (period names, distinct values).
func renderList[T any](r *output.Renderer, values []T) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Out())
		enc.SetIndent("", "  ")
		if values == nil {
			values = []T{}
		}
		return enc.Encode(values)
	case output.ModeMarkdown:
		for _, v := range values {
			_, _ = fmt.Fprintf(r.Out(), "- %v\n", v)
		}
		return nil
	default:
		for _, v := range values {
			_, _ = fmt.Fprintf(r.Out(), "%v\n", v)
		}
		return nil
	}
}
