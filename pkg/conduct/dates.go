package conduct

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateValue is the outcome of normalizing one date cell. Absence is
// explicit: Date nil means no full calendar date, Month/Day 0 mean unknown.
type DateValue struct {
	Date  *time.Time
	Month int
	Day   int
}

// fullLayouts are the unambiguous full-date forms worksheets use. Numeric
// elements are unpadded so "2024-3-1" and "2024-03-01" both parse.
var fullLayouts = []string{
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2006.1.2",
	"2006/1/2",
	"1/2/2006",
	"2006년 1월 2일",
	"2006년1월2일",
}

// partialLayouts carry a month and day but no year. They resolve to a
// partial date rather than being forced onto an arbitrary year.
var partialLayouts = []string{
	"1/2",
	"1월 2일",
	"1월2일",
}

// trailingDigits matches the digit run anchored at the end of the cell,
// after any trailing non-digit text ("4월 11일" -> "11"). Only the last run
// counts, so the day wins over a leading month.
var trailingDigits = regexp.MustCompile(`(\d{1,2})\D*$`)

// ForwardFill returns a copy of column in which every empty cell inherits
// the nearest preceding non-empty cell's text, scanning top to bottom. The
// first cell stays empty when there is nothing to inherit. Cells are
// considered empty after trimming.
func ForwardFill(column []string) []string {
	filled := make([]string, len(column))
	last := ""
	for i, cell := range column {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			cell = last
		} else {
			last = cell
		}
		filled[i] = cell
	}
	return filled
}

// NormalizeDates resolves a raw date column into one DateValue per row, in
// input order. Forward-fill runs once over the whole column first; each
// cell is then resolved through the fallback chain: full-date parse,
// partial month/day parse, trailing-digit day extraction. A cell that
// survives no step yields a fully absent DateValue.
func NormalizeDates(column []string) []DateValue {
	filled := ForwardFill(column)
	values := make([]DateValue, len(filled))
	for i, cell := range filled {
		values[i] = resolveDate(cell)
	}
	return values
}

func resolveDate(cell string) DateValue {
	if cell == "" {
		return DateValue{}
	}

	for _, layout := range fullLayouts {
		t, err := time.Parse(layout, cell)
		if err != nil {
			continue
		}
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return DateValue{Date: &d, Month: int(t.Month()), Day: t.Day()}
	}

	for _, layout := range partialLayouts {
		t, err := time.Parse(layout, cell)
		if err != nil {
			continue
		}
		return DateValue{Month: int(t.Month()), Day: t.Day()}
	}

	if m := trailingDigits.FindStringSubmatch(cell); m != nil {
		day, err := strconv.Atoi(m[1])
		if err == nil && day >= 1 && day <= 31 {
			return DateValue{Day: day}
		}
	}

	return DateValue{}
}

// SameDate reports whether a and b fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dateOnly truncates t to midnight UTC so range comparisons ignore any
// time-of-day component.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
