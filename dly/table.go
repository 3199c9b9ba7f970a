// Package dly parses GHCN-daily station files (.dly) into a normalized
// per-day table and provides filtering and gap interpolation over it.
//
// A .dly file packs up to 31 daily values into one fixed-width line per
// station/year/month/element. Load unrolls each line into one row per real
// calendar day, so downstream code never sees the padding slots of short
// months or the -9999 sentinel.
package dly

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
)

// DayRow is one observation for one calendar day. A nil Value means the
// observation is missing.
type DayRow struct {
	Year    int16
	Month   int8
	Day     int8
	Element string
	Value   *float32
}

// LoadOptions restricts what Load keeps from the file.
type LoadOptions struct {
	// Inclusive year bounds, nil means unbounded
	StartYear *int16
	EndYear   *int16
	// Keep the raw -9999 sentinel as a real value instead of treating it
	// as missing
	KeepMissing bool
}

// Table holds the unrolled rows of one .dly file in file order.
type Table struct {
	rows []DayRow
}

// Load reads a .dly file, decoding and unrolling every line. Records outside
// the year bounds are dropped; an empty result is a valid empty table. A line
// that cannot be decoded fails the whole load with a *FormatError.
func Load(path string, opts LoadOptions) (*Table, error) {
	if opts.StartYear != nil && opts.EndYear != nil && *opts.EndYear < *opts.StartYear {
		return nil, fmt.Errorf("%w (start %d, end %d)", ErrInvalidYearRange, *opts.StartYear, *opts.EndYear)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var rows []DayRow
	var lineNum, records int

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		rec, err := DecodeRecord(lineNum, line)
		if err != nil {
			return nil, err
		}
		records++

		if opts.StartYear != nil && rec.Year < *opts.StartYear {
			continue
		}
		if opts.EndYear != nil && rec.Year > *opts.EndYear {
			continue
		}

		rows = append(rows, unroll(rec, opts.KeepMissing)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	slog.Info(fmt.Sprintf("%s: %d records unrolled into %d rows", path, records, len(rows)))
	return &Table{rows: rows}, nil
}

// Rows returns the full row view. The view shares the table's backing array:
// interpolating it mutates the table.
func (t *Table) Rows() []DayRow {
	return t.rows
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns is the column-major form of a view, five equal-length slices.
type Columns struct {
	Year    []int16
	Month   []int8
	Day     []int8
	Element []string
	Value   []*float32
}

// SplitColumns converts a view to column-major form for consumers that want
// one sequence per column (plotting, exporters). It never mutates the view.
func SplitColumns(view []DayRow) Columns {
	cols := Columns{
		Year:    make([]int16, len(view)),
		Month:   make([]int8, len(view)),
		Day:     make([]int8, len(view)),
		Element: make([]string, len(view)),
		Value:   make([]*float32, len(view)),
	}
	for i, row := range view {
		cols.Year[i] = row.Year
		cols.Month[i] = row.Month
		cols.Day[i] = row.Day
		cols.Element[i] = row.Element
		cols.Value[i] = row.Value
	}
	return cols
}
