package dly

import (
	"fmt"
	"strconv"
	"strings"
)

// Byte layout of one .dly line, see section III of
// https://www1.ncdc.noaa.gov/pub/data/ghcn/daily/readme.txt:
// | station (11) | year (4) | month (2) | element (4) | 31 x [ value (5) | mflag/qflag/sflag (1 each) ] |
const (
	stationWidth = 11
	yearWidth    = 4
	monthWidth   = 2
	elementWidth = 4
	valueWidth   = 5
	flagsWidth   = 3

	headerWidth = stationWidth + yearWidth + monthWidth + elementWidth
	groupWidth  = valueWidth + flagsWidth
	lineWidth   = headerWidth + 31*groupWidth
)

// MissingValue is the on-disk sentinel meaning "no observation".
const MissingValue = -9999

// MonthlyRecord is one decoded .dly line: a single station/year/month/element
// combination with 31 positional daily values. Slots past the actual length
// of the month hold MissingValue and are dropped when the record is unrolled.
type MonthlyRecord struct {
	Station string
	Year    int16
	Month   int8
	Element string
	Values  [31]int32
}

// DecodeRecord decodes a single fixed-width line. The quality flags trailing
// each daily value are not kept. lineNum is only used for error reporting.
func DecodeRecord(lineNum int, line string) (MonthlyRecord, error) {
	if len(line) < lineWidth {
		return MonthlyRecord{}, &FormatError{
			Line:   lineNum,
			Reason: fmt.Sprintf("expected at least %d bytes, got %d", lineWidth, len(line)),
		}
	}

	year, err := decodeInt(line[stationWidth : stationWidth+yearWidth])
	if err != nil {
		return MonthlyRecord{}, &FormatError{Line: lineNum, Reason: "year: " + err.Error()}
	}

	month, err := decodeInt(line[stationWidth+yearWidth : headerWidth-elementWidth])
	if err != nil {
		return MonthlyRecord{}, &FormatError{Line: lineNum, Reason: "month: " + err.Error()}
	}
	if month < 1 || month > 12 {
		return MonthlyRecord{}, &FormatError{Line: lineNum, Reason: fmt.Sprintf("month %d out of range", month)}
	}

	rec := MonthlyRecord{
		Station: strings.TrimSpace(line[:stationWidth]),
		Year:    int16(year),
		Month:   int8(month),
		Element: line[headerWidth-elementWidth : headerWidth],
	}

	for i := 0; i < 31; i++ {
		offset := headerWidth + i*groupWidth
		val, err := decodeInt(line[offset : offset+valueWidth])
		if err != nil {
			return MonthlyRecord{}, &FormatError{
				Line:   lineNum,
				Reason: fmt.Sprintf("day %d value: %s", i+1, err),
			}
		}
		rec.Values[i] = int32(val)
	}

	return rec, nil
}

func decodeInt(field string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(field), 10, 32)
}
