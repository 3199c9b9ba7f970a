package dly

import "time"

// Work around to return reference to consts
func addr[T any](t T) *T {
	return &t
}

// daysInMonth uses the stdlib date normalization (day 0 of the next month
// is the last day of this one), which takes care of leap years.
func daysInMonth(year int16, month int8) int {
	return time.Date(int(year), time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// unroll expands a monthly record into one row per real calendar day of its
// month, day numbers strictly increasing from 1. Value slots past the length
// of the month are dropped. Unless keepMissing is set, the MissingValue
// sentinel becomes a nil value here, once, at load time.
func unroll(rec MonthlyRecord, keepMissing bool) []DayRow {
	n := daysInMonth(rec.Year, rec.Month)

	rows := make([]DayRow, 0, n)
	for day := 1; day <= n; day++ {
		raw := rec.Values[day-1]

		var val *float32
		if raw != MissingValue || keepMissing {
			val = addr(float32(raw))
		}

		rows = append(rows, DayRow{
			Year:    rec.Year,
			Month:   rec.Month,
			Day:     int8(day),
			Element: rec.Element,
			Value:   val,
		})
	}
	return rows
}
