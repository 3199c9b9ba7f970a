// Package obsdb bulk-inserts unrolled daily observations into the
// observation warehouse (a Postgres database).
package obsdb

import "time"

const CONN_ENV_VAR string = "GHCN_CONN_STRING"

// Struct mimicking the `public.daily` table
type Obs struct {
	// GHCN station identifier, e.g. "USW00094728"
	Station string
	// Four-character element code, e.g. "TMAX"
	Element string
	// Time of observation. Nominally midnight UTC of the calendar day,
	// possibly shifted by a per-element offset
	Obstime time.Time
	// Observation value, nil when the station reported nothing that day
	Value *float32
}

func (o *Obs) ToRow() []any {
	return []any{o.Station, o.Element, o.Obstime, o.Value}
}
