package obsdb

import (
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rickb777/period"
)

// Map of offsets used to shift the nominal midnight obstime for specific elements
type OffsetMap = map[string]period.Period

// CacheElemOffsets reads a CSV file mapping element codes to ISO-8601 periods,
// e.g. "TMAX,PT18H" when maximum temperatures are nominally observed at 18:00.
// An empty path returns an empty map; a configured file that cannot be
// opened or parsed is an error.
func CacheElemOffsets(path string) (OffsetMap, error) {
	cache := make(OffsetMap)
	if path == "" {
		return cache, nil
	}

	type CSVRow struct {
		Element string `csv:"element"`
		Offset  string `csv:"offset"`
	}

	csvfile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer csvfile.Close()

	var csvrows []CSVRow
	if err := gocsv.UnmarshalFile(csvfile, &csvrows); err != nil {
		return nil, err
	}

	for _, row := range csvrows {
		offset, err := period.Parse(row.Offset)
		if err != nil {
			return nil, err
		}
		cache[row.Element] = offset
	}

	slog.Info("Cached obstime offsets for " + path)
	return cache, nil
}
