package export

import (
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"ghcnd/dly"
)

type csvRow struct {
	Year    int16    `csv:"year"`
	Month   int8     `csv:"month"`
	Day     int8     `csv:"day"`
	Element string   `csv:"element"`
	Value   *float32 `csv:"value"`
}

func toCSVRows(view []dly.DayRow) []*csvRow {
	rows := make([]*csvRow, 0, len(view))
	for _, row := range view {
		rows = append(rows, &csvRow{
			Year:    row.Year,
			Month:   row.Month,
			Day:     row.Day,
			Element: row.Element,
			Value:   row.Value,
		})
	}
	return rows
}

func (config *Config) writeCSV(view []dly.DayRow) error {
	var out io.Writer = os.Stdout
	if config.Output != "" {
		file, err := os.Create(config.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file

		slog.Info("Writing day rows to " + config.Output)
	}

	return gocsv.Marshal(toCSVRows(view), out)
}
