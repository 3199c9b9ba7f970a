package port

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"ghcnd/dly"
	"ghcnd/obsdb"
	"ghcnd/utils"
)

func (config *Config) importStations(stations []string, offsets obsdb.OffsetMap, pool *pgxpool.Pool) (rowsInserted int64) {
	bar := utils.NewBar(len(stations), "Importing stations")
	bar.RenderBlank()
	for _, station := range stations {
		count, err := config.importStation(station, offsets, pool)
		if err == nil {
			rowsInserted += count
		}
		bar.Add(1)
	}
	return rowsInserted
}

func (config *Config) importStation(station string, offsets obsdb.OffsetMap, pool *pgxpool.Pool) (int64, error) {
	logStr := fmt.Sprintf("%v: ", station)

	table, err := dly.Load(filepath.Join(config.Path, station+".dly"), config.loadOptions())
	if err != nil {
		slog.Error(logStr + err.Error())
		return 0, err
	}

	obs := config.toObs(station, table.Rows(), offsets)
	if len(obs) == 0 {
		if config.Verbose {
			slog.Info(logStr + "no rows to insert")
		}
		return 0, nil
	}

	count, err := obsdb.InsertObs(obs, pool, logStr)
	if err != nil {
		slog.Error(logStr + "failed data bulk insertion - " + err.Error())
		return 0, err
	}
	return count, nil
}

func (config *Config) loadOptions() dly.LoadOptions {
	var opts dly.LoadOptions
	if config.FromYear > 0 {
		start := int16(config.FromYear)
		opts.StartYear = &start
	}
	if config.ToYear > 0 {
		end := int16(config.ToYear)
		opts.EndYear = &end
	}
	return opts
}

// toObs converts day rows to database rows, keeping missing observations as
// NULL values. The nominal obstime is midnight UTC of the calendar day,
// shifted by the element's offset when one is configured.
func (config *Config) toObs(station string, rows []dly.DayRow, offsets obsdb.OffsetMap) []obsdb.Obs {
	obs := make([]obsdb.Obs, 0, len(rows))
	for _, row := range rows {
		if len(config.Elements) > 0 && !slices.Contains(config.Elements, row.Element) {
			continue
		}

		obstime := time.Date(int(row.Year), time.Month(row.Month), int(row.Day), 0, 0, 0, 0, time.UTC)
		if offset, ok := offsets[row.Element]; ok {
			if shifted, ok := offset.AddTo(obstime); ok {
				obstime = shifted
			}
		}

		obs = append(obs, obsdb.Obs{
			Station: station,
			Element: row.Element,
			Obstime: obstime,
			Value:   row.Value,
		})
	}
	return obs
}
