package export

import (
	"log/slog"

	"ghcnd/dly"
)

type Config struct {
	Path        string   `arg:"positional,required" help:"Path to the .dly file to export"`
	Output      string   `arg:"-o,--output" help:"Output CSV file, writes to stdout when not set"`
	FromYear    int      `arg:"--from-year" help:"Export data only from this year onwards"`
	ToYear      int      `arg:"--to-year" help:"Export data only up to this year"`
	Filters     []string `arg:"-f,--filter,separate" help:"Filter of the form 'column:operator:literal' (e.g. 'element:eq:TMAX'), can be passed multiple times"`
	Interpolate bool     `arg:"-i" help:"Fill missing values by linear interpolation"`
	Independent string   `default:"day" help:"Column the interpolation runs against"`
	RawUnits    bool     `help:"Keep TMAX and TMIN values in tenths of a degree"`
	KeepMissing bool     `help:"Export the raw -9999 sentinel instead of empty cells"`
}

func (Config) Description() string {
	return `Unroll a GHCN-daily station file into one row per calendar day and write it as CSV.
Filters are applied in order, so the result satisfies all of them.`
}

func (config *Config) Execute() {
	view, err := config.process()
	if err != nil {
		slog.Error(err.Error())
		return
	}

	if err := config.writeCSV(view); err != nil {
		slog.Error(err.Error())
		return
	}
	slog.Info("Export complete!")
}

// process runs the parse -> filter -> interpolate pipeline.
func (config *Config) process() ([]dly.DayRow, error) {
	table, err := dly.Load(config.Path, config.loadOptions())
	if err != nil {
		return nil, err
	}

	filters := make([]dly.Filter, 0, len(config.Filters))
	for _, spec := range config.Filters {
		filter, err := dly.ParseFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}

	view := dly.ApplyAll(table.Rows(), filters)

	if config.Interpolate {
		independent, err := dly.ParseColumn(config.Independent)
		if err != nil {
			return nil, err
		}
		view, err = dly.Interpolate(view, independent, !config.RawUnits)
		if err != nil {
			return nil, err
		}
	}

	return view, nil
}

func (config *Config) loadOptions() dly.LoadOptions {
	opts := dly.LoadOptions{KeepMissing: config.KeepMissing}
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
