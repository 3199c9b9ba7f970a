package port

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"ghcnd/obsdb"
	"ghcnd/utils"
)

type Config struct {
	Path     string   `arg:"positional,required" help:"Directory containing the .dly station files"`
	Stations []string `arg:"-s" help:"Optional space separated list of station IDs"`
	Elements []string `arg:"-e" help:"Optional space separated list of element codes"`
	FromYear int      `arg:"--from-year" help:"Import data only from this year onwards"`
	ToYear   int      `arg:"--to-year" help:"Import data only up to this year"`
	Offsets  string   `help:"CSV file with per-element ISO-8601 obstime offsets"`
	Verbose  bool     `arg:"-v" help:"Increase verbosity level"`
}

func (Config) Description() string {
	return `Import GHCN-daily station files into the observation database.
The following environment variable needs to be set:
    - "GHCN_CONN_STRING"`
}

func (config *Config) Execute() {
	// The connection string may come from a .env file instead of the environment
	if err := godotenv.Load(); err != nil && config.Verbose {
		slog.Info(err.Error())
	}

	slog.Info("Import started!")

	pool, err := pgxpool.New(context.TODO(), os.Getenv(obsdb.CONN_ENV_VAR))
	if err != nil {
		slog.Error(fmt.Sprint("Could not connect to the observation database: ", err))
		return
	}
	defer pool.Close()

	offsets, err := obsdb.CacheElemOffsets(config.Offsets)
	if err != nil {
		slog.Error(fmt.Sprint("Could not load obstime offsets: ", err))
		return
	}

	files, err := os.ReadDir(config.Path)
	if err != nil {
		slog.Error(err.Error())
		return
	}

	var available []string
	for _, file := range files {
		if station, ok := stationID(file); ok {
			available = append(available, station)
		}
	}
	stations := utils.FilterSlice(config.Stations, available, "Station '%v' has no .dly file in the directory, skipping")

	rowsInserted := config.importStations(stations, offsets, pool)

	outputStr := fmt.Sprintf("%v total rows inserted", rowsInserted)
	slog.Info(outputStr)
	fmt.Println(outputStr)
}

// stationID extracts the station identifier from a `<STATION>.dly` file name.
func stationID(file os.DirEntry) (string, bool) {
	if file.IsDir() || !strings.HasSuffix(file.Name(), ".dly") {
		return "", false
	}
	return strings.TrimSuffix(file.Name(), ".dly"), true
}
