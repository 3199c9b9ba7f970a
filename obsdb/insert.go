package obsdb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InsertObs bulk-inserts observation rows with the Postgres COPY protocol.
// logStr prefixes the log lines so concurrent station imports stay readable.
func InsertObs(obs []Obs, pool *pgxpool.Pool, logStr string) (int64, error) {
	size := len(obs)
	count, err := pool.CopyFrom(
		context.TODO(),
		pgx.Identifier{"public", "daily"},
		[]string{"station", "element", "obstime", "obsvalue"},
		pgx.CopyFromSlice(size, func(i int) ([]any, error) {
			return obs[i].ToRow(), nil
		}),
	)
	if err != nil {
		return count, err
	}

	logStr += fmt.Sprintf("%v/%v daily rows inserted", count, size)
	if int(count) != size {
		slog.Warn(logStr)
	} else {
		slog.Info(logStr)
	}
	return count, nil
}
