package sqlite

import (
	"context"
	_ "embed"
	"strings"

	"record-shop/internal/sqlstore"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools/clock"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// SQLite is an album store in a single SQLite database file. The path
// ":memory:" keeps the database in memory for the life of the store.
type SQLite struct {
	*sqlstore.Store
	sqldb *sqlx.DB
}

// New opens the database at path and creates the albums table if needed.
func New(ctx context.Context, path string, c clock.Clock) (*SQLite, error) {
	sqldb, err := sqlx.Open("sqlite", dsn(path))
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	// One connection serializes writers and keeps ":memory:" databases alive.
	sqldb.SetMaxOpenConns(1)

	if _, err := sqldb.ExecContext(ctx, schema); err != nil {
		_ = sqldb.Close()
		return nil, errors.Wrap(err, "create sqlite schema")
	}
	return &SQLite{
		Store: sqlstore.New(sqldb, sqlstore.Question, c, nil),
		sqldb: sqldb,
	}, nil
}

// dsn asks the driver to write timestamps in the SQLite text format, which it
// parses back into time.Time for TIMESTAMP columns.
func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_time_format=sqlite"
}

// Ping checks the database connection.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.sqldb.PingContext(ctx)
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.sqldb.Close()
}
