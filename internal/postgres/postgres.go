package postgres

import (
	"context"
	"database/sql"
	"time"

	"record-shop/internal/sqlstore"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	"github.com/twitsprout/tools/clock"
	"github.com/twitsprout/tools/postgres"
)

type Config postgres.Config

// Postgres represents the type to interact with the PostgreSQL database.
type Postgres struct {
	*sqlstore.Store
	db *postgres.DB
}

// New creates a new Postgres store. Calls made through the twitsprout DB are
// bounded by timeout when it is positive, and failures are logged at debug
// level with their label.
func New(c Config, timeout time.Duration, logger tools.Logger) (*Postgres, error) {
	db, err := postgres.NewDB(postgres.Config(c),
		postgres.WithTimeout(timeout),
		postgres.WithClock(&clock.Default{}),
		postgres.WithOnComplete(func(ctx context.Context, label string, start time.Time, err error) error {
			if err != nil {
				logger.Debug("postgres call failed",
					"label", label,
					"duration", time.Since(start),
					"details", err.Error(),
				)
			}
			return err
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	p := &Postgres{db: db}
	sqldb := sqlx.NewDb(db.SQLDB(), "postgres")
	p.Store = sqlstore.New(sqldb, sqlstore.Dollar, nil, p.do)
	return p, nil
}

// do runs fn through the twitsprout DB so every album query gets the call
// timeout, the completion hook and the prepared statement cache.
func (p *Postgres) do(ctx context.Context, label string, fn func(context.Context, sqlstore.Querier) error) error {
	return p.db.Do(ctx, label, func(ctx context.Context, conn postgres.Conn) error {
		return fn(ctx, prepared{conn})
	})
}

// prepared issues statements through the connection's prepared statement
// cache.
type prepared struct {
	conn postgres.Conn
}

func (p prepared) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return p.conn.ExecPrepared(ctx, query, args...)
}

func (p prepared) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return p.conn.QueryPrepared(ctx, query, args...)
}

// Ping checks the database connection.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Do(ctx, "ping", func(ctx context.Context, conn postgres.Conn) error {
		return conn.PingContext(ctx)
	})
}

// Close releases the connection pool and any cached prepared statements.
func (p *Postgres) Close() error {
	return p.db.Close()
}
