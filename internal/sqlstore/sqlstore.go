package sqlstore

import (
	"context"
	"database/sql"
	"regexp"
	"strings"
	"time"

	cl "record-shop/pkg/catelog"

	sq "github.com/Masterminds/squirrel"

	"github.com/jmoiron/sqlx"
	"github.com/twitsprout/tools/clock"
)

var matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
var matchAllCap = regexp.MustCompile("([a-z0-9])([A-Z])")

// ToSnakeCase maps an Album field name to its column name.
func ToSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// Placeholder styles for the supported engines.
var (
	Dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	Question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// Querier executes a single statement.
type Querier interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
}

// Runner invokes fn for the operation named label. The Querier handed to fn
// must not be retained after fn returns.
type Runner func(ctx context.Context, label string, fn func(context.Context, Querier) error) error

// Store implements catelog.Repository on top of any SQL database holding the
// albums table.
type Store struct {
	sqldb *sqlx.DB
	sb    sq.StatementBuilderType
	clock clock.Clock
	run   Runner
}

type QueryValues struct {
	query string
	args  []interface{}
}

// New returns a Store issuing queries built with sb against db. A nil clock
// uses the system time. A nil run executes every query directly on db.
func New(db *sqlx.DB, sb sq.StatementBuilderType, c clock.Clock, run Runner) *Store {
	if c == nil {
		c = &clock.Default{}
	}
	if db != nil {
		db.MapperFunc(ToSnakeCase)
	}
	s := &Store{sqldb: db, sb: sb, clock: c, run: run}
	if s.run == nil {
		s.run = s.direct
	}
	return s
}

func (s *Store) direct(ctx context.Context, _ string, fn func(context.Context, Querier) error) error {
	return fn(ctx, s.sqldb)
}

// DB returns the underlying connection pool.
func (s *Store) DB() *sqlx.DB {
	return s.sqldb
}

func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

// queryAlbums runs qv under label and scans every returned row.
func (s *Store) queryAlbums(ctx context.Context, label string, qv QueryValues) ([]cl.Album, error) {
	var albums []cl.Album
	err := s.run(ctx, label, func(ctx context.Context, q Querier) error {
		rows, err := q.QueryContext(ctx, qv.query, qv.args...)
		if err != nil {
			return err
		}
		albums, err = s.scanAlbums(rows)
		return err
	})
	return albums, err
}

func (s *Store) scanAlbums(rows *sql.Rows) ([]cl.Album, error) {
	r := &sqlx.Rows{Rows: rows, Mapper: s.sqldb.Mapper}
	defer r.Close()

	var albums []cl.Album
	for r.Next() {
		var a cl.Album
		if err := r.StructScan(&a); err != nil {
			return nil, err
		}
		albums = append(albums, a)
	}
	return albums, r.Err()
}
