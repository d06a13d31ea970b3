package main

import (
	"flag"
	"fmt"
	"log"

	migrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	db     = flag.String("database", "record_shop", "")
	host   = flag.String("host", "localhost:5432", "")
	user   = flag.String("user", "postgres", "")
	pass   = flag.String("password", "", "")
	source = flag.String("source", "file://db/migrations", "migrations source URL")
	down   = flag.Bool("down", false, "roll back every migration instead of applying them")
	steps  = flag.Int("steps", 0, "apply (or with -down roll back) only this many migrations")
)

func main() {
	flag.Parse()
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", *user, *pass, *host, *db)
	m, err := migrate.New(*source, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	if err := run(m); err != nil && err != migrate.ErrNoChange {
		log.Fatal(err)
	}
	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		log.Fatal(err)
	}
	log.Printf("albums schema at version %d (dirty: %t)", version, dirty)
}

func run(m *migrate.Migrate) error {
	switch {
	case *steps > 0 && *down:
		return m.Steps(-*steps)
	case *steps > 0:
		return m.Steps(*steps)
	case *down:
		return m.Down()
	}
	return m.Up()
}
