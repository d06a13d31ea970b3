package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"record-shop/internal/config"
	"record-shop/internal/http"
	"record-shop/internal/memory"
	"record-shop/internal/postgres"
	"record-shop/internal/sqlite"
	cl "record-shop/pkg/catelog"
	"syscall"

	"cloud.google.com/go/compute/metadata"
	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	"github.com/twitsprout/tools/lifecycle"
	"github.com/twitsprout/tools/zap"
)

var version string

var v config.Variables

func init() {
	if metadata.OnGCE() {
		port := os.Getenv("PORT")
		err := os.Setenv("ADDR", ":"+port)
		if err != nil {
			log.Fatal(err)
		}
	}

	var err error
	v, err = config.Load()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Env variables :", v)
}

// store is what every storage driver provides.
type store interface {
	cl.Repository
	Ping(ctx context.Context) error
}

func main() {
	logger := zap.New(v.AppName, version, os.Stdout)
	if err := logger.SetLevel(v.LogLevel); err != nil {
		logger.Error("failed to set log level", "error", err.Error())
	}

	ctx := context.Background()

	st, err := newStore(ctx, v, logger)
	if err != nil {
		logger.Error("failed to open album store",
			"storage_driver", v.StorageDriver,
			"details", err.Error(),
		)
		os.Exit(1)
	}
	if c, ok := st.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				logger.Warn("failed to close album store", "details", err.Error())
			}
		}()
	}

	lc, ctx := lifecycle.New(ctx, logger)
	lc.Start("record-shop root context", func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	h := http.Handler{
		Logger:     logger,
		Version:    version,
		AlbumStore: cl.NewService(st, logger),
		Pinger:     st,
		AppName:    v.AppName,
	}
	server := httputils.NewServer(v.Addr, h.Handler())
	lc.StartServer(server)
	lc.StartSignals(syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	_ = lc.Wait(v.ShutdownTimeout)
}

func newStore(ctx context.Context, v config.Variables, logger tools.Logger) (store, error) {
	switch v.StorageDriver {
	case config.DriverSQLite:
		return sqlite.New(ctx, v.SQLitePath, nil)
	case config.DriverMemory:
		return memory.New(nil), nil
	case config.DriverPostgres:
		return newPostgres(v, logger)
	}
	return nil, errors.Errorf("unknown storage driver %q", v.StorageDriver)
}

func newPostgres(v config.Variables, logger tools.Logger) (*postgres.Postgres, error) {
	pgConfig := postgres.Config{
		Host:       v.PostgresHost,
		Name:       v.PostgresDB,
		Password:   v.PostgresPass,
		Username:   v.PostgresUser,
		DisableSSL: true,
	}
	// Only use a Postgres port if one was provided
	if v.PostgresPort > 0 {
		pgConfig.Port = v.PostgresPort
	}
	return postgres.New(pgConfig, v.PostgresTimeout, logger)
}
