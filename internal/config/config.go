package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the optional prefix for every variable, e.g. RECORDSHOP_ADDR.
// The unprefixed names are accepted too.
const Prefix = "recordshop"

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Variables holds the service configuration read from the environment.
type Variables struct {
	Addr            string        `required:"true" envconfig:"addr"`
	AppName         string        `default:"record-shop" envconfig:"app_name"`
	LogLevel        string        `default:"info" envconfig:"log_level"`
	StorageDriver   string        `default:"postgres" envconfig:"storage_driver"`
	PostgresHost    string        `envconfig:"postgres_host"`
	PostgresPort    int           `envconfig:"postgres_port"`
	PostgresDB      string        `envconfig:"postgres_db"`
	PostgresUser    string        `envconfig:"postgres_user"`
	PostgresPass    string        `envconfig:"postgres_pass"`
	PostgresTimeout time.Duration `default:"10s" envconfig:"postgres_timeout"`
	SQLitePath      string        `default:"record-shop.db" envconfig:"sqlite_path"`
	ShutdownTimeout time.Duration `default:"15s" envconfig:"shutdown_timeout"`
}

// Load reads Variables from the environment and checks the settings the
// selected storage driver needs.
func Load() (Variables, error) {
	var v Variables
	if err := envconfig.Process(Prefix, &v); err != nil {
		return v, err
	}
	return v, v.validate()
}

func (v Variables) validate() error {
	switch v.StorageDriver {
	case DriverPostgres:
		if v.PostgresHost == "" || v.PostgresDB == "" || v.PostgresUser == "" {
			return fmt.Errorf("storage driver %q requires POSTGRES_HOST, POSTGRES_DB and POSTGRES_USER", v.StorageDriver)
		}
	case DriverSQLite:
		if v.SQLitePath == "" {
			return fmt.Errorf("storage driver %q requires SQLITE_PATH", v.StorageDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", v.StorageDriver)
	}
	return nil
}

// String omits the Postgres password.
func (v Variables) String() string {
	return fmt.Sprintf("addr=%s app_name=%s log_level=%s storage_driver=%s postgres_host=%s postgres_port=%d postgres_db=%s postgres_user=%s sqlite_path=%s",
		v.Addr, v.AppName, v.LogLevel, v.StorageDriver, v.PostgresHost, v.PostgresPort, v.PostgresDB, v.PostgresUser, v.SQLitePath)
}
