package domain

import "fmt"

type Driver string

const (
	DriverPostgres   Driver = "postgres"
	DriverDuckDB     Driver = "duckdb"
	DriverSnowflake  Driver = "snowflake"
	DriverDatabricks Driver = "databricks"
)

// Profile describes one configured data source
type Profile struct {
	Name   string
	Driver Driver
	// Schema optionally qualifies the users/bookings/payments tables.
	Schema string
	// Settings carries the remaining driver specific keys (dsn, host, token, ...).
	Settings map[string]string
}

func (p Profile) Get(key string) string {
	return p.Settings[key]
}

func (p Profile) String() string {
	return fmt.Sprintf("%s:%s", p.Driver, p.Name)
}
