package datasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	sf "github.com/snowflakedb/gosnowflake"
)

// OpenSnowflake connects to a Snowflake warehouse holding a replica of the booking tables.
//
// Profile keys: account, user, password (required); database, warehouse, role.
func OpenSnowflake(_ context.Context, profile domain.Profile) (*Source, error) {
	cfg := &sf.Config{
		Account:   profile.Get("account"),
		User:      profile.Get("user"),
		Password:  profile.Get("password"),
		Database:  profile.Get("database"),
		Schema:    profile.Schema,
		Warehouse: profile.Get("warehouse"),
		Role:      profile.Get("role"),
	}
	if cfg.Account == "" || cfg.User == "" {
		return nil, fmt.Errorf("snowflake profile %q requires account and user", profile.Name)
	}

	dsn, err := sf.DSN(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create DSN: %w", err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// The session schema is already set through the DSN.
	dialect := Dialect{Name: string(domain.DriverSnowflake), Placeholders: PlaceholderQuestion}
	return NewSource(db, dialect), nil
}
