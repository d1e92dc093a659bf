package datasource

import (
	"context"
	"fmt"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/de-tools/travel-atlas/pkg/store/duckdb"
)

// OpenDuckDB opens an embedded DuckDB file (profile key: path, default :memory:).
func OpenDuckDB(_ context.Context, profile domain.Profile) (*Source, error) {
	path := profile.Get("path")
	if path == "" {
		path = ":memory:"
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: path})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	dialect := Dialect{Name: string(domain.DriverDuckDB), Placeholders: PlaceholderDollar, Schema: profile.Schema}
	return NewSource(db, dialect), nil
}
