package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/databricks/databricks-sdk-go/config"
	dbsql "github.com/databricks/databricks-sql-go"
	"github.com/de-tools/travel-atlas/pkg/models/domain"
)

// OpenDatabricks connects to a Databricks SQL warehouse. Host and token are resolved
// through the SDK's unified auth chain, so they may come from the profile, from
// DATABRICKS_* environment variables or from a ~/.databrickscfg profile.
//
// Profile keys: http_path (required); host, token, databricks_profile, catalog.
func OpenDatabricks(_ context.Context, profile domain.Profile) (*Source, error) {
	httpPath := profile.Get("http_path")
	if httpPath == "" {
		return nil, fmt.Errorf("databricks profile %q has no http_path", profile.Name)
	}

	cfg := &config.Config{
		Profile: profile.Get("databricks_profile"),
		Host:    profile.Get("host"),
		Token:   profile.Get("token"),
	}
	if err := cfg.EnsureResolved(); err != nil {
		return nil, fmt.Errorf("resolve databricks config: %w", err)
	}
	if cfg.Host == "" || cfg.Token == "" {
		return nil, fmt.Errorf("databricks profile %q: host and token are required", profile.Name)
	}

	opts := []dbsql.ConnOption{
		dbsql.WithServerHostname(hostname(cfg.Host)),
		dbsql.WithPort(443),
		dbsql.WithHTTPPath(httpPath),
		dbsql.WithAccessToken(cfg.Token),
	}
	if catalog := profile.Get("catalog"); catalog != "" {
		opts = append(opts, dbsql.WithInitialNamespace(catalog, profile.Schema))
	}

	connector, err := dbsql.NewConnector(opts...)
	if err != nil {
		return nil, fmt.Errorf("create databricks connector: %w", err)
	}

	db := sql.OpenDB(connector)
	dialect := Dialect{Name: string(domain.DriverDatabricks), Placeholders: PlaceholderQuestion, Schema: profile.Schema}
	return NewSource(db, dialect), nil
}

func hostname(host string) string {
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimSuffix(host, "/")
}
