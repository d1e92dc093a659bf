package datasource

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

const (
	defaultMaxConns       = 20
	defaultMinConns       = 2
	defaultConnectRetries = 5
	retryBackoff          = 2 * time.Second
)

// OpenPostgres builds a pgx pool from the profile's dsn and exposes it through database/sql.
// It retries the initial connection to accommodate databases that are still starting up.
//
// Profile keys: dsn (required), max_conns, min_conns, connect_retries.
func OpenPostgres(ctx context.Context, profile domain.Profile) (*Source, error) {
	logger := zerolog.Ctx(ctx)

	dsn := profile.Get("dsn")
	if dsn == "" {
		return nil, fmt.Errorf("postgres profile %q has no dsn", profile.Name)
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(intSetting(profile, "max_conns", defaultMaxConns))
	poolCfg.MinConns = int32(intSetting(profile, "min_conns", defaultMinConns))
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	retries := intSetting(profile, "connect_retries", defaultConnectRetries)
	var pool *pgxpool.Pool
	for attempt := 1; attempt <= retries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
			pool = nil
		}
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("retries", retries).
			Msg("postgres connect attempt failed")

		if attempt == retries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff):
		}
	}
	if pool == nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	dialect := Dialect{Name: string(domain.DriverPostgres), Placeholders: PlaceholderDollar, Schema: profile.Schema}
	return NewSource(db, dialect, func() error {
		pool.Close()
		return nil
	}), nil
}

func intSetting(profile domain.Profile, key string, fallback int) int {
	raw := profile.Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
