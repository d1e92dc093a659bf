package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profilesContent = `[local]
driver = duckdb
path = atlas.db

[production]
driver = postgres
dsn = postgres://atlas:secret@db:5432/travel
schema = public
max_conns = 8

[warehouse]
host = https://dbc-123.cloud.databricks.com
token = dapi-token
http_path = /sql/1.0/warehouses/abc
catalog = main
`

func writeProfiles(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".atlascfg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestProfileRegistry_GetProfiles(t *testing.T) {
	// Given
	registry, err := NewProfileRegistry(writeProfiles(t, profilesContent))
	require.NoError(t, err)

	// When
	profiles, err := registry.GetProfiles(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "duckdb:local", profiles[0].String())
	assert.Equal(t, "postgres:production", profiles[1].String())
	assert.Equal(t, "databricks:warehouse", profiles[2].String())
}

func TestProfileRegistry_GetProfile(t *testing.T) {
	registry, err := NewProfileRegistry(writeProfiles(t, profilesContent))
	require.NoError(t, err)

	profile, err := registry.GetProfile(context.Background(), "production")

	require.NoError(t, err)
	assert.Equal(t, domain.DriverPostgres, profile.Driver)
	assert.Equal(t, "public", profile.Schema)
	assert.Equal(t, "postgres://atlas:secret@db:5432/travel", profile.Get("dsn"))
	assert.Equal(t, "8", profile.Get("max_conns"))
	assert.NotContains(t, profile.Settings, "driver")
	assert.NotContains(t, profile.Settings, "schema")
}

func TestProfileRegistry_Errors(t *testing.T) {
	t.Run("unknown profile", func(t *testing.T) {
		registry, err := NewProfileRegistry(writeProfiles(t, profilesContent))
		require.NoError(t, err)

		_, err = registry.GetProfile(context.Background(), "staging")

		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("section without driver", func(t *testing.T) {
		registry, err := NewProfileRegistry(writeProfiles(t, "[broken]\ndsn = x\n"))
		require.NoError(t, err)

		_, err = registry.GetProfile(context.Background(), "broken")
		assert.ErrorContains(t, err, "no driver")

		_, err = registry.GetProfiles(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewProfileRegistry(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}
