package duckdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_BootsBookingSchema(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "duckdb-test-*")
	require.NoError(t, err)

	defer func() {
		err := os.RemoveAll(tmpDir)
		if err != nil {
			t.Errorf("failed to cleanup test directory: %v", err)
		}
	}()

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := NewDB(Settings{
		DbPath: dbPath,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		err := db.Close()
		if err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(`INSERT INTO users (id) VALUES (?)`, "user-001")
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO bookings (id, user_id, status, booking_type, persons) VALUES (?, ?, ?, ?, ?)`,
		"booking-001", "user-001", "confirmed", "package", 2,
	)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO payments (id, booking_id, status, amount) VALUES (?, ?, ?, ?)`,
		"payment-001", "booking-001", "completed", 120.5,
	)
	require.NoError(t, err)

	for _, table := range []string{"users", "bookings", "payments"} {
		var count int
		err = db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, table)
	}
}
