package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const UsersTableSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id VARCHAR PRIMARY KEY,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`
const BookingsTableSchema = `
	CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR PRIMARY KEY,
		user_id VARCHAR,
		status VARCHAR,
		booking_type VARCHAR,
		persons INTEGER,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

// amount is DOUBLE rather than DECIMAL so SUM results scan as float64.
const PaymentsTableSchema = `
	CREATE TABLE IF NOT EXISTS payments (
		id VARCHAR PRIMARY KEY,
		booking_id VARCHAR,
		status VARCHAR,
		amount DOUBLE NOT NULL DEFAULT 0,
		payment_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	UsersTableSchema,
	BookingsTableSchema,
	PaymentsTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
