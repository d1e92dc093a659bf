package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/travel-atlas/pkg/models/store"
)

// Writer inserts booking-platform records into an embedded database. It is used to
// seed local demo data and test fixtures; the report engine itself only reads.
type Writer struct {
	db *sql.DB
}

func NewWriter(db *sql.DB) (*Writer, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Writer{db: db}, nil
}

// InTx runs fn inside one transaction carried in the context.
func (w *Writer) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(WithTransaction(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (w *Writer) AddUsers(ctx context.Context, users []store.User) error {
	return w.insert(ctx, `INSERT INTO users (id, created_at) VALUES (?, ?)`, len(users), func(i int) []any {
		u := users[i]
		return []any{u.ID, u.CreatedAt}
	})
}

func (w *Writer) AddBookings(ctx context.Context, bookings []store.Booking) error {
	query := `INSERT INTO bookings (id, user_id, status, booking_type, persons, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	return w.insert(ctx, query, len(bookings), func(i int) []any {
		b := bookings[i]
		return []any{b.ID, nullable(b.UserID), nullable(b.Status), nullable(b.BookingType), b.Persons, b.CreatedAt}
	})
}

func (w *Writer) AddPayments(ctx context.Context, payments []store.Payment) error {
	query := `INSERT INTO payments (id, booking_id, status, amount, payment_date) VALUES (?, ?, ?, ?, ?)`
	return w.insert(ctx, query, len(payments), func(i int) []any {
		p := payments[i]
		return []any{p.ID, nullable(p.BookingID), nullable(p.Status), p.Amount.InexactFloat64(), p.PaymentDate}
	})
}

func (w *Writer) insert(ctx context.Context, query string, n int, row func(i int) []any) error {
	if n == 0 {
		return nil
	}

	var stmt *sql.Stmt
	var err error
	if tx := GetTransaction(ctx); tx != nil {
		stmt, err = tx.PrepareContext(ctx, query)
	} else {
		stmt, err = w.db.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			return fmt.Errorf("insert record: %w", err)
		}
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
