package duckdb

import (
	"context"
	"database/sql"
)

// seedTxKey carries the transaction a Writer batch runs in.
type seedTxKey struct{}

// WithTransaction makes Writer inserts made with ctx join tx.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, seedTxKey{}, tx)
}

// GetTransaction returns the batch transaction, or nil when inserts should run on the pool.
func GetTransaction(ctx context.Context) *sql.Tx {
	if tx, ok := ctx.Value(seedTxKey{}).(*sql.Tx); ok {
		return tx
	}
	return nil
}
