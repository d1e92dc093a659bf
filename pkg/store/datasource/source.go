package datasource

import (
	"database/sql"
	"errors"
)

// Source is an opened data source: a connection pool and the dialect to talk to it
type Source struct {
	DB      *sql.DB
	Dialect Dialect

	closers []func() error
}

func NewSource(db *sql.DB, dialect Dialect, closers ...func() error) *Source {
	return &Source{
		DB:      db,
		Dialect: dialect,
		closers: closers,
	}
}

// Close releases the pool and any driver resources opened alongside it.
func (s *Source) Close() error {
	var errs []error
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
