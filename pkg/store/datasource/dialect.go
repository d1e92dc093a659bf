package datasource

import (
	"fmt"
	"strings"
)

type PlaceholderStyle int

const (
	// PlaceholderDollar renders $1, $2, ... (Postgres, DuckDB).
	PlaceholderDollar PlaceholderStyle = iota
	// PlaceholderQuestion renders ? for every bind (Snowflake, Databricks).
	PlaceholderQuestion
)

// Dialect captures the SQL differences between supported engines that matter
// to the read queries in this repository
type Dialect struct {
	Name         string
	Placeholders PlaceholderStyle
	Schema       string
}

func (d Dialect) Placeholder(n int) string {
	if d.Placeholders == PlaceholderQuestion {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

// Table qualifies name with the configured schema, if any.
func (d Dialect) Table(name string) string {
	schema := strings.TrimSpace(d.Schema)
	if schema == "" {
		return name
	}
	return schema + "." + name
}

// Binder collects bind arguments and hands out matching placeholders, so a value
// used several times in one statement works for both placeholder styles.
type Binder struct {
	dialect Dialect
	args    []any
}

func NewBinder(d Dialect) *Binder {
	return &Binder{dialect: d}
}

func (b *Binder) Bind(v any) string {
	b.args = append(b.args, v)
	return b.dialect.Placeholder(len(b.args))
}

func (b *Binder) Args() []any {
	return b.args
}
