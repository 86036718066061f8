// Package repository holds the SQL behind every resource. Repositories
// return model records and wrap errors with the table they came from so
// that sqlerr can turn them into HTTP errors.
package repository

import (
	"context"
	"strings"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// conditions accumulates WHERE clauses that reference named arguments.
type conditions struct {
	clauses []string
	args    pgx.NamedArgs
}

func newConditions() *conditions {
	return &conditions{args: pgx.NamedArgs{}}
}

func (c *conditions) add(clause string, args pgx.NamedArgs) {
	c.clauses = append(c.clauses, clause)
	for k, v := range args {
		c.args[k] = v
	}
}

func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// likePattern escapes LIKE wildcards in s and wraps it in %.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

func cacheOrEmpty(c model.TranslationCache) model.TranslationCache {
	if c == nil {
		return model.TranslationCache{}
	}
	return c
}
