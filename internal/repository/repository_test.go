package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestConditions(t *testing.T) {
	c := newConditions()
	if c.where() != "" {
		t.Errorf("empty where() = %q", c.where())
	}

	c.add("n.is_published", nil)
	c.add("n.category_id = @category_id", pgx.NamedArgs{"category_id": int64(3)})

	if got := c.where(); got != " WHERE n.is_published AND n.category_id = @category_id" {
		t.Errorf("where() = %q", got)
	}
	if c.args["category_id"] != int64(3) {
		t.Errorf("args = %v", c.args)
	}
}

func TestLikePattern(t *testing.T) {
	tests := map[string]string{
		"nukus":   "%nukus%",
		" 50% ":   `%50\%%`,
		"a_b":     `%a\_b%`,
		`back\sl`: `%back\\sl%`,
	}
	for in, want := range tests {
		if got := likePattern(in); got != want {
			t.Errorf("likePattern(%q) = %q, want %q", in, got, want)
		}
	}
}

// execRecorder is a querier that records Exec calls.
type execRecorder struct {
	sql  string
	args pgx.NamedArgs
}

func (e *execRecorder) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql = sql
	if len(args) == 1 {
		e.args, _ = args[0].(pgx.NamedArgs)
	}
	return pgconn.NewCommandTag("UPDATE 0"), nil
}

func (e *execRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (e *execRecorder) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }

func TestSaveCacheOnlyWritesTheVersionItWasBuiltFrom(t *testing.T) {
	db := &execRecorder{}
	cache := model.TranslationCache{"title_kaa": "Jańalıq"}

	if err := saveCache(context.Background(), db, "news", 10, 3, cache); err != nil {
		t.Fatalf("saveCache() error = %v", err)
	}

	if !strings.Contains(db.sql, "WHERE id = @id AND cache_version = @version") {
		t.Errorf("sql = %q, want a cache_version guard", db.sql)
	}
	if db.args["id"] != int64(10) || db.args["version"] != int64(3) {
		t.Errorf("args = %v", db.args)
	}
}
