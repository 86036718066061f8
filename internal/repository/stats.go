package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Counts(ctx context.Context) (*model.Counts, error) {
	rows, err := r.db.Query(ctx, `SELECT
		(SELECT COUNT(*) FROM news)::int AS news,
		(SELECT COUNT(*) FROM news WHERE is_published)::int AS published_news,
		(SELECT COUNT(*) FROM categories)::int AS categories,
		(SELECT COUNT(*) FROM leaders)::int AS leaders,
		(SELECT COUNT(*) FROM debts)::int AS debts,
		(SELECT COUNT(*) FROM guides)::int AS guides,
		(SELECT COUNT(*) FROM partners)::int AS partners,
		(SELECT COUNT(*) FROM subscribers)::int AS subscribers`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute counts query: %w", err)
	}

	counts, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Counts])
	if err != nil {
		return nil, fmt.Errorf("failed to collect counts: %w", err)
	}
	return &counts, nil
}
