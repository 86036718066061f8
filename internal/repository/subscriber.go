package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const subscriberColumns = `id, created_at, email, phone, lang`

type SubscriberRepository struct {
	db *pgxpool.Pool
}

func NewSubscriberRepository(db *pgxpool.Pool) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

func (r *SubscriberRepository) Create(ctx context.Context, email, phone, lang string) (*model.Subscriber, error) {
	rows, err := r.db.Query(ctx, `INSERT INTO subscribers (email, phone, lang)
		VALUES (@email, @phone, @lang)
		RETURNING `+subscriberColumns,
		pgx.NamedArgs{"email": email, "phone": phone, "lang": lang})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create subscriber query: %w", err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Subscriber])
	if err != nil {
		return nil, sqlerr.InTable("subscribers", fmt.Errorf("failed to collect row from table:subscribers: %w", err))
	}
	return &item, nil
}

// List returns subscribers newest first and the total count. search
// matches email or phone.
func (r *SubscriberRepository) List(ctx context.Context, search string, limit, offset int) ([]model.Subscriber, int, error) {
	c := newConditions()
	if search != "" {
		c.add("(email ILIKE @search OR phone ILIKE @search)", pgx.NamedArgs{"search": likePattern(search)})
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subscribers`+c.where(), c.args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	c.args["limit"] = limit
	c.args["offset"] = offset
	rows, err := r.db.Query(ctx,
		`SELECT `+subscriberColumns+` FROM subscribers`+c.where()+` ORDER BY created_at DESC, id DESC LIMIT @limit OFFSET @offset`,
		c.args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute list subscribers query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Subscriber])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect rows from table:subscribers: %w", err)
	}
	return items, total, nil
}
