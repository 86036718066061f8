package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const partnerColumns = `id, created_at, name, image, link`

type PartnerRepository struct {
	db *pgxpool.Pool
}

func NewPartnerRepository(db *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) List(ctx context.Context) ([]model.Partner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+partnerColumns+` FROM partners ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list partners query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Partner])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:partners: %w", err)
	}
	return items, nil
}

func (r *PartnerRepository) Get(ctx context.Context, id int64) (*model.Partner, error) {
	rows, err := r.db.Query(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get partner query for id=%d: %w", id, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Partner])
	if err != nil {
		return nil, sqlerr.InTable("partners", fmt.Errorf("failed to collect row from table:partners for id=%d: %w", id, err))
	}
	return &item, nil
}

func (r *PartnerRepository) Create(ctx context.Context, payload *model.SavePartnerRequest) (*model.Partner, error) {
	rows, err := r.db.Query(ctx, `INSERT INTO partners (name, image, link)
		VALUES (@name, @image, @link)
		RETURNING `+partnerColumns, partnerArgs(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to execute create partner query for name=%s: %w", payload.Name, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Partner])
	if err != nil {
		return nil, sqlerr.InTable("partners", fmt.Errorf("failed to collect row from table:partners: %w", err))
	}
	return &item, nil
}

func (r *PartnerRepository) Update(ctx context.Context, payload *model.SavePartnerRequest) (*model.Partner, error) {
	args := partnerArgs(payload)
	args["id"] = payload.ID

	rows, err := r.db.Query(ctx, `UPDATE partners SET name = @name, image = @image, link = @link
		WHERE id = @id
		RETURNING `+partnerColumns, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update partner query for id=%d: %w", payload.ID, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Partner])
	if err != nil {
		return nil, sqlerr.InTable("partners", fmt.Errorf("failed to collect row from table:partners for id=%d: %w", payload.ID, err))
	}
	return &item, nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "partners", id)
}

func partnerArgs(payload *model.SavePartnerRequest) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":  payload.Name,
		"image": payload.Image,
		"link":  payload.Link,
	}
}
