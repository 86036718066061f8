package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const debtColumns = `id, created_at, inn, full_name, debt_amount, debt_type, status, description`

type DebtRepository struct {
	db *pgxpool.Pool
}

func NewDebtRepository(db *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{db: db}
}

func debtConditions(filter model.DebtFilter) *conditions {
	c := newConditions()
	if filter.Search != "" {
		c.add("(inn = @inn OR full_name ILIKE @name)",
			pgx.NamedArgs{"inn": filter.Search, "name": likePattern(filter.Search)})
	}
	if filter.Status != "" {
		c.add("status = @status", pgx.NamedArgs{"status": filter.Status})
	}
	if filter.DebtType != "" {
		c.add("debt_type = @debt_type", pgx.NamedArgs{"debt_type": filter.DebtType})
	}
	return c
}

func (r *DebtRepository) List(ctx context.Context, filter model.DebtFilter) ([]model.Debt, int, error) {
	c := debtConditions(filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM debts`+c.where(), c.args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count debts: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	c.args["limit"] = limit
	c.args["offset"] = filter.Offset

	rows, err := r.db.Query(ctx,
		`SELECT `+debtColumns+` FROM debts`+c.where()+` ORDER BY created_at DESC, id DESC LIMIT @limit OFFSET @offset`,
		c.args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute list debts query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Debt])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect rows from table:debts: %w", err)
	}
	return items, total, nil
}

func (r *DebtRepository) Get(ctx context.Context, id int64) (*model.Debt, error) {
	rows, err := r.db.Query(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get debt query for id=%d: %w", id, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Debt])
	if err != nil {
		return nil, sqlerr.InTable("debts", fmt.Errorf("failed to collect row from table:debts for id=%d: %w", id, err))
	}
	return &item, nil
}

// Summary totals debts per status.
func (r *DebtRepository) Summary(ctx context.Context) ([]model.DebtSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*)::int AS count, COALESCE(SUM(debt_amount), 0) AS total
		FROM debts GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute debt summary query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.DebtSummary])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:debts: %w", err)
	}
	return items, nil
}

func (r *DebtRepository) Create(ctx context.Context, payload *model.SaveDebtRequest) (*model.Debt, error) {
	stmt := `INSERT INTO debts (inn, full_name, debt_amount, debt_type, status, description)
		VALUES (@inn, @full_name, @debt_amount, @debt_type, @status, @description)
		RETURNING ` + debtColumns

	rows, err := r.db.Query(ctx, stmt, debtArgs(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to execute create debt query for inn=%s: %w", payload.INN, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Debt])
	if err != nil {
		return nil, sqlerr.InTable("debts", fmt.Errorf("failed to collect row from table:debts: %w", err))
	}
	return &item, nil
}

func (r *DebtRepository) Update(ctx context.Context, payload *model.SaveDebtRequest) (*model.Debt, error) {
	args := debtArgs(payload)
	args["id"] = payload.ID

	stmt := `UPDATE debts SET
			inn = @inn,
			full_name = @full_name,
			debt_amount = @debt_amount,
			debt_type = @debt_type,
			status = @status,
			description = @description
		WHERE id = @id
		RETURNING ` + debtColumns

	rows, err := r.db.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update debt query for id=%d: %w", payload.ID, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Debt])
	if err != nil {
		return nil, sqlerr.InTable("debts", fmt.Errorf("failed to collect row from table:debts for id=%d: %w", payload.ID, err))
	}
	return &item, nil
}

func (r *DebtRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "debts", id)
}

func debtArgs(payload *model.SaveDebtRequest) pgx.NamedArgs {
	return pgx.NamedArgs{
		"inn":         payload.INN,
		"full_name":   payload.FullName,
		"debt_amount": payload.DebtAmount,
		"debt_type":   payload.DebtType,
		"status":      payload.Status,
		"description": payload.Description,
	}
}
