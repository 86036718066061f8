package service

import (
	"context"
	"strings"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/shopspring/decimal"
)

type DebtService struct {
	store DebtStore
}

func NewDebtService(store DebtStore) *DebtService {
	return &DebtService{store: store}
}

// List looks debts up by INN or name.
func (s *DebtService) List(ctx context.Context, q *model.ListDebtsQuery) (*model.PaginatedResponse[model.Debt], error) {
	page, pageSize, offset := q.Limits()

	items, total, err := s.store.List(ctx, model.DebtFilter{
		Search:   strings.TrimSpace(q.Search),
		Status:   q.Status,
		DebtType: q.DebtType,
		Limit:    pageSize,
		Offset:   offset,
	})
	if err != nil {
		return nil, err
	}

	resp := model.NewPaginatedResponse(items, total, page, pageSize)
	return &resp, nil
}

func (s *DebtService) Get(ctx context.Context, id int64) (*model.Debt, error) {
	return s.store.Get(ctx, id)
}

// Summary returns per-status totals and the sum of unpaid debt.
func (s *DebtService) Summary(ctx context.Context) ([]model.DebtSummary, decimal.Decimal, error) {
	rows, err := s.store.Summary(ctx)
	if err != nil {
		return nil, decimal.Zero, err
	}

	outstanding := decimal.Zero
	for _, row := range rows {
		if row.Status != model.DebtStatusPaid {
			outstanding = outstanding.Add(row.Total)
		}
	}
	return rows, outstanding, nil
}

func (s *DebtService) Create(ctx context.Context, payload *model.SaveDebtRequest) (*model.Debt, error) {
	return s.store.Create(ctx, payload)
}

func (s *DebtService) Update(ctx context.Context, payload *model.SaveDebtRequest) (*model.Debt, error) {
	return s.store.Update(ctx, payload)
}

func (s *DebtService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
