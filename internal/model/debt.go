package model

import (
	"github.com/gosnews/gosnews/internal/validation"
	"github.com/shopspring/decimal"
)

const (
	DebtTypeTax     = "tax"
	DebtTypeUtility = "utility"
	DebtTypeLoan    = "loan"
	DebtTypeFine    = "fine"
	DebtTypeOther   = "other"

	DebtStatusActive  = "active"
	DebtStatusOverdue = "overdue"
	DebtStatusPaid    = "paid"
)

var (
	DebtTypes    = []string{DebtTypeTax, DebtTypeUtility, DebtTypeLoan, DebtTypeFine, DebtTypeOther}
	DebtStatuses = []string{DebtStatusActive, DebtStatusOverdue, DebtStatusPaid}
)

type Debt struct {
	Base
	INN         string          `json:"inn" db:"inn"`
	FullName    string          `json:"full_name" db:"full_name"`
	DebtAmount  decimal.Decimal `json:"debt_amount" db:"debt_amount"`
	DebtType    string          `json:"debt_type" db:"debt_type"`
	Status      string          `json:"status" db:"status"`
	Description string          `json:"description" db:"description"`
}

type DebtFilter struct {
	Search   string
	Status   string
	DebtType string
	Limit    int
	Offset   int
}

type ListDebtsQuery struct {
	PageQuery

	// Search matches the INN exactly or the name partially.
	Search   string `query:"search" json:"search" validate:"max=200"`
	Status   string `query:"status" json:"status" validate:"omitempty,oneof=active overdue paid"`
	DebtType string `query:"debt_type" json:"debt_type" validate:"omitempty,oneof=tax utility loan fine other"`
}

func (q *ListDebtsQuery) Validate() error {
	return validation.Struct(q)
}

type SaveDebtRequest struct {
	ID          int64           `param:"id" json:"-"`
	INN         string          `json:"inn" validate:"required,numeric,min=9,max=14"`
	FullName    string          `json:"full_name" validate:"required,max=255"`
	DebtAmount  decimal.Decimal `json:"debt_amount"`
	DebtType    string          `json:"debt_type" validate:"required,oneof=tax utility loan fine other"`
	Status      string          `json:"status" validate:"required,oneof=active overdue paid"`
	Description string          `json:"description"`
}

func (r *SaveDebtRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.DebtAmount.IsNegative() {
		return validation.CustomValidationErrors{
			{Field: "debt_amount", Message: "must not be negative"},
		}
	}
	return nil
}

// DebtSummary aggregates debts sharing a status.
type DebtSummary struct {
	Status string          `json:"status" db:"status"`
	Count  int             `json:"count" db:"count"`
	Total  decimal.Decimal `json:"total" db:"total"`
}
