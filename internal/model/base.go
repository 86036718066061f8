// Package model holds the database records, the localized views returned
// to clients and the request payloads accepted by the API.
package model

import (
	"time"
)

type Base struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TranslationCache is the jsonb column holding machine translations,
// keyed "<field>_<lang>".
type TranslationCache map[string]string

// Content types with a translation table and a translation cache.
const (
	KindNews     = "news"
	KindGuide    = "guide"
	KindCategory = "category"
)

type PaginatedResponse[T any] struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Results    []T `json:"results"`
}

func NewPaginatedResponse[T any](results []T, total, page, pageSize int) PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return PaginatedResponse[T]{
		Count:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Results:    results,
	}
}

// Pagination defaults for list endpoints.
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
	MaxPage         = 100000
)

// PageQuery is embedded by list requests.
type PageQuery struct {
	Page     int `query:"page" json:"page" validate:"omitempty,min=1,max=100000"`
	PageSize int `query:"page_size" json:"page_size" validate:"omitempty,min=1,max=100"`
}

// Limits returns the effective page, page size and row offset.
func (q PageQuery) Limits() (page, pageSize, offset int) {
	page, pageSize = q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}
