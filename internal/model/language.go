package model

import (
	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/gosnews/gosnews/internal/validation"
)

// LangQuery is embedded by every request that returns localized content.
// An empty lang means the default language; anything unsupported is a 400.
type LangQuery struct {
	Lang string `query:"lang" json:"lang" validate:"omitempty,lang"`
}

func (q LangQuery) Language() string {
	return i18n.OrDefault(q.Lang)
}

func (q *LangQuery) Validate() error {
	return validation.Struct(q)
}

type IDRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (r *IDRequest) Validate() error {
	return validation.Struct(r)
}

type IDLangRequest struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
	LangQuery
}

func (r *IDLangRequest) Validate() error {
	return validation.Struct(r)
}

// EmptyRequest is used by endpoints that take no input.
type EmptyRequest struct{}

func (r *EmptyRequest) Validate() error {
	return nil
}
