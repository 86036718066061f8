package model

import (
	"github.com/gosnews/gosnews/internal/validation"
)

type Partner struct {
	Base
	Name  string `json:"name" db:"name"`
	Image string `json:"image" db:"image"`
	Link  string `json:"link" db:"link"`
}

type SavePartnerRequest struct {
	ID    int64  `param:"id" json:"-"`
	Name  string `json:"name" validate:"required,max=255"`
	Image string `json:"image" validate:"max=500"`
	Link  string `json:"link" validate:"omitempty,url,max=1000"`
}

func (r *SavePartnerRequest) Validate() error {
	return validation.Struct(r)
}
