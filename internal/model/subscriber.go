package model

import (
	"strings"

	"github.com/gosnews/gosnews/internal/validation"
)

type Subscriber struct {
	Base
	Email string `json:"email" db:"email"`
	Phone string `json:"phone" db:"phone"`
	Lang  string `json:"lang" db:"lang"`
}

type SubscribeRequest struct {
	Email string `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Phone string `json:"phone" form:"phone" validate:"omitempty,e164"`
	Lang  string `json:"lang" form:"lang" validate:"omitempty,lang"`
}

func (r *SubscribeRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.ReplaceAll(strings.TrimSpace(r.Phone), " ", "")

	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.Email == "" && r.Phone == "" {
		return validation.CustomValidationErrors{
			{Field: "email", Message: "email or phone is required"},
		}
	}
	return nil
}

type ListSubscribersQuery struct {
	PageQuery
	Search string `query:"search" json:"search" validate:"max=200"`
}

func (q *ListSubscribersQuery) Validate() error {
	return validation.Struct(q)
}
