package model

import (
	"github.com/gosnews/gosnews/internal/validation"
)

type Leader struct {
	Base
	LeaderName     string `json:"leader_name" db:"leader_name"`
	LeaderPosition string `json:"leader_position" db:"leader_position"`
	LeaderImage    string `json:"leader_image" db:"leader_image"`
	LeaderMail     string `json:"leader_mail" db:"leader_mail"`
	LeaderPhone    string `json:"leader_phone" db:"leader_phone"`
	Region         string `json:"region" db:"region"`
	RegionLink     string `json:"region_link" db:"region_link"`

	// RegionEmbed is derived from RegionLink on every save.
	RegionEmbed string `json:"region_embed" db:"region_embed"`
}

type ListLeadersQuery struct {
	Region string `query:"region" json:"region" validate:"max=100"`
}

func (q *ListLeadersQuery) Validate() error {
	return validation.Struct(q)
}

type SaveLeaderRequest struct {
	ID             int64  `param:"id" json:"-"`
	LeaderName     string `json:"leader_name" validate:"required,max=255"`
	LeaderPosition string `json:"leader_position" validate:"max=255"`
	LeaderImage    string `json:"leader_image" validate:"max=500"`
	LeaderMail     string `json:"leader_mail" validate:"omitempty,email"`
	LeaderPhone    string `json:"leader_phone" validate:"max=50"`
	Region         string `json:"region" validate:"max=100"`
	RegionLink     string `json:"region_link" validate:"omitempty,url,max=1000"`
}

func (r *SaveLeaderRequest) Validate() error {
	return validation.Struct(r)
}
