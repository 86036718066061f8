package model

import (
	"github.com/gosnews/gosnews/internal/validation"
)

type Category struct {
	Base
	Slug               string           `json:"slug" db:"slug"`
	Name               string           `json:"name" db:"name"`
	Description        string           `json:"description" db:"description"`
	SourceLanguage     string           `json:"source_language" db:"source_language"`
	CachedTranslations TranslationCache `json:"cached_translations" db:"cached_translations"`
	CacheVersion       int64            `json:"-" db:"cache_version"`
	IsActive           bool             `json:"is_active" db:"is_active"`

	Translations []CategoryTranslation `json:"translations" db:"-"`
}

type CategoryTranslation struct {
	ID         int64  `json:"id" db:"id"`
	CategoryID int64  `json:"category_id" db:"category_id"`
	Lang       string `json:"lang" db:"lang"`
	Name       string `json:"name" db:"name"`
}

// LocalizedCategory is a category rendered in one language.
type LocalizedCategory struct {
	ID          int64  `json:"id"`
	Lang        string `json:"lang"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ListCategoriesQuery struct {
	LangQuery
	IncludeInactive bool `query:"include_inactive" json:"include_inactive"`
}

func (q *ListCategoriesQuery) Validate() error {
	return validation.Struct(q)
}

type CategoryTranslationInput struct {
	Lang string `json:"lang" validate:"required,lang"`
	Name string `json:"name" validate:"required,max=100"`
}

type SaveCategoryRequest struct {
	ID             int64                      `param:"id" json:"-"`
	Slug           string                     `json:"slug" validate:"required,max=100,slug"`
	Name           string                     `json:"name" validate:"required,max=100"`
	Description    string                     `json:"description"`
	SourceLanguage string                     `json:"source_language" validate:"required,lang"`
	IsActive       bool                       `json:"is_active"`
	Translations   []CategoryTranslationInput `json:"translations" validate:"dive"`
}

func (r *SaveCategoryRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	langs := make([]string, len(r.Translations))
	for i, t := range r.Translations {
		langs[i] = t.Lang
	}
	return validation.UniqueLanguages("translations", langs)
}
