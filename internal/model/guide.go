package model

import (
	"time"

	"github.com/gosnews/gosnews/internal/validation"
)

const (
	GuideTypeBusiness    = "business"
	GuideTypeAgriculture = "agriculture"
	GuideTypeSocial      = "social"
)

var GuideTypes = []string{GuideTypeBusiness, GuideTypeAgriculture, GuideTypeSocial}

func IsGuideType(s string) bool {
	for _, t := range GuideTypes {
		if t == s {
			return true
		}
	}
	return false
}

type Guide struct {
	Base
	GuideType string `json:"guide_type" db:"guide_type"`
	Link      string `json:"link" db:"link"`

	// PreviewURL defaults to the YouTube thumbnail of Link.
	PreviewURL         string           `json:"preview_url" db:"preview_url"`
	SourceLanguage     string           `json:"source_language" db:"source_language"`
	CachedTranslations TranslationCache `json:"cached_translations" db:"cached_translations"`
	CacheVersion       int64            `json:"-" db:"cache_version"`

	Translations []GuideTranslation `json:"translations" db:"-"`
}

type GuideTranslation struct {
	ID               int64  `json:"id" db:"id"`
	GuideID          int64  `json:"guide_id" db:"guide_id"`
	Lang             string `json:"lang" db:"lang"`
	Title            string `json:"title" db:"title"`
	ShortTitle       string `json:"short_title" db:"short_title"`
	Description      string `json:"description" db:"description"`
	ShortDescription string `json:"short_description" db:"short_description"`
}

func (t GuideTranslation) Fields() map[string]string {
	return map[string]string{
		"title":             t.Title,
		"short_title":       t.ShortTitle,
		"description":       t.Description,
		"short_description": t.ShortDescription,
	}
}

type LocalizedGuide struct {
	ID               int64     `json:"id"`
	GuideID          int64     `json:"guide_id"`
	Lang             string    `json:"lang"`
	Title            string    `json:"title"`
	ShortTitle       string    `json:"short_title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	GuideType        string    `json:"guide_type"`
	Link             string    `json:"link"`
	PreviewURL       string    `json:"preview_url"`
	EmbedURL         string    `json:"embed_url"`
	CreatedAt        time.Time `json:"created_at"`
}

type GuideFilter struct {
	GuideType string
	Limit     int

	// Lang keeps only guides with a translation row in that language.
	Lang string
}

type ListGuidesQuery struct {
	LangQuery
	GuideType string `query:"guide_type" json:"guide_type" validate:"omitempty,oneof=business agriculture social"`
}

func (q *ListGuidesQuery) Validate() error {
	return validation.Struct(q)
}

type GuideTranslationInput struct {
	Lang             string `json:"lang" validate:"required,lang"`
	Title            string `json:"title" validate:"required,max=255"`
	ShortTitle       string `json:"short_title" validate:"max=255"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description" validate:"max=500"`
}

type SaveGuideRequest struct {
	ID             int64                   `param:"id" json:"-"`
	GuideType      string                  `json:"guide_type" validate:"required,oneof=business agriculture social"`
	Link           string                  `json:"link" validate:"required,url,max=1000"`
	PreviewURL     string                  `json:"preview_url" validate:"omitempty,max=1000"`
	SourceLanguage string                  `json:"source_language" validate:"required,lang"`
	Translations   []GuideTranslationInput `json:"translations" validate:"required,min=1,dive"`
}

func (r *SaveGuideRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	langs := make([]string, len(r.Translations))
	for i, t := range r.Translations {
		langs[i] = t.Lang
	}
	return validation.UniqueLanguages("translations", langs)
}
