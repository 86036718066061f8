package model

import (
	"time"

	"github.com/gosnews/gosnews/internal/validation"
)

type News struct {
	Base
	CategoryID         *int64           `json:"category_id" db:"category_id"`
	SourceLanguage     string           `json:"source_language" db:"source_language"`
	VideoURL           string           `json:"video_url" db:"video_url"`
	IsPublished        bool             `json:"is_published" db:"is_published"`
	IsFeatured         bool             `json:"is_featured" db:"is_featured"`
	ViewsCount         int              `json:"views_count" db:"views_count"`
	CachedTranslations TranslationCache `json:"cached_translations" db:"cached_translations"`
	CacheVersion       int64            `json:"-" db:"cache_version"`
	UpdatedAt          time.Time        `json:"updated_at" db:"updated_at"`

	Translations []NewsTranslation `json:"translations" db:"-"`
	Category     *Category         `json:"category,omitempty" db:"-"`
}

type NewsTranslation struct {
	ID               int64  `json:"id" db:"id"`
	NewsID           int64  `json:"news_id" db:"news_id"`
	Lang             string `json:"lang" db:"lang"`
	Image            string `json:"image" db:"image"`
	Title            string `json:"title" db:"title"`
	ShortTitle       string `json:"short_title" db:"short_title"`
	Description      string `json:"description" db:"description"`
	ShortDescription string `json:"short_description" db:"short_description"`
}

// Fields returns the translatable text of the row keyed by field name.
func (t NewsTranslation) Fields() map[string]string {
	return map[string]string{
		"title":             t.Title,
		"short_title":       t.ShortTitle,
		"description":       t.Description,
		"short_description": t.ShortDescription,
	}
}

// LocalizedNews is a news item rendered in one language. ID and NewsID
// both carry the news id.
type LocalizedNews struct {
	ID               int64              `json:"id"`
	NewsID           int64              `json:"news_id"`
	Lang             string             `json:"lang"`
	Image            string             `json:"image"`
	Title            string             `json:"title"`
	ShortTitle       string             `json:"short_title"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"short_description"`
	Category         *LocalizedCategory `json:"category"`
	VideoURL         string             `json:"video_url"`
	VideoThumbnail   string             `json:"video_thumbnail"`
	IsFeatured       bool               `json:"is_featured"`
	ViewsCount       int                `json:"views_count"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

type NewsDetail struct {
	News    LocalizedNews   `json:"news"`
	Related []LocalizedNews `json:"related"`
}

// NewsFilter narrows news queries in the repository.
type NewsFilter struct {
	CategoryID    *int64
	CategorySlug  string
	Search        string
	OnlyPublished bool
	OnlyFeatured  bool
	ExcludeID     int64
	Limit         int
	Offset        int
}

type ListNewsQuery struct {
	LangQuery
	PageQuery

	// Category accepts a category id or slug.
	Category string `query:"category" json:"category" validate:"max=100"`
	Search   string `query:"search" json:"search" validate:"max=200"`
}

func (q *ListNewsQuery) Validate() error {
	return validation.Struct(q)
}

type NewsTranslationInput struct {
	Lang             string `json:"lang" validate:"required,lang"`
	Image            string `json:"image" validate:"max=500"`
	Title            string `json:"title" validate:"required,max=255"`
	ShortTitle       string `json:"short_title" validate:"max=255"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description" validate:"max=500"`
}

type SaveNewsRequest struct {
	ID             int64                  `param:"id" json:"-"`
	CategoryID     *int64                 `json:"category_id" validate:"omitempty,min=1"`
	SourceLanguage string                 `json:"source_language" validate:"required,lang"`
	VideoURL       string                 `json:"video_url" validate:"omitempty,url"`
	IsPublished    bool                   `json:"is_published"`
	IsFeatured     bool                   `json:"is_featured"`
	Translations   []NewsTranslationInput `json:"translations" validate:"required,min=1,dive"`
}

func (r *SaveNewsRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	langs := make([]string, len(r.Translations))
	for i, t := range r.Translations {
		langs[i] = t.Lang
	}
	return validation.UniqueLanguages("translations", langs)
}
