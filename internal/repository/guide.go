package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const guideColumns = `g.id, g.created_at, g.guide_type, g.link, g.preview_url, g.source_language, g.cached_translations, g.cache_version`

const guideTranslationColumns = `id, guide_id, lang, title, short_title, description, short_description`

type GuideRepository struct {
	db *pgxpool.Pool
}

func NewGuideRepository(db *pgxpool.Pool) *GuideRepository {
	return &GuideRepository{db: db}
}

func guideConditions(filter model.GuideFilter) *conditions {
	c := newConditions()
	if filter.GuideType != "" {
		c.add("g.guide_type = @guide_type", pgx.NamedArgs{"guide_type": filter.GuideType})
	}
	if filter.Lang != "" {
		c.add("EXISTS (SELECT 1 FROM guide_translations t WHERE t.guide_id = g.id AND t.lang = @lang)",
			pgx.NamedArgs{"lang": filter.Lang})
	}
	return c
}

// List returns guides newest first.
func (r *GuideRepository) List(ctx context.Context, filter model.GuideFilter) ([]model.Guide, error) {
	c := guideConditions(filter)
	stmt := `SELECT ` + guideColumns + ` FROM guides g` + c.where() + ` ORDER BY g.created_at DESC, g.id DESC`
	if filter.Limit > 0 {
		stmt += ` LIMIT @limit`
		c.args["limit"] = filter.Limit
	}

	rows, err := r.db.Query(ctx, stmt, c.args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list guides query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Guide])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:guides: %w", err)
	}

	if err := r.attach(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Latest returns the newest guide of guideType that has a translation in
// lang.
func (r *GuideRepository) Latest(ctx context.Context, guideType, lang string) (*model.Guide, error) {
	items, err := r.List(ctx, model.GuideFilter{GuideType: guideType, Lang: lang, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, sqlerr.InTable("guides", pgx.ErrNoRows)
	}
	return &items[0], nil
}

func (r *GuideRepository) Get(ctx context.Context, id int64) (*model.Guide, error) {
	rows, err := r.db.Query(ctx, `SELECT `+guideColumns+` FROM guides g WHERE g.id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get guide query for id=%d: %w", id, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Guide])
	if err != nil {
		return nil, sqlerr.InTable("guides", fmt.Errorf("failed to collect row from table:guides for id=%d: %w", id, err))
	}

	items := []model.Guide{item}
	if err := r.attach(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (r *GuideRepository) attach(ctx context.Context, items []model.Guide) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+guideTranslationColumns+` FROM guide_translations WHERE guide_id = ANY(@ids) ORDER BY id`,
		pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("failed to execute guide translations query: %w", err)
	}

	translations, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.GuideTranslation])
	if err != nil {
		return fmt.Errorf("failed to collect rows from table:guide_translations: %w", err)
	}

	byGuide := make(map[int64][]model.GuideTranslation, len(items))
	for _, t := range translations {
		byGuide[t.GuideID] = append(byGuide[t.GuideID], t)
	}
	for i := range items {
		items[i].Translations = byGuide[items[i].ID]
	}
	return nil
}

func (r *GuideRepository) SaveCachedTranslations(ctx context.Context, id, version int64, cache model.TranslationCache) error {
	return saveCache(ctx, r.db, "guides", id, version, cache)
}

func (r *GuideRepository) Create(ctx context.Context, payload *model.SaveGuideRequest) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		stmt := `INSERT INTO guides (guide_type, link, preview_url, source_language)
			VALUES (@guide_type, @link, @preview_url, @source_language)
			RETURNING id`
		if err := tx.QueryRow(ctx, stmt, guideArgs(payload)).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert guide: %w", err)
		}
		return replaceGuideTranslations(ctx, tx, id, payload.Translations)
	})
	if err != nil {
		return 0, sqlerr.InTable("guides", err)
	}
	return id, nil
}

func (r *GuideRepository) Update(ctx context.Context, payload *model.SaveGuideRequest) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := guideArgs(payload)
		args["id"] = payload.ID

		stmt := `UPDATE guides SET
				guide_type = @guide_type,
				link = @link,
				preview_url = @preview_url,
				source_language = @source_language,
				cached_translations = '{}'::jsonb,
				cache_version = cache_version + 1
			WHERE id = @id`
		tag, err := tx.Exec(ctx, stmt, args)
		if err != nil {
			return fmt.Errorf("failed to update guide id=%d: %w", payload.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return replaceGuideTranslations(ctx, tx, payload.ID, payload.Translations)
	})
	return sqlerr.InTable("guides", err)
}

func (r *GuideRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "guides", id)
}

func guideArgs(payload *model.SaveGuideRequest) pgx.NamedArgs {
	return pgx.NamedArgs{
		"guide_type":      payload.GuideType,
		"link":            payload.Link,
		"preview_url":     payload.PreviewURL,
		"source_language": payload.SourceLanguage,
	}
}

func replaceGuideTranslations(ctx context.Context, tx pgx.Tx, guideID int64, inputs []model.GuideTranslationInput) error {
	langs := make([]string, len(inputs))
	for i, in := range inputs {
		langs[i] = in.Lang
	}

	_, err := tx.Exec(ctx, `DELETE FROM guide_translations WHERE guide_id = @guide_id AND NOT (lang = ANY(@langs))`,
		pgx.NamedArgs{"guide_id": guideID, "langs": langs})
	if err != nil {
		return fmt.Errorf("failed to prune guide translations: %w", err)
	}

	stmt := `INSERT INTO guide_translations (guide_id, lang, title, short_title, description, short_description)
		VALUES (@guide_id, @lang, @title, @short_title, @description, @short_description)
		ON CONFLICT (guide_id, lang) DO UPDATE SET
			title = EXCLUDED.title,
			short_title = EXCLUDED.short_title,
			description = EXCLUDED.description,
			short_description = EXCLUDED.short_description`

	for _, in := range inputs {
		_, err := tx.Exec(ctx, stmt, pgx.NamedArgs{
			"guide_id":          guideID,
			"lang":              in.Lang,
			"title":             in.Title,
			"short_title":       in.ShortTitle,
			"description":       in.Description,
			"short_description": in.ShortDescription,
		})
		if err != nil {
			return sqlerr.InTable("guide_translations", fmt.Errorf("failed to save %s translation: %w", in.Lang, err))
		}
	}

	return nil
}
