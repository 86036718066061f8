package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const newsColumns = `n.id, n.created_at, n.category_id, n.source_language, n.video_url,
	n.is_published, n.is_featured, n.views_count, n.cached_translations, n.cache_version, n.updated_at`

const newsTranslationColumns = `id, news_id, lang, image, title, short_title, description, short_description`

type NewsRepository struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db}
}

func newsConditions(filter model.NewsFilter) *conditions {
	c := newConditions()
	if filter.OnlyPublished {
		c.add("n.is_published", nil)
	}
	if filter.OnlyFeatured {
		c.add("n.is_featured", nil)
	}
	if filter.CategoryID != nil {
		c.add("n.category_id = @category_id", pgx.NamedArgs{"category_id": *filter.CategoryID})
	}
	if filter.CategorySlug != "" {
		c.add("n.category_id IN (SELECT id FROM categories WHERE slug = @category_slug)",
			pgx.NamedArgs{"category_slug": filter.CategorySlug})
	}
	if filter.Search != "" {
		c.add(`EXISTS (
			SELECT 1 FROM news_translations t
			WHERE t.news_id = n.id
			AND (t.title ILIKE @search OR t.short_title ILIKE @search OR t.description ILIKE @search)
		)`, pgx.NamedArgs{"search": likePattern(filter.Search)})
	}
	if filter.ExcludeID != 0 {
		c.add("n.id <> @exclude_id", pgx.NamedArgs{"exclude_id": filter.ExcludeID})
	}
	return c
}

// List returns one page of news matching filter, newest first, and the
// number of matches overall.
func (r *NewsRepository) List(ctx context.Context, filter model.NewsFilter) ([]model.News, int, error) {
	c := newsConditions(filter)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM news n`+c.where(), c.args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	c.args["limit"] = limit
	c.args["offset"] = filter.Offset

	stmt := `SELECT ` + newsColumns + ` FROM news n` + c.where() +
		` ORDER BY n.created_at DESC, n.id DESC LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, stmt, c.args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute list news query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.News])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to collect rows from table:news: %w", err)
	}

	if err := r.attach(ctx, items); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// MostViewed returns the published news with the highest view counts.
func (r *NewsRepository) MostViewed(ctx context.Context, limit int) ([]model.News, error) {
	stmt := `SELECT ` + newsColumns + ` FROM news n
		WHERE n.is_published
		ORDER BY n.views_count DESC, n.created_at DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("failed to execute most viewed news query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.News])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:news: %w", err)
	}

	return items, r.attach(ctx, items)
}

func (r *NewsRepository) Get(ctx context.Context, id int64) (*model.News, error) {
	rows, err := r.db.Query(ctx, `SELECT `+newsColumns+` FROM news n WHERE n.id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get news query for id=%d: %w", id, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.News])
	if err != nil {
		return nil, sqlerr.InTable("news", fmt.Errorf("failed to collect row from table:news for id=%d: %w", id, err))
	}

	items := []model.News{item}
	if err := r.attach(ctx, items); err != nil {
		return nil, err
	}

	return &items[0], nil
}

// attach loads translations and categories for items in two queries.
func (r *NewsRepository) attach(ctx context.Context, items []model.News) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	var categoryIDs []int64
	for i, item := range items {
		ids[i] = item.ID
		if item.CategoryID != nil {
			categoryIDs = append(categoryIDs, *item.CategoryID)
		}
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+newsTranslationColumns+` FROM news_translations WHERE news_id = ANY(@ids) ORDER BY id`,
		pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("failed to execute news translations query: %w", err)
	}

	translations, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.NewsTranslation])
	if err != nil {
		return fmt.Errorf("failed to collect rows from table:news_translations: %w", err)
	}

	byNews := make(map[int64][]model.NewsTranslation, len(items))
	for _, t := range translations {
		byNews[t.NewsID] = append(byNews[t.NewsID], t)
	}

	categories, err := loadCategories(ctx, r.db, categoryIDs)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].Translations = byNews[items[i].ID]
		if items[i].CategoryID != nil {
			items[i].Category = categories[*items[i].CategoryID]
		}
	}

	return nil
}

func (r *NewsRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE news SET views_count = views_count + 1 WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to increment views for news id=%d: %w", id, err)
	}
	return nil
}

func (r *NewsRepository) SaveCachedTranslations(ctx context.Context, id, version int64, cache model.TranslationCache) error {
	return saveCache(ctx, r.db, "news", id, version, cache)
}

func (r *NewsRepository) Create(ctx context.Context, payload *model.SaveNewsRequest) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		stmt := `INSERT INTO news (category_id, source_language, video_url, is_published, is_featured)
			VALUES (@category_id, @source_language, @video_url, @is_published, @is_featured)
			RETURNING id`
		if err := tx.QueryRow(ctx, stmt, newsArgs(payload)).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert news: %w", err)
		}
		return replaceNewsTranslations(ctx, tx, id, payload.Translations)
	})
	if err != nil {
		return 0, sqlerr.InTable("news", err)
	}
	return id, nil
}

// Update rewrites the news row and its translations. The translation
// cache is cleared because the source text may have changed.
func (r *NewsRepository) Update(ctx context.Context, payload *model.SaveNewsRequest) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := newsArgs(payload)
		args["id"] = payload.ID

		stmt := `UPDATE news SET
				category_id = @category_id,
				source_language = @source_language,
				video_url = @video_url,
				is_published = @is_published,
				is_featured = @is_featured,
				cached_translations = '{}'::jsonb,
				cache_version = cache_version + 1,
				updated_at = NOW()
			WHERE id = @id`
		tag, err := tx.Exec(ctx, stmt, args)
		if err != nil {
			return fmt.Errorf("failed to update news id=%d: %w", payload.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return replaceNewsTranslations(ctx, tx, payload.ID, payload.Translations)
	})
	return sqlerr.InTable("news", err)
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "news", id)
}

func newsArgs(payload *model.SaveNewsRequest) pgx.NamedArgs {
	return pgx.NamedArgs{
		"category_id":     payload.CategoryID,
		"source_language": payload.SourceLanguage,
		"video_url":       payload.VideoURL,
		"is_published":    payload.IsPublished,
		"is_featured":     payload.IsFeatured,
	}
}

func replaceNewsTranslations(ctx context.Context, tx pgx.Tx, newsID int64, inputs []model.NewsTranslationInput) error {
	langs := make([]string, len(inputs))
	for i, in := range inputs {
		langs[i] = in.Lang
	}

	_, err := tx.Exec(ctx, `DELETE FROM news_translations WHERE news_id = @news_id AND NOT (lang = ANY(@langs))`,
		pgx.NamedArgs{"news_id": newsID, "langs": langs})
	if err != nil {
		return fmt.Errorf("failed to prune news translations: %w", err)
	}

	stmt := `INSERT INTO news_translations (news_id, lang, image, title, short_title, description, short_description)
		VALUES (@news_id, @lang, @image, @title, @short_title, @description, @short_description)
		ON CONFLICT (news_id, lang) DO UPDATE SET
			image = EXCLUDED.image,
			title = EXCLUDED.title,
			short_title = EXCLUDED.short_title,
			description = EXCLUDED.description,
			short_description = EXCLUDED.short_description`

	for _, in := range inputs {
		_, err := tx.Exec(ctx, stmt, pgx.NamedArgs{
			"news_id":           newsID,
			"lang":              in.Lang,
			"image":             in.Image,
			"title":             in.Title,
			"short_title":       in.ShortTitle,
			"description":       in.Description,
			"short_description": in.ShortDescription,
		})
		if err != nil {
			return sqlerr.InTable("news_translations", fmt.Errorf("failed to save %s translation: %w", in.Lang, err))
		}
	}

	return nil
}

// saveCache persists a translation cache built from the row at version.
// The write is dropped when the row was edited since it was read, so old
// translations never come back after an edit. table is always a constant.
func saveCache(ctx context.Context, db querier, table string, id, version int64, cache model.TranslationCache) error {
	_, err := db.Exec(ctx,
		`UPDATE `+table+` SET cached_translations = @cache WHERE id = @id AND cache_version = @version`,
		pgx.NamedArgs{"cache": cacheOrEmpty(cache), "id": id, "version": version})
	if err != nil {
		return fmt.Errorf("failed to save cached translations for %s id=%d: %w", table, id, err)
	}
	return nil
}

// deleteByID removes one row. table is always a constant.
func deleteByID(ctx context.Context, db querier, table string, id int64) error {
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return sqlerr.InTable(table, fmt.Errorf("failed to delete from table:%s id=%d: %w", table, id, err))
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.InTable(table, pgx.ErrNoRows)
	}
	return nil
}
