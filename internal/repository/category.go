package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `c.id, c.created_at, c.slug, c.name, c.description, c.source_language,
	c.cached_translations, c.cache_version, c.is_active`

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	stmt := `SELECT ` + categoryColumns + ` FROM categories c`
	if !includeInactive {
		stmt += ` WHERE c.is_active`
	}
	stmt += ` ORDER BY c.name, c.id`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list categories query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:categories: %w", err)
	}

	if err := attachCategoryTranslations(ctx, r.db, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CategoryRepository) Get(ctx context.Context, id int64) (*model.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE c.id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get category query for id=%d: %w", id, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
	if err != nil {
		return nil, sqlerr.InTable("categories", fmt.Errorf("failed to collect row from table:categories for id=%d: %w", id, err))
	}

	items := []model.Category{item}
	if err := attachCategoryTranslations(ctx, r.db, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (r *CategoryRepository) SaveCachedTranslations(ctx context.Context, id, version int64, cache model.TranslationCache) error {
	return saveCache(ctx, r.db, "categories", id, version, cache)
}

func (r *CategoryRepository) Create(ctx context.Context, payload *model.SaveCategoryRequest) (int64, error) {
	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		stmt := `INSERT INTO categories (slug, name, description, source_language, is_active)
			VALUES (@slug, @name, @description, @source_language, @is_active)
			RETURNING id`
		if err := tx.QueryRow(ctx, stmt, categoryArgs(payload)).Scan(&id); err != nil {
			return fmt.Errorf("failed to insert category: %w", err)
		}
		return replaceCategoryTranslations(ctx, tx, id, payload.Translations)
	})
	if err != nil {
		return 0, sqlerr.InTable("categories", err)
	}
	return id, nil
}

func (r *CategoryRepository) Update(ctx context.Context, payload *model.SaveCategoryRequest) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		args := categoryArgs(payload)
		args["id"] = payload.ID

		stmt := `UPDATE categories SET
				slug = @slug,
				name = @name,
				description = @description,
				source_language = @source_language,
				is_active = @is_active,
				cached_translations = '{}'::jsonb,
				cache_version = cache_version + 1
			WHERE id = @id`
		tag, err := tx.Exec(ctx, stmt, args)
		if err != nil {
			return fmt.Errorf("failed to update category id=%d: %w", payload.ID, err)
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return replaceCategoryTranslations(ctx, tx, payload.ID, payload.Translations)
	})
	return sqlerr.InTable("categories", err)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "categories", id)
}

func categoryArgs(payload *model.SaveCategoryRequest) pgx.NamedArgs {
	return pgx.NamedArgs{
		"slug":            payload.Slug,
		"name":            payload.Name,
		"description":     payload.Description,
		"source_language": payload.SourceLanguage,
		"is_active":       payload.IsActive,
	}
}

func replaceCategoryTranslations(ctx context.Context, tx pgx.Tx, categoryID int64, inputs []model.CategoryTranslationInput) error {
	langs := make([]string, len(inputs))
	for i, in := range inputs {
		langs[i] = in.Lang
	}

	_, err := tx.Exec(ctx, `DELETE FROM category_translations WHERE category_id = @category_id AND NOT (lang = ANY(@langs))`,
		pgx.NamedArgs{"category_id": categoryID, "langs": langs})
	if err != nil {
		return fmt.Errorf("failed to prune category translations: %w", err)
	}

	for _, in := range inputs {
		_, err := tx.Exec(ctx, `INSERT INTO category_translations (category_id, lang, name)
			VALUES (@category_id, @lang, @name)
			ON CONFLICT (category_id, lang) DO UPDATE SET name = EXCLUDED.name`,
			pgx.NamedArgs{"category_id": categoryID, "lang": in.Lang, "name": in.Name})
		if err != nil {
			return sqlerr.InTable("category_translations", fmt.Errorf("failed to save %s translation: %w", in.Lang, err))
		}
	}

	return nil
}

// loadCategories fetches categories by id, with translations, keyed by id.
func loadCategories(ctx context.Context, db querier, ids []int64) (map[int64]*model.Category, error) {
	out := make(map[int64]*model.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := db.Query(ctx, `SELECT `+categoryColumns+` FROM categories c WHERE c.id = ANY(@ids)`, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("failed to execute categories by id query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:categories: %w", err)
	}

	if err := attachCategoryTranslations(ctx, db, items); err != nil {
		return nil, err
	}

	for i := range items {
		out[items[i].ID] = &items[i]
	}
	return out, nil
}

func attachCategoryTranslations(ctx context.Context, db querier, items []model.Category) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}

	rows, err := db.Query(ctx,
		`SELECT id, category_id, lang, name FROM category_translations WHERE category_id = ANY(@ids) ORDER BY id`,
		pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("failed to execute category translations query: %w", err)
	}

	translations, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CategoryTranslation])
	if err != nil {
		return fmt.Errorf("failed to collect rows from table:category_translations: %w", err)
	}

	byCategory := make(map[int64][]model.CategoryTranslation, len(items))
	for _, t := range translations {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t)
	}
	for i := range items {
		items[i].Translations = byCategory[items[i].ID]
	}
	return nil
}
