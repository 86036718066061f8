package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/gosnews/gosnews/internal/model"
)

type CategoryService struct {
	store CategoryStore
	loc   *localizer
	queue *warmQueue
}

func NewCategoryService(store CategoryStore, loc *localizer, queue *warmQueue) *CategoryService {
	return &CategoryService{
		store: store,
		loc:   loc,
		queue: queue,
	}
}

func (s *CategoryService) List(ctx context.Context, q *model.ListCategoriesQuery) ([]model.LocalizedCategory, error) {
	items, err := s.store.List(ctx, q.IncludeInactive)
	if err != nil {
		return nil, err
	}
	return s.loc.categoryList(ctx, items, q.Language()), nil
}

// Get returns an active category in lang.
func (s *CategoryService) Get(ctx context.Context, id int64, lang string) (*model.LocalizedCategory, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, errs.NewNotFoundError("Category not found", true, nil)
	}
	return s.loc.category(ctx, c, lang), nil
}

func (s *CategoryService) AdminList(ctx context.Context) ([]model.Category, error) {
	return s.store.List(ctx, true)
}

func (s *CategoryService) AdminGet(ctx context.Context, id int64) (*model.Category, error) {
	return s.store.Get(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, payload *model.SaveCategoryRequest) (*model.Category, error) {
	id, err := s.store.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.queue.schedule(ctx, job.KindCategory, id)
	return s.store.Get(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, payload *model.SaveCategoryRequest) (*model.Category, error) {
	if err := s.store.Update(ctx, payload); err != nil {
		return nil, err
	}
	s.queue.schedule(ctx, job.KindCategory, payload.ID)
	return s.store.Get(ctx, payload.ID)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
