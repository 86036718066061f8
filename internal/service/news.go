package service

import (
	"context"
	"strconv"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/rs/zerolog"
)

// RelatedNewsLimit is the number of related items on a news detail.
const RelatedNewsLimit = 4

type NewsService struct {
	store  NewsStore
	loc    *localizer
	queue  *warmQueue
	logger *zerolog.Logger
}

func NewNewsService(store NewsStore, loc *localizer, queue *warmQueue, logger *zerolog.Logger) *NewsService {
	return &NewsService{
		store:  store,
		loc:    loc,
		queue:  queue,
		logger: logger,
	}
}

// applyCategory reads value as a category id when numeric, otherwise as
// a slug.
func applyCategory(filter *model.NewsFilter, value string) {
	if value == "" {
		return
	}
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		filter.CategoryID = &id
		return
	}
	filter.CategorySlug = value
}

// List returns a page of published news in the requested language.
func (s *NewsService) List(ctx context.Context, q *model.ListNewsQuery) (*model.PaginatedResponse[model.LocalizedNews], error) {
	page, pageSize, offset := q.Limits()

	filter := model.NewsFilter{
		Search:        q.Search,
		OnlyPublished: true,
		Limit:         pageSize,
		Offset:        offset,
	}
	applyCategory(&filter, q.Category)

	items, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := model.NewPaginatedResponse(s.loc.newsList(ctx, items, q.Language()), total, page, pageSize)
	return &resp, nil
}

// Featured returns the newest featured news.
func (s *NewsService) Featured(ctx context.Context, lang string, limit int) ([]model.LocalizedNews, error) {
	items, _, err := s.store.List(ctx, model.NewsFilter{OnlyPublished: true, OnlyFeatured: true, Limit: limit})
	if err != nil {
		return nil, err
	}
	return s.loc.newsList(ctx, items, lang), nil
}

func (s *NewsService) Latest(ctx context.Context, lang string, limit int) ([]model.LocalizedNews, error) {
	items, _, err := s.store.List(ctx, model.NewsFilter{OnlyPublished: true, Limit: limit})
	if err != nil {
		return nil, err
	}
	return s.loc.newsList(ctx, items, lang), nil
}

func (s *NewsService) MostViewed(ctx context.Context, lang string, limit int) ([]model.LocalizedNews, error) {
	items, err := s.store.MostViewed(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.loc.newsList(ctx, items, lang), nil
}

func (s *NewsService) published(ctx context.Context, id int64) (*model.News, error) {
	n, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !n.IsPublished {
		return nil, errs.NewNotFoundError("News not found", true, nil)
	}
	return n, nil
}

// Get returns one published news item in lang.
func (s *NewsService) Get(ctx context.Context, id int64, lang string) (*model.LocalizedNews, error) {
	n, err := s.published(ctx, id)
	if err != nil {
		return nil, err
	}

	items := s.loc.newsList(ctx, []model.News{*n}, lang)
	return &items[0], nil
}

// Detail returns a news item together with related news from the same
// category, and counts the view.
func (s *NewsService) Detail(ctx context.Context, id int64, lang string) (*model.NewsDetail, error) {
	n, err := s.published(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.IncrementViews(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("news_id", id).Msg("failed to count news view")
	} else {
		n.ViewsCount++
	}

	related, _, err := s.store.List(ctx, model.NewsFilter{
		CategoryID:    n.CategoryID,
		OnlyPublished: true,
		ExcludeID:     n.ID,
		Limit:         RelatedNewsLimit,
	})
	if err != nil {
		return nil, err
	}

	items := s.loc.newsList(ctx, append([]model.News{*n}, related...), lang)
	return &model.NewsDetail{
		News:    items[0],
		Related: items[1:],
	}, nil
}

// AdminList returns news in every state, untranslated.
func (s *NewsService) AdminList(ctx context.Context, q *model.ListNewsQuery) (*model.PaginatedResponse[model.News], error) {
	page, pageSize, offset := q.Limits()

	filter := model.NewsFilter{Search: q.Search, Limit: pageSize, Offset: offset}
	applyCategory(&filter, q.Category)

	items, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := model.NewPaginatedResponse(items, total, page, pageSize)
	return &resp, nil
}

func (s *NewsService) AdminGet(ctx context.Context, id int64) (*model.News, error) {
	return s.store.Get(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, payload *model.SaveNewsRequest) (*model.News, error) {
	id, err := s.store.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("news_id", id).Msg("news created")
	s.queue.schedule(ctx, job.KindNews, id)
	return s.store.Get(ctx, id)
}

func (s *NewsService) Update(ctx context.Context, payload *model.SaveNewsRequest) (*model.News, error) {
	if err := s.store.Update(ctx, payload); err != nil {
		return nil, err
	}

	s.queue.schedule(ctx, job.KindNews, payload.ID)
	return s.store.Get(ctx, payload.ID)
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("news_id", id).Msg("news deleted")
	return nil
}
