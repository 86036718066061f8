package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/hibiken/asynq"
)

// The interfaces below are satisfied by the repository types.

type cacheWriter interface {
	SaveCachedTranslations(ctx context.Context, id, version int64, cache model.TranslationCache) error
}

type NewsStore interface {
	cacheWriter
	List(ctx context.Context, filter model.NewsFilter) ([]model.News, int, error)
	MostViewed(ctx context.Context, limit int) ([]model.News, error)
	Get(ctx context.Context, id int64) (*model.News, error)
	IncrementViews(ctx context.Context, id int64) error
	Create(ctx context.Context, payload *model.SaveNewsRequest) (int64, error)
	Update(ctx context.Context, payload *model.SaveNewsRequest) error
	Delete(ctx context.Context, id int64) error
}

type CategoryStore interface {
	cacheWriter
	List(ctx context.Context, includeInactive bool) ([]model.Category, error)
	Get(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, payload *model.SaveCategoryRequest) (int64, error)
	Update(ctx context.Context, payload *model.SaveCategoryRequest) error
	Delete(ctx context.Context, id int64) error
}

type GuideStore interface {
	cacheWriter
	List(ctx context.Context, filter model.GuideFilter) ([]model.Guide, error)
	Latest(ctx context.Context, guideType, lang string) (*model.Guide, error)
	Get(ctx context.Context, id int64) (*model.Guide, error)
	Create(ctx context.Context, payload *model.SaveGuideRequest) (int64, error)
	Update(ctx context.Context, payload *model.SaveGuideRequest) error
	Delete(ctx context.Context, id int64) error
}

type LeaderStore interface {
	List(ctx context.Context, region string) ([]model.Leader, error)
	Get(ctx context.Context, id int64) (*model.Leader, error)
	Regions(ctx context.Context) ([]string, error)
	Create(ctx context.Context, payload *model.SaveLeaderRequest, regionEmbed string) (*model.Leader, error)
	Update(ctx context.Context, payload *model.SaveLeaderRequest, regionEmbed string) (*model.Leader, error)
	Delete(ctx context.Context, id int64) error
}

type DebtStore interface {
	List(ctx context.Context, filter model.DebtFilter) ([]model.Debt, int, error)
	Get(ctx context.Context, id int64) (*model.Debt, error)
	Summary(ctx context.Context) ([]model.DebtSummary, error)
	Create(ctx context.Context, payload *model.SaveDebtRequest) (*model.Debt, error)
	Update(ctx context.Context, payload *model.SaveDebtRequest) (*model.Debt, error)
	Delete(ctx context.Context, id int64) error
}

type PartnerStore interface {
	List(ctx context.Context) ([]model.Partner, error)
	Get(ctx context.Context, id int64) (*model.Partner, error)
	Create(ctx context.Context, payload *model.SavePartnerRequest) (*model.Partner, error)
	Update(ctx context.Context, payload *model.SavePartnerRequest) (*model.Partner, error)
	Delete(ctx context.Context, id int64) error
}

type SubscriberStore interface {
	Create(ctx context.Context, email, phone, lang string) (*model.Subscriber, error)
	List(ctx context.Context, search string, limit, offset int) ([]model.Subscriber, int, error)
}

type StatsStore interface {
	Counts(ctx context.Context) (*model.Counts, error)
}

// Enqueuer is implemented by job.JobService.
type Enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}
