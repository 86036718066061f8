// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated requests from the handlers, renders content in the requested
// language and calls the repositories to read and write data.
package service

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/gosnews/gosnews/internal/lib/media"
	"github.com/gosnews/gosnews/internal/lib/translation"
	"github.com/gosnews/gosnews/internal/repository"
	"github.com/gosnews/gosnews/internal/server"
)

type Services struct {
	Auth        *AuthService
	Job         *job.JobService
	News        *NewsService
	Categories  *CategoryService
	Guides      *GuideService
	Leaders     *LeaderService
	Debts       *DebtService
	Partners    *PartnerService
	Subscribers *SubscriberService
	Home        *HomeService
	Dashboard   *DashboardService
	Media       *MediaService
	Warmer      *TranslationWarmer
}

// newTranslator returns the Redis cached translation client, or a
// translator that always fails when translation is disabled.
func newTranslator(s *server.Server) translation.Translator {
	cfg := s.Config.Translation
	if !cfg.Enabled {
		return translation.Disabled{}
	}
	return translation.NewCached(translation.NewClient(cfg), s.Redis, cfg.CacheTTL, s.Logger)
}

func NewServices(ctx context.Context, s *server.Server, repos *repository.Repositories) (*Services, error) {
	storage, err := media.New(ctx, s.Config.Media)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	loc := &localizer{
		resolver:      translation.NewResolver(newTranslator(s), s.Config.Translation.ChunkSize, s.Logger),
		newsStore:     repos.News,
		guideStore:    repos.Guides,
		categoryStore: repos.Categories,
		logger:        s.Logger,
		concurrency:   s.Config.Translation.MaxConcurrency,
	}
	queue := &warmQueue{jobs: s.Job, logger: s.Logger}

	news := NewNewsService(repos.News, loc, queue, s.Logger)
	categories := NewCategoryService(repos.Categories, loc, queue)
	guides := NewGuideService(repos.Guides, loc, queue)
	leaders := NewLeaderService(repos.Leaders)
	debts := NewDebtService(repos.Debts)
	partners := NewPartnerService(repos.Partners)

	return &Services{
		Auth:        NewAuthService(s.Config.Auth.SecretKey),
		Job:         s.Job,
		News:        news,
		Categories:  categories,
		Guides:      guides,
		Leaders:     leaders,
		Debts:       debts,
		Partners:    partners,
		Subscribers: NewSubscriberService(repos.Subscriber, s.Job, s.Logger),
		Home:        NewHomeService(news, guides, partners, categories),
		Dashboard:   NewDashboardService(repos.Stats, debts, leaders, news),
		Media:       NewMediaService(storage, s.Config.Media.MaxUploadBytes, s.Logger),
		Warmer:      NewTranslationWarmer(repos.News, repos.Guides, repos.Categories, loc),
	}, nil
}
