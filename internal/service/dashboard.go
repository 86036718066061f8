package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/model"
)

const DashboardNewsLimit = 5

// DashboardService assembles the public statistics page.
type DashboardService struct {
	stats   StatsStore
	debts   *DebtService
	leaders *LeaderService
	news    *NewsService
}

func NewDashboardService(stats StatsStore, debts *DebtService, leaders *LeaderService, news *NewsService) *DashboardService {
	return &DashboardService{
		stats:   stats,
		debts:   debts,
		leaders: leaders,
		news:    news,
	}
}

func (s *DashboardService) Stats(ctx context.Context, lang string) (*model.DashboardStats, error) {
	counts, err := s.stats.Counts(ctx)
	if err != nil {
		return nil, err
	}

	debts, outstanding, err := s.debts.Summary(ctx)
	if err != nil {
		return nil, err
	}

	regions, err := s.leaders.Regions(ctx)
	if err != nil {
		return nil, err
	}

	top, err := s.news.MostViewed(ctx, lang, DashboardNewsLimit)
	if err != nil {
		return nil, err
	}

	latest, err := s.news.Latest(ctx, lang, DashboardNewsLimit)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		Counts:     *counts,
		Debts:      debts,
		TotalDebt:  outstanding,
		TopNews:    top,
		LatestNews: latest,
		Regions:    regions,
	}, nil
}
