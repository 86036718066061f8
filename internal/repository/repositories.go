package repository

import (
	"github.com/gosnews/gosnews/internal/server"
)

type Repositories struct {
	News       *NewsRepository
	Categories *CategoryRepository
	Guides     *GuideRepository
	Leaders    *LeaderRepository
	Debts      *DebtRepository
	Partners   *PartnerRepository
	Subscriber *SubscriberRepository
	Stats      *StatsRepository
}

func NewRepositories(s *server.Server) *Repositories {
	pool := s.DB.Pool
	return &Repositories{
		News:       NewNewsRepository(pool),
		Categories: NewCategoryRepository(pool),
		Guides:     NewGuideRepository(pool),
		Leaders:    NewLeaderRepository(pool),
		Debts:      NewDebtRepository(pool),
		Partners:   NewPartnerRepository(pool),
		Subscriber: NewSubscriberRepository(pool),
		Stats:      NewStatsRepository(pool),
	}
}
