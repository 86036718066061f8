package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/lib/links"
	"github.com/gosnews/gosnews/internal/model"
)

type LeaderService struct {
	store LeaderStore
}

func NewLeaderService(store LeaderStore) *LeaderService {
	return &LeaderService{store: store}
}

func (s *LeaderService) List(ctx context.Context, q *model.ListLeadersQuery) ([]model.Leader, error) {
	return s.store.List(ctx, q.Region)
}

func (s *LeaderService) Get(ctx context.Context, id int64) (*model.Leader, error) {
	return s.store.Get(ctx, id)
}

func (s *LeaderService) Regions(ctx context.Context) ([]string, error) {
	return s.store.Regions(ctx)
}

// Create and Update derive the embeddable map from RegionLink.
func (s *LeaderService) Create(ctx context.Context, payload *model.SaveLeaderRequest) (*model.Leader, error) {
	return s.store.Create(ctx, payload, links.MapEmbedURL(payload.RegionLink))
}

func (s *LeaderService) Update(ctx context.Context, payload *model.SaveLeaderRequest) (*model.Leader, error) {
	return s.store.Update(ctx, payload, links.MapEmbedURL(payload.RegionLink))
}

func (s *LeaderService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
