package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/model"
)

type PartnerService struct {
	store PartnerStore
}

func NewPartnerService(store PartnerStore) *PartnerService {
	return &PartnerService{store: store}
}

func (s *PartnerService) List(ctx context.Context) ([]model.Partner, error) {
	return s.store.List(ctx)
}

func (s *PartnerService) Get(ctx context.Context, id int64) (*model.Partner, error) {
	return s.store.Get(ctx, id)
}

func (s *PartnerService) Create(ctx context.Context, payload *model.SavePartnerRequest) (*model.Partner, error) {
	return s.store.Create(ctx, payload)
}

func (s *PartnerService) Update(ctx context.Context, payload *model.SavePartnerRequest) (*model.Partner, error) {
	return s.store.Update(ctx, payload)
}

func (s *PartnerService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
