package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/gosnews/gosnews/internal/lib/links"
	"github.com/gosnews/gosnews/internal/model"
)

type GuideService struct {
	store GuideStore
	loc   *localizer
	queue *warmQueue
}

func NewGuideService(store GuideStore, loc *localizer, queue *warmQueue) *GuideService {
	return &GuideService{
		store: store,
		loc:   loc,
		queue: queue,
	}
}

func (s *GuideService) List(ctx context.Context, q *model.ListGuidesQuery) ([]model.LocalizedGuide, error) {
	items, err := s.store.List(ctx, model.GuideFilter{GuideType: q.GuideType})
	if err != nil {
		return nil, err
	}
	return s.loc.guideList(ctx, items, q.Language()), nil
}

// Recent returns the newest guides of every type.
func (s *GuideService) Recent(ctx context.Context, lang string, limit int) ([]model.LocalizedGuide, error) {
	items, err := s.store.List(ctx, model.GuideFilter{Limit: limit})
	if err != nil {
		return nil, err
	}
	return s.loc.guideList(ctx, items, lang), nil
}

func (s *GuideService) Get(ctx context.Context, id int64, lang string) (*model.LocalizedGuide, error) {
	g, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := s.loc.guide(ctx, g, lang)
	return &out, nil
}

// Latest returns the newest guide of guideType written in lang. An
// unknown type is reported as not found.
func (s *GuideService) Latest(ctx context.Context, guideType, lang string) (*model.LocalizedGuide, error) {
	if !model.IsGuideType(guideType) {
		return nil, errs.NewNotFoundError("Guide not found", true, nil)
	}

	g, err := s.store.Latest(ctx, guideType, lang)
	if err != nil {
		return nil, err
	}
	out := s.loc.guide(ctx, g, lang)
	return &out, nil
}

func (s *GuideService) AdminList(ctx context.Context, guideType string) ([]model.Guide, error) {
	return s.store.List(ctx, model.GuideFilter{GuideType: guideType})
}

func (s *GuideService) AdminGet(ctx context.Context, id int64) (*model.Guide, error) {
	return s.store.Get(ctx, id)
}

// withPreview fills in the YouTube thumbnail when no preview was given.
func withPreview(payload *model.SaveGuideRequest) *model.SaveGuideRequest {
	if payload.PreviewURL == "" {
		payload.PreviewURL = links.YouTubeThumbnail(payload.Link)
	}
	return payload
}

func (s *GuideService) Create(ctx context.Context, payload *model.SaveGuideRequest) (*model.Guide, error) {
	id, err := s.store.Create(ctx, withPreview(payload))
	if err != nil {
		return nil, err
	}
	s.queue.schedule(ctx, job.KindGuide, id)
	return s.store.Get(ctx, id)
}

func (s *GuideService) Update(ctx context.Context, payload *model.SaveGuideRequest) (*model.Guide, error) {
	if err := s.store.Update(ctx, withPreview(payload)); err != nil {
		return nil, err
	}
	s.queue.schedule(ctx, job.KindGuide, payload.ID)
	return s.store.Get(ctx, payload.ID)
}

func (s *GuideService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
