package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/model"
	"golang.org/x/sync/errgroup"
)

// Home page section sizes.
const (
	HomeFeaturedLimit = 5
	HomeLatestLimit   = 8
	HomeGuidesLimit   = 6
)

type HomeService struct {
	news       *NewsService
	guides     *GuideService
	partners   *PartnerService
	categories *CategoryService
}

func NewHomeService(news *NewsService, guides *GuideService, partners *PartnerService, categories *CategoryService) *HomeService {
	return &HomeService{
		news:       news,
		guides:     guides,
		partners:   partners,
		categories: categories,
	}
}

// Home loads every section of the home page in parallel.
func (s *HomeService) Home(ctx context.Context, lang string) (*model.HomeResponse, error) {
	resp := &model.HomeResponse{Lang: lang}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		resp.FeaturedNews, err = s.news.Featured(ctx, lang, HomeFeaturedLimit)
		return err
	})
	g.Go(func() (err error) {
		resp.LatestNews, err = s.news.Latest(ctx, lang, HomeLatestLimit)
		return err
	})
	g.Go(func() (err error) {
		resp.Guides, err = s.guides.Recent(ctx, lang, HomeGuidesLimit)
		return err
	})
	g.Go(func() (err error) {
		resp.Partners, err = s.partners.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Categories, err = s.categories.List(ctx, &model.ListCategoriesQuery{LangQuery: model.LangQuery{Lang: lang}})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
