package service

import (
	"context"
	"strings"
	"sync"

	"github.com/gosnews/gosnews/internal/lib/translation"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// prefixTranslator marks translated text with the language pair.
type prefixTranslator struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *prefixTranslator) Translate(_ context.Context, text, source, target string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return target + ":" + text, nil
}

// cacheRecorder records SaveCachedTranslations calls. When current holds
// a version for an id, writes made at any other version are dropped the
// way the repositories drop them.
type cacheRecorder struct {
	mu       sync.Mutex
	saved    map[int64]model.TranslationCache
	versions []int64
	current  map[int64]int64
	count    int
}

func (c *cacheRecorder) SaveCachedTranslations(_ context.Context, id, version int64, cache model.TranslationCache) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.versions = append(c.versions, version)
	if v, ok := c.current[id]; ok && v != version {
		return nil
	}
	if c.saved == nil {
		c.saved = make(map[int64]model.TranslationCache)
	}
	copied := make(model.TranslationCache, len(cache))
	for k, v := range cache {
		copied[k] = v
	}
	c.saved[id] = copied
	c.count++
	return nil
}

func newTestLocalizer(tr translation.Translator, rec *cacheRecorder) *localizer {
	return &localizer{
		resolver:      translation.NewResolver(tr, 1000, nopLogger()),
		newsStore:     rec,
		guideStore:    rec,
		categoryStore: rec,
		logger:        nopLogger(),
		concurrency:   2,
	}
}

type fakeNewsStore struct {
	cacheRecorder
	items   []model.News
	filters []model.NewsFilter
	views   map[int64]int
}

func (f *fakeNewsStore) List(_ context.Context, filter model.NewsFilter) ([]model.News, int, error) {
	f.filters = append(f.filters, filter)
	var out []model.News
	for _, n := range f.items {
		if filter.OnlyPublished && !n.IsPublished {
			continue
		}
		if filter.ExcludeID == n.ID {
			continue
		}
		if filter.CategoryID != nil && (n.CategoryID == nil || *n.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, n)
	}
	return out, len(out), nil
}

func (f *fakeNewsStore) MostViewed(ctx context.Context, limit int) ([]model.News, error) {
	items, _, err := f.List(ctx, model.NewsFilter{OnlyPublished: true})
	return items, err
}

func (f *fakeNewsStore) Get(_ context.Context, id int64) (*model.News, error) {
	for _, n := range f.items {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, sqlerr.InTable("news", pgx.ErrNoRows)
}

func (f *fakeNewsStore) IncrementViews(_ context.Context, id int64) error {
	if f.views == nil {
		f.views = make(map[int64]int)
	}
	f.views[id]++
	return nil
}

func (f *fakeNewsStore) Create(context.Context, *model.SaveNewsRequest) (int64, error) {
	return 1, nil
}

func (f *fakeNewsStore) Update(context.Context, *model.SaveNewsRequest) error { return nil }
func (f *fakeNewsStore) Delete(context.Context, int64) error                  { return nil }

type fakeGuideStore struct {
	cacheRecorder
	items  []model.Guide
	saved  *model.SaveGuideRequest
	latest map[string]*model.Guide
}

func (f *fakeGuideStore) List(_ context.Context, filter model.GuideFilter) ([]model.Guide, error) {
	var out []model.Guide
	for _, g := range f.items {
		if filter.GuideType == "" || g.GuideType == filter.GuideType {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuideStore) Latest(_ context.Context, guideType, lang string) (*model.Guide, error) {
	g, ok := f.latest[guideType+"/"+lang]
	if !ok {
		return nil, sqlerr.InTable("guides", pgx.ErrNoRows)
	}
	return g, nil
}

func (f *fakeGuideStore) Get(_ context.Context, id int64) (*model.Guide, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, sqlerr.InTable("guides", pgx.ErrNoRows)
}

func (f *fakeGuideStore) Create(_ context.Context, payload *model.SaveGuideRequest) (int64, error) {
	f.saved = payload
	f.items = append(f.items, model.Guide{Base: model.Base{ID: 7}, Link: payload.Link, PreviewURL: payload.PreviewURL})
	return 7, nil
}

func (f *fakeGuideStore) Update(_ context.Context, payload *model.SaveGuideRequest) error {
	f.saved = payload
	return nil
}

func (f *fakeGuideStore) Delete(context.Context, int64) error { return nil }

type fakeCategoryStore struct {
	cacheRecorder
	items []model.Category
}

func (f *fakeCategoryStore) List(_ context.Context, includeInactive bool) ([]model.Category, error) {
	var out []model.Category
	for _, c := range f.items {
		if includeInactive || c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) Get(_ context.Context, id int64) (*model.Category, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, sqlerr.InTable("categories", pgx.ErrNoRows)
}

func (f *fakeCategoryStore) Create(context.Context, *model.SaveCategoryRequest) (int64, error) {
	return 1, nil
}

func (f *fakeCategoryStore) Update(context.Context, *model.SaveCategoryRequest) error { return nil }
func (f *fakeCategoryStore) Delete(context.Context, int64) error                      { return nil }

type fakeLeaderStore struct {
	embed string
}

func (f *fakeLeaderStore) List(context.Context, string) ([]model.Leader, error) { return nil, nil }
func (f *fakeLeaderStore) Get(context.Context, int64) (*model.Leader, error)    { return nil, nil }
func (f *fakeLeaderStore) Regions(context.Context) ([]string, error)            { return nil, nil }
func (f *fakeLeaderStore) Delete(context.Context, int64) error                  { return nil }

func (f *fakeLeaderStore) Create(_ context.Context, payload *model.SaveLeaderRequest, regionEmbed string) (*model.Leader, error) {
	f.embed = regionEmbed
	return &model.Leader{LeaderName: payload.LeaderName, RegionLink: payload.RegionLink, RegionEmbed: regionEmbed}, nil
}

func (f *fakeLeaderStore) Update(ctx context.Context, payload *model.SaveLeaderRequest, regionEmbed string) (*model.Leader, error) {
	return f.Create(ctx, payload, regionEmbed)
}

type fakeDebtStore struct {
	summary []model.DebtSummary
	filter  model.DebtFilter
}

func (f *fakeDebtStore) List(_ context.Context, filter model.DebtFilter) ([]model.Debt, int, error) {
	f.filter = filter
	return nil, 0, nil
}

func (f *fakeDebtStore) Get(context.Context, int64) (*model.Debt, error) { return nil, nil }

func (f *fakeDebtStore) Summary(context.Context) ([]model.DebtSummary, error) {
	return f.summary, nil
}

func (f *fakeDebtStore) Create(context.Context, *model.SaveDebtRequest) (*model.Debt, error) {
	return nil, nil
}

func (f *fakeDebtStore) Update(context.Context, *model.SaveDebtRequest) (*model.Debt, error) {
	return nil, nil
}

func (f *fakeDebtStore) Delete(context.Context, int64) error { return nil }

type fakeSubscriberStore struct{}

func (fakeSubscriberStore) Create(_ context.Context, email, phone, lang string) (*model.Subscriber, error) {
	return &model.Subscriber{Base: model.Base{ID: 1}, Email: email, Phone: phone, Lang: lang}, nil
}

func (fakeSubscriberStore) List(context.Context, string, int, int) ([]model.Subscriber, int, error) {
	return nil, 0, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, task *asynq.Task) error {
	f.tasks = append(f.tasks, task)
	return nil
}

func (f *fakeEnqueuer) types() string {
	names := make([]string, len(f.tasks))
	for i, t := range f.tasks {
		names[i] = t.Type()
	}
	return strings.Join(names, ",")
}
