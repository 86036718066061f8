package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/shopspring/decimal"
)

func int64Ptr(v int64) *int64 { return &v }

func newTestNewsService(store *fakeNewsStore, jobs Enqueuer) *NewsService {
	loc := newTestLocalizer(&prefixTranslator{}, &store.cacheRecorder)
	loc.newsStore = store
	return NewNewsService(store, loc, &warmQueue{jobs: jobs, logger: nopLogger()}, nopLogger())
}

func TestApplyCategory(t *testing.T) {
	var byID model.NewsFilter
	applyCategory(&byID, "12")
	if byID.CategoryID == nil || *byID.CategoryID != 12 || byID.CategorySlug != "" {
		t.Errorf("numeric category = %+v", byID)
	}

	var bySlug model.NewsFilter
	applyCategory(&bySlug, "sport")
	if bySlug.CategoryID != nil || bySlug.CategorySlug != "sport" {
		t.Errorf("slug category = %+v", bySlug)
	}
}

func TestNewsGetByIDAndLanguage(t *testing.T) {
	n := sampleNews()
	store := &fakeNewsStore{items: []model.News{n}}
	svc := newTestNewsService(store, nil)

	got, err := svc.Get(context.Background(), 10, "ru")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Новость" || got.Lang != "ru" {
		t.Errorf("Get() = %+v", got)
	}
}

func TestNewsGetHidesUnpublished(t *testing.T) {
	n := sampleNews()
	n.IsPublished = false
	svc := newTestNewsService(&fakeNewsStore{items: []model.News{n}}, nil)

	_, err := svc.Get(context.Background(), 10, "uz")
	if !errs.IsNotFound(err) {
		t.Errorf("Get() error = %v, want not found", err)
	}
}

func TestNewsDetailCountsViewAndLoadsRelated(t *testing.T) {
	current := sampleNews()
	current.CategoryID = int64Ptr(5)

	sibling := sampleNews()
	sibling.ID = 11
	sibling.CategoryID = int64Ptr(5)

	other := sampleNews()
	other.ID = 12
	other.CategoryID = int64Ptr(6)

	store := &fakeNewsStore{items: []model.News{current, sibling, other}}
	svc := newTestNewsService(store, nil)

	detail, err := svc.Detail(context.Background(), 10, "uz")
	if err != nil {
		t.Fatalf("Detail() error = %v", err)
	}
	if store.views[10] != 1 || detail.News.ViewsCount != 1 {
		t.Errorf("views = %d, ViewsCount = %d", store.views[10], detail.News.ViewsCount)
	}
	if len(detail.Related) != 1 || detail.Related[0].ID != 11 {
		t.Errorf("Related = %+v, want only news 11", detail.Related)
	}
	last := store.filters[len(store.filters)-1]
	if last.Limit != RelatedNewsLimit || last.ExcludeID != 10 {
		t.Errorf("related filter = %+v", last)
	}
}

func TestNewsListPaginates(t *testing.T) {
	store := &fakeNewsStore{items: []model.News{sampleNews()}}
	svc := newTestNewsService(store, nil)

	resp, err := svc.List(context.Background(), &model.ListNewsQuery{
		PageQuery: model.PageQuery{Page: 2, PageSize: 5},
		Category:  "sport",
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if resp.Page != 2 || resp.PageSize != 5 || resp.Count != 1 {
		t.Errorf("List() = %+v", resp)
	}
	f := store.filters[0]
	if !f.OnlyPublished || f.Offset != 5 || f.CategorySlug != "sport" {
		t.Errorf("filter = %+v", f)
	}
	if resp.Results[0].Lang != "uz" {
		t.Errorf("default language = %q, want uz", resp.Results[0].Lang)
	}
}

func TestNewsCreateSchedulesWarmup(t *testing.T) {
	jobs := &fakeEnqueuer{}
	store := &fakeNewsStore{items: []model.News{{Base: model.Base{ID: 1}}}}
	svc := newTestNewsService(store, jobs)

	if _, err := svc.Create(context.Background(), &model.SaveNewsRequest{}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if jobs.types() != job.TaskTranslationWarm {
		t.Errorf("enqueued %q", jobs.types())
	}
}

func TestGuideLatest(t *testing.T) {
	store := &fakeGuideStore{latest: map[string]*model.Guide{
		"social/ru": {
			Base:           model.Base{ID: 9},
			GuideType:      model.GuideTypeSocial,
			Link:           "https://example.uz/guide",
			SourceLanguage: "ru",
			Translations:   []model.GuideTranslation{{GuideID: 9, Lang: "ru", Title: "Гид"}},
		},
	}}
	loc := newTestLocalizer(&prefixTranslator{}, &store.cacheRecorder)
	svc := NewGuideService(store, loc, nil)

	got, err := svc.Latest(context.Background(), model.GuideTypeSocial, "ru")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got.Link != "https://example.uz/guide" || got.Title != "Гид" {
		t.Errorf("Latest() = %+v", got)
	}

	if _, err := svc.Latest(context.Background(), "cooking", "ru"); !errs.IsNotFound(err) {
		t.Errorf("unknown type error = %v, want not found", err)
	}
	if _, err := svc.Latest(context.Background(), model.GuideTypeSocial, "kaa"); err == nil {
		t.Error("missing language should fail")
	}
}

func TestGuideCreateDerivesPreview(t *testing.T) {
	store := &fakeGuideStore{}
	loc := newTestLocalizer(&prefixTranslator{}, &store.cacheRecorder)
	svc := NewGuideService(store, loc, nil)

	_, err := svc.Create(context.Background(), &model.SaveGuideRequest{Link: "https://youtu.be/dQw4w9WgXcQ"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if store.saved.PreviewURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("PreviewURL = %q", store.saved.PreviewURL)
	}

	_, err = svc.Update(context.Background(), &model.SaveGuideRequest{ID: 7, Link: "https://youtu.be/dQw4w9WgXcQ", PreviewURL: "/media/guides/p.png"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if store.saved.PreviewURL != "/media/guides/p.png" {
		t.Errorf("explicit preview overwritten: %q", store.saved.PreviewURL)
	}
}

func TestLeaderSaveDerivesEmbed(t *testing.T) {
	store := &fakeLeaderStore{}
	svc := NewLeaderService(store)

	got, err := svc.Create(context.Background(), &model.SaveLeaderRequest{
		LeaderName: "Hokim",
		RegionLink: "https://www.google.com/maps/@42.46,59.61,12z",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	want := "https://maps.google.com/maps?q=42.46,59.61&z=12&output=embed"
	if got.RegionEmbed != want || store.embed != want {
		t.Errorf("RegionEmbed = %q, want %q", got.RegionEmbed, want)
	}
}

func TestDebtSummaryOutstanding(t *testing.T) {
	store := &fakeDebtStore{summary: []model.DebtSummary{
		{Status: model.DebtStatusActive, Count: 2, Total: decimal.RequireFromString("100.50")},
		{Status: model.DebtStatusOverdue, Count: 1, Total: decimal.RequireFromString("20.25")},
		{Status: model.DebtStatusPaid, Count: 4, Total: decimal.RequireFromString("999")},
	}}

	rows, outstanding, err := NewDebtService(store).Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("rows = %d", len(rows))
	}
	if !outstanding.Equal(decimal.RequireFromString("120.75")) {
		t.Errorf("outstanding = %s, want 120.75", outstanding)
	}
}

func TestDebtListTrimsSearch(t *testing.T) {
	store := &fakeDebtStore{}
	resp, err := NewDebtService(store).List(context.Background(), &model.ListDebtsQuery{Search: " 123456789 "})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if store.filter.Search != "123456789" || store.filter.Limit != model.DefaultPageSize {
		t.Errorf("filter = %+v", store.filter)
	}
	if resp.Results == nil {
		t.Error("Results should be an empty slice, not nil")
	}
}

func TestSubscribeEnqueuesWelcomeForEmail(t *testing.T) {
	jobs := &fakeEnqueuer{}
	svc := NewSubscriberService(fakeSubscriberStore{}, jobs, nopLogger())

	sub, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Email: "a@b.uz"})
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if sub.Lang != "uz" {
		t.Errorf("Lang = %q, want default uz", sub.Lang)
	}
	if jobs.types() != job.TaskWelcome {
		t.Errorf("enqueued %q", jobs.types())
	}

	if _, err := svc.Subscribe(context.Background(), &model.SubscribeRequest{Phone: "+998901234567", Lang: "ru"}); err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if len(jobs.tasks) != 1 {
		t.Errorf("phone-only subscription enqueued %d tasks", len(jobs.tasks))
	}
}

func TestWarmTranslationsCoversEveryLanguage(t *testing.T) {
	tr := &prefixTranslator{}
	news := &fakeNewsStore{items: []model.News{sampleNews()}}
	loc := newTestLocalizer(tr, &news.cacheRecorder)
	loc.newsStore = news

	w := NewTranslationWarmer(news, &fakeGuideStore{}, &fakeCategoryStore{}, loc)
	if err := w.WarmTranslations(context.Background(), job.KindNews, 10); err != nil {
		t.Fatalf("WarmTranslations() error = %v", err)
	}

	cache := news.saved[10]
	if cache["title_kaa"] != "kaa:Yangilik" {
		t.Errorf("cache = %v, want a kaa title", cache)
	}
	if _, ok := cache["title_ru"]; ok {
		t.Error("ru has its own translation row and should not be machine translated")
	}

	if err := w.WarmTranslations(context.Background(), "poll", 1); err == nil {
		t.Error("unknown kind should fail")
	}
}

type pagedSubscriberStore struct {
	fakeSubscriberStore
	items []model.Subscriber
	calls int
}

func (p *pagedSubscriberStore) List(_ context.Context, _ string, limit, offset int) ([]model.Subscriber, int, error) {
	p.calls++
	if offset >= len(p.items) {
		return nil, len(p.items), nil
	}
	end := min(offset+limit, len(p.items))
	return p.items[offset:end], len(p.items), nil
}

func TestSubscriberExportPagesThroughEverything(t *testing.T) {
	store := &pagedSubscriberStore{}
	for i := 1; i <= model.MaxPageSize+5; i++ {
		store.items = append(store.items, model.Subscriber{Base: model.Base{ID: int64(i)}, Email: "x@y.uz", Lang: "uz"})
	}

	svc := NewSubscriberService(store, nil, nopLogger())
	out, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != len(store.items)+1 {
		t.Fatalf("got %d lines, want header + %d rows", len(lines), len(store.items))
	}
	if lines[0] != "id,email,phone,lang,created_at" {
		t.Errorf("header = %q", lines[0])
	}
	if store.calls != 2 {
		t.Errorf("store.List called %d times, want 2", store.calls)
	}
}
