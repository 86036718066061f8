package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gosnews/gosnews/internal/model"
)

func sampleNews() model.News {
	return model.News{
		Base:           model.Base{ID: 10},
		SourceLanguage: "uz",
		VideoURL:       "https://youtu.be/dQw4w9WgXcQ",
		IsPublished:    true,
		Translations: []model.NewsTranslation{
			{NewsID: 10, Lang: "uz", Image: "/media/news/a.jpg", Title: "Yangilik", Description: "Matn"},
			{NewsID: 10, Lang: "ru", Title: "Новость", Description: "Текст"},
		},
	}
}

func TestLocalizeNewsExactLanguage(t *testing.T) {
	tr := &prefixTranslator{}
	rec := &cacheRecorder{}
	loc := newTestLocalizer(tr, rec)

	n := sampleNews()
	got := loc.news(context.Background(), &n, "ru", nil)

	if got.Title != "Новость" || got.Description != "Текст" {
		t.Errorf("got %q / %q", got.Title, got.Description)
	}
	if got.ID != 10 || got.NewsID != 10 {
		t.Errorf("ids = %d/%d, want 10", got.ID, got.NewsID)
	}
	if got.Image != "/media/news/a.jpg" {
		t.Errorf("Image = %q, want the image of another translation", got.Image)
	}
	if got.VideoThumbnail != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("VideoThumbnail = %q", got.VideoThumbnail)
	}
	if tr.calls != 0 || rec.count != 0 {
		t.Errorf("translator calls = %d, saves = %d, want none", tr.calls, rec.count)
	}
}

func TestLocalizeNewsTranslatesAndPersistsOnce(t *testing.T) {
	tr := &prefixTranslator{}
	rec := &cacheRecorder{}
	loc := newTestLocalizer(tr, rec)

	n := sampleNews()
	got := loc.news(context.Background(), &n, "kaa", nil)

	if got.Title != "kaa:Yangilik" {
		t.Errorf("Title = %q, want translation of the source row", got.Title)
	}
	if rec.count != 1 {
		t.Fatalf("saves = %d, want 1", rec.count)
	}
	if rec.saved[10]["title_kaa"] != "kaa:Yangilik" {
		t.Errorf("saved cache = %v", rec.saved[10])
	}

	calls := tr.calls
	again := loc.news(context.Background(), &n, "kaa", nil)
	if again.Title != got.Title || tr.calls != calls {
		t.Errorf("second resolution should come from the cache, calls %d -> %d", calls, tr.calls)
	}
}

func TestLocalizeNewsCacheWriteCarriesReadVersion(t *testing.T) {
	rec := &cacheRecorder{current: map[int64]int64{10: 4}}
	loc := newTestLocalizer(&prefixTranslator{}, rec)

	// Read before an edit bumped the row to version 4.
	stale := sampleNews()
	stale.CacheVersion = 3
	loc.news(context.Background(), &stale, "kaa", nil)

	if len(rec.versions) != 1 || rec.versions[0] != 3 {
		t.Fatalf("versions = %v, want [3]", rec.versions)
	}
	if rec.count != 0 || rec.saved[10] != nil {
		t.Errorf("stale cache was stored: saves=%d cache=%v", rec.count, rec.saved[10])
	}

	fresh := sampleNews()
	fresh.CacheVersion = 4
	loc.news(context.Background(), &fresh, "kaa", nil)

	if rec.count != 1 || rec.saved[10]["title_kaa"] != "kaa:Yangilik" {
		t.Errorf("saves = %d cache = %v, want the current row's cache", rec.count, rec.saved[10])
	}
}

func TestLocalizeNewsTranslatorFailure(t *testing.T) {
	tr := &prefixTranslator{err: errors.New("service down")}
	rec := &cacheRecorder{}
	loc := newTestLocalizer(tr, rec)

	n := sampleNews()
	got := loc.news(context.Background(), &n, "kaa", nil)

	if got.Title != "Yangilik" {
		t.Errorf("Title = %q, want source text", got.Title)
	}
	if rec.count != 0 || len(n.CachedTranslations) != 0 {
		t.Errorf("nothing should be cached, saves=%d cache=%v", rec.count, n.CachedTranslations)
	}
}

func TestLocalizeNewsWithoutTranslations(t *testing.T) {
	loc := newTestLocalizer(&prefixTranslator{}, &cacheRecorder{})

	n := model.News{Base: model.Base{ID: 3}, SourceLanguage: "uz"}
	got := loc.news(context.Background(), &n, "ru", nil)
	if got.ID != 3 || got.Title != "" {
		t.Errorf("got %+v", got)
	}
}

func TestLocalizeCategory(t *testing.T) {
	tr := &prefixTranslator{}
	rec := &cacheRecorder{}
	loc := newTestLocalizer(tr, rec)

	c := model.Category{
		Base:           model.Base{ID: 2},
		Slug:           "sport",
		Name:           "Sport",
		Description:    "Sport yangiliklari",
		SourceLanguage: "uz",
		Translations:   []model.CategoryTranslation{{CategoryID: 2, Lang: "ru", Name: "Спорт"}},
	}

	ru := loc.category(context.Background(), &c, "ru")
	if ru.Name != "Спорт" {
		t.Errorf("Name = %q, want the translation row", ru.Name)
	}
	if ru.Description != "ru:Sport yangiliklari" {
		t.Errorf("Description = %q", ru.Description)
	}

	kaa := loc.category(context.Background(), &c, "kaa")
	if kaa.Name != "kaa:Sport" {
		t.Errorf("Name = %q, want machine translation", kaa.Name)
	}

	uz := loc.category(context.Background(), &c, "uz")
	if uz.Name != "Sport" || uz.Description != "Sport yangiliklari" {
		t.Errorf("source language should be returned as is, got %+v", uz)
	}
}

func TestNewsListSharesCategoryLocalization(t *testing.T) {
	tr := &prefixTranslator{}
	rec := &cacheRecorder{}
	loc := newTestLocalizer(tr, rec)

	category := &model.Category{Base: model.Base{ID: 1}, Name: "Sport", SourceLanguage: "uz"}
	items := make([]model.News, 6)
	for i := range items {
		items[i] = sampleNews()
		items[i].ID = int64(i + 1)
		items[i].Category = category
	}

	got := loc.newsList(context.Background(), items, "ru")
	if len(got) != len(items) {
		t.Fatalf("len = %d", len(got))
	}
	for i, n := range got {
		if n.ID != int64(i+1) {
			t.Errorf("order changed at %d: id %d", i, n.ID)
		}
		if n.Category == nil || n.Category.Name != "ru:Sport" {
			t.Errorf("category of %d = %+v", n.ID, n.Category)
		}
	}
}

func TestLocalizeGuidePreviewDefaults(t *testing.T) {
	loc := newTestLocalizer(&prefixTranslator{}, &cacheRecorder{})

	g := model.Guide{
		Base:           model.Base{ID: 4},
		GuideType:      model.GuideTypeBusiness,
		Link:           "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		SourceLanguage: "uz",
		Translations:   []model.GuideTranslation{{GuideID: 4, Lang: "uz", Title: "Biznes"}},
	}

	got := loc.guide(context.Background(), &g, "uz")
	if got.PreviewURL != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("PreviewURL = %q", got.PreviewURL)
	}
	if got.EmbedURL != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("EmbedURL = %q", got.EmbedURL)
	}
	if got.Title != "Biznes" {
		t.Errorf("Title = %q", got.Title)
	}
}
