package service

import (
	"context"

	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/gosnews/gosnews/internal/lib/links"
	"github.com/gosnews/gosnews/internal/lib/translation"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// localizer renders news, guides and categories in one language and
// persists whatever the resolver had to machine-translate.
type localizer struct {
	resolver      *translation.Resolver
	newsStore     cacheWriter
	guideStore    cacheWriter
	categoryStore cacheWriter
	logger        *zerolog.Logger
	concurrency   int
}

// fields resolves src fields written in srcLang into lang, saving the
// entity's cache at most once. version is the cache_version the entity was
// read at.
func (l *localizer) fields(ctx context.Context, store cacheWriter, kind string, id, version int64, srcLang, lang string, src map[string]string, cache *model.TranslationCache) map[string]string {
	source := &translation.Source{Lang: srcLang, Fields: src, Cache: *cache}

	out, updated := l.resolver.Localize(ctx, lang, source)
	if !updated {
		return out
	}

	*cache = source.Cache
	if err := store.SaveCachedTranslations(ctx, id, version, *cache); err != nil {
		l.logger.Error().
			Err(err).
			Str("kind", kind).
			Int64("id", id).
			Msg("failed to save cached translations")
	}
	return out
}

func newsLang(t model.NewsTranslation) string   { return t.Lang }
func guideLang(t model.GuideTranslation) string { return t.Lang }

func (l *localizer) category(ctx context.Context, c *model.Category, lang string) *model.LocalizedCategory {
	src := map[string]string{"description": c.Description}

	row, exact, _ := translation.Pick(c.Translations, func(t model.CategoryTranslation) string { return t.Lang }, lang, c.SourceLanguage)
	if !exact {
		src["name"] = c.Name
	}

	out := l.fields(ctx, l.categoryStore, job.KindCategory, c.ID, c.CacheVersion, c.SourceLanguage, lang, src, &c.CachedTranslations)
	name := out["name"]
	if exact {
		name = row.Name
	}

	return &model.LocalizedCategory{
		ID:          c.ID,
		Lang:        lang,
		Slug:        c.Slug,
		Name:        name,
		Description: out["description"],
	}
}

func (l *localizer) categoryList(ctx context.Context, items []model.Category, lang string) []model.LocalizedCategory {
	out := make([]model.LocalizedCategory, len(items))
	for i := range items {
		out[i] = *l.category(ctx, &items[i], lang)
	}
	return out
}

func (l *localizer) news(ctx context.Context, n *model.News, lang string, category *model.LocalizedCategory) model.LocalizedNews {
	out := model.LocalizedNews{
		ID:             n.ID,
		NewsID:         n.ID,
		Lang:           lang,
		Category:       category,
		VideoURL:       n.VideoURL,
		VideoThumbnail: links.YouTubeThumbnail(n.VideoURL),
		IsFeatured:     n.IsFeatured,
		ViewsCount:     n.ViewsCount,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}

	row, _, ok := translation.Pick(n.Translations, newsLang, lang, n.SourceLanguage)
	if !ok {
		return out
	}

	f := l.fields(ctx, l.newsStore, job.KindNews, n.ID, n.CacheVersion, row.Lang, lang, row.Fields(), &n.CachedTranslations)
	out.Title = f["title"]
	out.ShortTitle = f["short_title"]
	out.Description = f["description"]
	out.ShortDescription = f["short_description"]

	out.Image = row.Image
	if out.Image == "" {
		for _, t := range n.Translations {
			if t.Image != "" {
				out.Image = t.Image
				break
			}
		}
	}
	return out
}

// newsList localizes items concurrently. Categories are localized first,
// one at a time, because items share category records.
func (l *localizer) newsList(ctx context.Context, items []model.News, lang string) []model.LocalizedNews {
	categories := make(map[int64]*model.LocalizedCategory)
	for _, item := range items {
		if item.Category == nil {
			continue
		}
		if _, ok := categories[item.Category.ID]; !ok {
			categories[item.Category.ID] = l.category(ctx, item.Category, lang)
		}
	}

	out := make([]model.LocalizedNews, len(items))
	var g errgroup.Group
	g.SetLimit(max(l.concurrency, 1))
	for i := range items {
		g.Go(func() error {
			var category *model.LocalizedCategory
			if items[i].Category != nil {
				category = categories[items[i].Category.ID]
			}
			out[i] = l.news(ctx, &items[i], lang, category)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (l *localizer) guide(ctx context.Context, g *model.Guide, lang string) model.LocalizedGuide {
	out := model.LocalizedGuide{
		ID:         g.ID,
		GuideID:    g.ID,
		Lang:       lang,
		GuideType:  g.GuideType,
		Link:       g.Link,
		PreviewURL: g.PreviewURL,
		EmbedURL:   links.YouTubeEmbedURL(g.Link),
		CreatedAt:  g.CreatedAt,
	}
	if out.PreviewURL == "" {
		out.PreviewURL = links.YouTubeThumbnail(g.Link)
	}

	row, _, ok := translation.Pick(g.Translations, guideLang, lang, g.SourceLanguage)
	if !ok {
		return out
	}

	f := l.fields(ctx, l.guideStore, job.KindGuide, g.ID, g.CacheVersion, row.Lang, lang, row.Fields(), &g.CachedTranslations)
	out.Title = f["title"]
	out.ShortTitle = f["short_title"]
	out.Description = f["description"]
	out.ShortDescription = f["short_description"]
	return out
}

func (l *localizer) guideList(ctx context.Context, items []model.Guide, lang string) []model.LocalizedGuide {
	out := make([]model.LocalizedGuide, len(items))
	var g errgroup.Group
	g.SetLimit(max(l.concurrency, 1))
	for i := range items {
		g.Go(func() error {
			out[i] = l.guide(ctx, &items[i], lang)
			return nil
		})
	}
	_ = g.Wait()
	return out
}
