package service

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/rs/zerolog"
)

// warmQueue schedules translation warming after admin saves. Failing to
// enqueue never fails the save; pages translate lazily anyway.
type warmQueue struct {
	jobs   Enqueuer
	logger *zerolog.Logger
}

func (q *warmQueue) schedule(ctx context.Context, kind string, id int64) {
	if q == nil || q.jobs == nil {
		return
	}

	task, err := job.NewTranslationWarmTask(kind, id)
	if err == nil {
		err = q.jobs.Enqueue(ctx, task)
	}
	if err != nil {
		q.logger.Warn().
			Err(err).
			Str("kind", kind).
			Int64("id", id).
			Msg("failed to enqueue translation warm task")
	}
}

// TranslationWarmer fills the translation caches of one entity for every
// site language. It runs inside the job worker.
type TranslationWarmer struct {
	news       NewsStore
	guides     GuideStore
	categories CategoryStore
	loc        *localizer
}

func NewTranslationWarmer(news NewsStore, guides GuideStore, categories CategoryStore, loc *localizer) *TranslationWarmer {
	return &TranslationWarmer{
		news:       news,
		guides:     guides,
		categories: categories,
		loc:        loc,
	}
}

// WarmTranslations implements job.TranslationWarmer. Languages are
// resolved one after another since they share the entity's cache.
func (w *TranslationWarmer) WarmTranslations(ctx context.Context, kind string, id int64) error {
	switch kind {
	case job.KindNews:
		n, err := w.news.Get(ctx, id)
		if err != nil {
			return err
		}
		for _, lang := range i18n.Supported() {
			if n.Category != nil {
				w.loc.category(ctx, n.Category, lang)
			}
			w.loc.news(ctx, n, lang, nil)
		}

	case job.KindGuide:
		g, err := w.guides.Get(ctx, id)
		if err != nil {
			return err
		}
		for _, lang := range i18n.Supported() {
			w.loc.guide(ctx, g, lang)
		}

	case job.KindCategory:
		c, err := w.categories.Get(ctx, id)
		if err != nil {
			return err
		}
		for _, lang := range i18n.Supported() {
			w.loc.category(ctx, c, lang)
		}

	default:
		return fmt.Errorf("unknown translation kind %q", kind)
	}

	return nil
}
