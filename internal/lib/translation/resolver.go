package translation

import (
	"context"

	"github.com/rs/zerolog"
)

// Source is the text an entity was written in, together with its
// machine-translation cache. Cache keys have the form "<field>_<lang>".
type Source struct {
	Lang   string
	Fields map[string]string
	Cache  map[string]string
}

// CacheKey names the cached translation of field into lang.
func CacheKey(field, lang string) string {
	return field + "_" + lang
}

// Resolver produces the text of an entity in a requested language.
type Resolver struct {
	translator Translator
	chunkSize  int
	logger     *zerolog.Logger
}

func NewResolver(translator Translator, chunkSize int, logger *zerolog.Logger) *Resolver {
	if translator == nil {
		translator = Disabled{}
	}
	return &Resolver{
		translator: translator,
		chunkSize:  chunkSize,
		logger:     logger,
	}
}

// Localize returns every field of src in lang. Text already in lang is
// returned as is, cached translations are reused and the rest is
// translated and stored into src.Cache. The boolean reports whether
// src.Cache changed and needs to be persisted.
//
// When the translator fails the source text is returned for that field
// and nothing is cached for it.
func (r *Resolver) Localize(ctx context.Context, lang string, src *Source) (map[string]string, bool) {
	out := make(map[string]string, len(src.Fields))
	if lang == src.Lang {
		for field, text := range src.Fields {
			out[field] = text
		}
		return out, false
	}

	if src.Cache == nil {
		src.Cache = make(map[string]string)
	}

	updated := false
	for field, text := range src.Fields {
		key := CacheKey(field, lang)
		if cached, ok := src.Cache[key]; ok {
			out[field] = cached
			continue
		}

		if text == "" {
			out[field] = text
			continue
		}

		translated, err := TranslateLong(ctx, r.translator, text, src.Lang, lang, r.chunkSize)
		if err != nil {
			r.logger.Debug().
				Err(err).
				Str("field", field).
				Str("source", src.Lang).
				Str("target", lang).
				Msg("falling back to source text")
			out[field] = text
			continue
		}

		src.Cache[key] = translated
		out[field] = translated
		updated = true
	}

	return out, updated
}

// Pick returns the row written in lang. When there is none it returns the
// row in sourceLang, or else the first row, with exact set to false. ok is
// false only when rows is empty.
func Pick[T any](rows []T, langOf func(T) string, lang, sourceLang string) (row T, exact, ok bool) {
	if len(rows) == 0 {
		return row, false, false
	}

	fallback := -1
	for i, r := range rows {
		switch langOf(r) {
		case lang:
			return r, true, true
		case sourceLang:
			if fallback == -1 {
				fallback = i
			}
		}
	}

	if fallback == -1 {
		fallback = 0
	}
	return rows[fallback], false, true
}
