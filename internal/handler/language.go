package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/view"
	"github.com/labstack/echo/v4"
)

// LanguageHandler switches the visitor's language.
type LanguageHandler struct {
	Handler
}

func NewLanguageHandler(s *server.Server) *LanguageHandler {
	return &LanguageHandler{
		Handler: NewHandler(s),
	}
}

// SetLanguage stores the "language" form value in the language cookie and
// redirects to "next". When next starts with a language segment it is
// rewritten to the new language.
func (h *LanguageHandler) SetLanguage(c echo.Context) error {
	lang, ok := i18n.Normalize(c.FormValue("language"))
	if !ok {
		middleware.GetLogger(c).Debug().
			Str("language", c.FormValue("language")).
			Msg("ignoring unsupported language")
		return c.Redirect(http.StatusFound, safeNext(c.FormValue("next"), ""))
	}

	i18n.SetLanguageCookie(c.Response(), lang)
	return c.Redirect(http.StatusFound, safeNext(c.FormValue("next"), lang))
}

// safeNext returns next when it is a local path, otherwise the home page.
// A leading language segment is replaced by lang when lang is set.
func safeNext(next, lang string) string {
	home := "/"
	if lang != "" {
		home = view.LangURL(lang, "/")
	}

	u, err := url.Parse(next)
	if err != nil || next == "" || u.Scheme != "" || u.Host != "" ||
		!strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return home
	}

	if lang == "" {
		return next
	}

	segments := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	if !i18n.IsSupported(segments[0]) {
		return next
	}

	rest := "/"
	if len(segments) == 2 {
		rest += segments[1]
	}
	u.Path = view.LangURL(lang, rest)
	return u.String()
}
