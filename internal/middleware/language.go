package middleware

import (
	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/labstack/echo/v4"
)

const LanguageKey = "lang"

// RequireLanguage guards routes under /:lang. A supported segment is
// stored for GetLanguage; anything else is handed to fallback so that
// frontend paths such as /about keep working.
func RequireLanguage(fallback echo.HandlerFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := c.Param("lang")
			if !i18n.IsSupported(lang) {
				return fallback(c)
			}

			c.Set(LanguageKey, lang)
			return next(c)
		}
	}
}

// GetLanguage returns the language chosen for the request, or "" when no
// language middleware ran.
func GetLanguage(c echo.Context) string {
	lang, _ := c.Get(LanguageKey).(string)
	return lang
}
