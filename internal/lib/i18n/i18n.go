// Package i18n knows the site languages and resolves which one a request
// wants.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Site languages. Uzbek is the default and the usual source language.
const (
	Uzbek      = "uz"
	Russian    = "ru"
	Karakalpak = "kaa"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "gosnews_language"
	// CookieMaxAge keeps the preference for a year.
	CookieMaxAge = 365 * 24 * time.Hour
)

var supportedCodes = []string{Uzbek, Russian, Karakalpak}

var supportedTags = []language.Tag{
	language.Uzbek,
	language.Russian,
	language.MustParse(Karakalpak),
}

var tagMatcher = language.NewMatcher(supportedTags)

var localNames = map[string]string{
	Uzbek:      "O'zbekcha",
	Russian:    "Русский",
	Karakalpak: "Qaraqalpaqsha",
}

// Supported returns the language codes in display order.
func Supported() []string {
	codes := make([]string, len(supportedCodes))
	copy(codes, supportedCodes)
	return codes
}

// Default returns the default language code.
func Default() string {
	return Uzbek
}

// IsSupported reports whether code is exactly one of the site languages.
func IsSupported(code string) bool {
	for _, supported := range supportedCodes {
		if code == supported {
			return true
		}
	}
	return false
}

// Normalize maps loose input ("RU", "uz-Latn-UZ", " kaa ") onto a site
// language code.
func Normalize(value string) (string, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", false
	}
	if IsSupported(value) {
		return value, true
	}

	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	if IsSupported(base.String()) {
		return base.String(), true
	}
	return "", false
}

// OrDefault returns code when supported, otherwise the default language.
func OrDefault(code string) string {
	if normalized, ok := Normalize(code); ok {
		return normalized
	}
	return Default()
}

// Name returns the language's own name for itself.
func Name(code string) string {
	if name, ok := localNames[code]; ok {
		return name
	}
	return code
}

// Resolve determines the language of a request: the lang query parameter,
// then the preference cookie, then Accept-Language, then the default.
// The bool reports whether the query parameter picked the language and
// should be persisted as a cookie.
func Resolve(r *http.Request) (string, bool) {
	if r == nil {
		return Default(), false
	}

	if code, ok := Normalize(r.URL.Query().Get(LangParam)); ok {
		return code, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if code, ok := Normalize(cookie.Value); ok {
			return code, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedCodes[index], false
			}
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, code string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    code,
		Path:     "/",
		MaxAge:   int(CookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
