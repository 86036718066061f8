package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"uz", "uz", true},
		{" RU ", "ru", true},
		{"kaa", "kaa", true},
		{"uz-Latn-UZ", "uz", true},
		{"ru-RU", "ru", true},
		{"en", "", false},
		{"", "", false},
		{"not a tag!", "", false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestOrDefault(t *testing.T) {
	if got := OrDefault("fr"); got != Uzbek {
		t.Errorf("OrDefault(fr) = %q, want uz", got)
	}
	if got := OrDefault("kaa"); got != Karakalpak {
		t.Errorf("OrDefault(kaa) = %q", got)
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Run("query param wins", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=ru", nil)
		r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "kaa"})
		r.Header.Set("Accept-Language", "uz")

		got, persist := Resolve(r)
		if got != Russian || !persist {
			t.Errorf("Resolve() = (%q, %v), want (ru, true)", got, persist)
		}
	})

	t.Run("cookie beats header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: LangCookieName, Value: "kaa"})
		r.Header.Set("Accept-Language", "ru")

		got, persist := Resolve(r)
		if got != Karakalpak || persist {
			t.Errorf("Resolve() = (%q, %v), want (kaa, false)", got, persist)
		}
	})

	t.Run("accept language", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en;q=0.8")

		if got, _ := Resolve(r); got != Russian {
			t.Errorf("Resolve() = %q, want ru", got)
		}
	})

	t.Run("unsupported falls back to default", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/?lang=de", nil)
		r.Header.Set("Accept-Language", "de-DE")

		if got, _ := Resolve(r); got != Uzbek {
			t.Errorf("Resolve() = %q, want uz", got)
		}
	})

	t.Run("nil request", func(t *testing.T) {
		if got, _ := Resolve(nil); got != Uzbek {
			t.Errorf("Resolve(nil) = %q", got)
		}
	})
}

func TestSetLanguageCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, Russian)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != Russian || cookies[0].Path != "/" {
		t.Errorf("cookie = %+v", cookies[0])
	}
}

func TestSupportedIsACopy(t *testing.T) {
	codes := Supported()
	codes[0] = "xx"
	if Supported()[0] != Uzbek {
		t.Error("Supported() exposed its backing slice")
	}
	if Name(Karakalpak) != "Qaraqalpaqsha" {
		t.Errorf("Name(kaa) = %q", Name(Karakalpak))
	}
}
