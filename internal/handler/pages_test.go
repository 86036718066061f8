package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/view"
	"github.com/labstack/echo/v4"
)

type fakePageNews struct {
	detail *model.NewsDetail
	err    error
	gotID  int64
	gotLng string
}

func (f *fakePageNews) List(context.Context, *model.ListNewsQuery) (*model.PaginatedResponse[model.LocalizedNews], error) {
	res := model.NewPaginatedResponse[model.LocalizedNews](nil, 0, 1, model.DefaultPageSize)
	return &res, nil
}

func (f *fakePageNews) Detail(_ context.Context, id int64, lang string) (*model.NewsDetail, error) {
	f.gotID, f.gotLng = id, lang
	return f.detail, f.err
}

type fakePageGuides struct {
	guide *model.LocalizedGuide
	err   error
}

func (f fakePageGuides) Latest(context.Context, string, string) (*model.LocalizedGuide, error) {
	return f.guide, f.err
}

type fakePageDebts struct {
	calls int
}

func (f *fakePageDebts) List(_ context.Context, q *model.ListDebtsQuery) (*model.PaginatedResponse[model.Debt], error) {
	f.calls++
	res := model.NewPaginatedResponse([]model.Debt{{INN: "123456789", FullName: "Aliyev Anvar", Status: model.DebtStatusActive}}, 1, 1, 20)
	return &res, nil
}

// newSiteEcho serves the page handler below /:lang like the router does.
func newSiteEcho(t *testing.T, h *PageHandler) *echo.Echo {
	t.Helper()
	renderer, err := view.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	e := echo.New()
	e.Renderer = renderer
	site := e.Group("/:lang", middleware.RequireLanguage(func(c echo.Context) error {
		return c.String(http.StatusNotFound, "frontend")
	}))
	site.GET("/news/:id", h.NewsDetail)
	site.GET("/guides/:type", h.GuideRedirect)
	site.GET("/debts", h.Debts)
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestGuideRedirect(t *testing.T) {
	tests := []struct {
		name   string
		guides fakePageGuides
		want   string
	}{
		{
			name:   "latest guide",
			guides: fakePageGuides{guide: &model.LocalizedGuide{Link: "https://youtu.be/abc123"}},
			want:   "https://youtu.be/abc123",
		},
		{
			name:   "lookup failed",
			guides: fakePageGuides{err: errs.NewNotFoundError("Guide not found", true, nil)},
			want:   "/ru/",
		},
		{
			name:   "guide without link",
			guides: fakePageGuides{guide: &model.LocalizedGuide{}},
			want:   "/ru/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newSiteEcho(t, &PageHandler{guides: tt.guides})

			rec := get(e, "/ru/guides/business")
			if rec.Code != http.StatusFound {
				t.Fatalf("status = %d, want 302", rec.Code)
			}
			if loc := rec.Header().Get(echo.HeaderLocation); loc != tt.want {
				t.Errorf("Location = %q, want %q", loc, tt.want)
			}
		})
	}
}

func TestNewsDetailPage(t *testing.T) {
	news := &fakePageNews{detail: &model.NewsDetail{
		News: model.LocalizedNews{
			ID:          7,
			Lang:        "ru",
			Title:       "Новая дорога",
			Description: "Первый абзац\n\nВторой абзац",
			CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
	}}
	e := newSiteEcho(t, &PageHandler{news: news})

	rec := get(e, "/ru/news/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if news.gotID != 7 || news.gotLng != "ru" {
		t.Errorf("Detail called with (%d, %q)", news.gotID, news.gotLng)
	}

	body := rec.Body.String()
	for _, want := range []string{`<html lang="ru">`, "Новая дорога", "<p>Первый абзац</p>", "<p>Второй абзац</p>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}
}

func TestNewsDetailPageNotFound(t *testing.T) {
	e := newSiteEcho(t, &PageHandler{news: &fakePageNews{err: errs.NewNotFoundError("News not found", true, nil)}})

	rec := get(e, "/kaa/news/404")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "News not found") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestNewsDetailPageHidesInternalErrors(t *testing.T) {
	e := newSiteEcho(t, &PageHandler{news: &fakePageNews{err: errors.New("connection refused")}})

	rec := get(e, "/uz/news/1")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal error leaked into the page")
	}
}

func TestDebtsPageSearchesOnlyWithTerm(t *testing.T) {
	debts := &fakePageDebts{}
	e := newSiteEcho(t, &PageHandler{debts: debts})

	rec := get(e, "/uz/debts?search=++")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if debts.calls != 0 {
		t.Errorf("List called %d times for a blank search", debts.calls)
	}

	rec = get(e, "/uz/debts?search=123456789")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if debts.calls != 1 || !strings.Contains(rec.Body.String(), "Aliyev Anvar") {
		t.Errorf("calls = %d, body = %s", debts.calls, rec.Body.String())
	}
}
