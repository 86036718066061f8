package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func TestRequestIDGeneratesAndReuses(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("generated id %q, header %q", seen, rec.Header().Get(RequestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	if seen != "abc-123" {
		t.Errorf("id = %q, want the incoming one", seen)
	}
}

func TestRequireLanguage(t *testing.T) {
	e := echo.New()
	fallback := func(c echo.Context) error { return c.String(http.StatusOK, "frontend") }
	page := func(c echo.Context) error { return c.String(http.StatusOK, "page:"+GetLanguage(c)) }
	e.GET("/:lang/news", page, RequireLanguage(fallback))

	tests := map[string]string{
		"/ru/news":  "page:ru",
		"/kaa/news": "page:kaa",
		"/en/news":  "frontend",
		"/RU/news":  "frontend",
	}
	for path, want := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Body.String() != want {
			t.Errorf("%s -> %q, want %q", path, rec.Body.String(), want)
		}
	}
}

func TestAdminAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	logger := zerolog.Nop()
	admin := NewAdminAuthMiddleware("editor", string(hash), &logger)

	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, GetUserID(c))
	}, admin.RequireAdmin())

	tests := []struct {
		user, pass string
		want       int
	}{
		{"editor", "s3cret", http.StatusOK},
		{"editor", "wrong", http.StatusUnauthorized},
		{"someone", "s3cret", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.SetBasicAuth(tt.user, tt.pass)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s/%s -> %d, want %d", tt.user, tt.pass, rec.Code, tt.want)
		}
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if rec.Code != http.StatusUnauthorized || rec.Header().Get(echo.HeaderWWWAuthenticate) == "" {
		t.Errorf("anonymous -> %d, challenge %q", rec.Code, rec.Header().Get(echo.HeaderWWWAuthenticate))
	}
}

func TestToHTTPError(t *testing.T) {
	notFound := ToHTTPError(sqlerr.InTable("leaders", pgx.ErrNoRows))
	if notFound.Status != http.StatusNotFound || notFound.Message != "Leader not found" {
		t.Errorf("no rows -> %+v", notFound)
	}

	route := ToHTTPError(echo.ErrNotFound)
	if route.Status != http.StatusNotFound || route.Message != "Route not found" {
		t.Errorf("echo 404 -> %+v", route)
	}

	tooMany := ToHTTPError(echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests"))
	if tooMany.Status != http.StatusTooManyRequests || tooMany.Code != "TOO_MANY_REQUESTS" {
		t.Errorf("echo 429 -> %+v", tooMany)
	}

	original := errs.NewForbiddenError("no", true)
	if ToHTTPError(original) != original {
		t.Error("HTTPError should pass through")
	}

	if got := ToHTTPError(errors.New("boom")); got.Status != http.StatusInternalServerError {
		t.Errorf("unknown -> %+v", got)
	}
}

func TestRequireRole(t *testing.T) {
	auth := &AuthMiddleware{}
	h := auth.RequireRole(AdminRole)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	c.Set(UserRoleKey, "org:member")
	if err := h(c); errs.StatusOf(err) != http.StatusForbidden {
		t.Errorf("member -> %v, want 403", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	c.Set(UserRoleKey, AdminRole)
	if err := h(c); err != nil {
		t.Errorf("admin -> %v", err)
	}
}
