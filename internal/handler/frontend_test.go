package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/labstack/echo/v4"
)

func frontendFiles() fstest.MapFS {
	return fstest.MapFS{
		"index.html":      {Data: []byte("index")},
		"about.html":      {Data: []byte("about")},
		"app.js":          {Data: []byte("js")},
		"style.css":       {Data: []byte("css")},
		"data.json":       {Data: []byte("{}")},
		"font.woff2":      {Data: []byte("font")},
		"docs/guide.html": {Data: []byte("guide")},
	}
}

func serveFrontend(t *testing.T, h *FrontendHandler, path string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
	return rec, h.Serve(c)
}

func TestFrontendServe(t *testing.T) {
	h := NewFrontendHandler(nil, frontendFiles(), "index.html")

	tests := []struct {
		path        string
		body        string
		contentType string
	}{
		{"/", "index", "text/html"},
		{"/about", "about", "text/html"},
		{"/about.html", "about", "text/html"},
		{"/docs/guide", "guide", "text/html"},
		{"/app.js", "js", "application/javascript"},
		{"/style.css", "css", "text/css"},
		{"/data.json", "{}", "application/json"},
		{"/font.woff2", "font", "application/octet-stream"},
		{"/missing/page", "index", "text/html"},
		{"/docs", "index", "text/html"},
		{"/../../etc/passwd", "index", "text/html"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, err := serveFrontend(t, h, tt.path)
			if err != nil {
				t.Fatalf("Serve() error = %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
			if got := rec.Header().Get(echo.HeaderContentType); got != tt.contentType {
				t.Errorf("content type = %q, want %q", got, tt.contentType)
			}
		})
	}
}

func TestFrontendLeavesBackendPaths(t *testing.T) {
	h := NewFrontendHandler(nil, frontendFiles(), "index.html")

	for _, path := range []string{"/api/v1/unknown", "/admin/nope", "/i18n/x", "/static/missing.css", "/media/news/a.png"} {
		if _, err := serveFrontend(t, h, path); err != echo.ErrNotFound {
			t.Errorf("%s: error = %v, want echo.ErrNotFound", path, err)
		}
	}
}

func TestFrontendWithoutIndex(t *testing.T) {
	h := NewFrontendHandler(nil, fstest.MapFS{}, "index.html")

	for _, path := range []string{"/", "/anything"} {
		rec, err := serveFrontend(t, h, path)
		if err != nil {
			t.Fatalf("Serve() error = %v", err)
		}
		if rec.Code != http.StatusNotFound || rec.Body.String() != "404 Not Found" {
			t.Errorf("%s -> %d %q", path, rec.Code, rec.Body.String())
		}
	}
}
