package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/labstack/echo/v4"
)

type echoResult struct {
	ID   int64  `json:"id"`
	Lang string `json:"lang"`
}

func newAPIEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		httpErr := middleware.ToHTTPError(err)
		_ = c.JSON(httpErr.Status, httpErr)
	}
	return e
}

func TestHandleBindsPathAndQuery(t *testing.T) {
	e := newAPIEcho()
	e.GET("/news/:id", Handle(Handler{}, func(c echo.Context, req *model.IDLangRequest) (echoResult, error) {
		return echoResult{ID: req.ID, Lang: req.Language()}, nil
	}, http.StatusOK, &model.IDLangRequest{}))

	tests := []struct {
		path string
		want echoResult
	}{
		{"/news/5?lang=ru", echoResult{ID: 5, Lang: "ru"}},
		// A fresh request per call: lang must not leak from the call above.
		{"/news/6", echoResult{ID: 6, Lang: "uz"}},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, body = %s", tt.path, rec.Code, rec.Body.String())
		}
		var got echoResult
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.path, got, tt.want)
		}
	}
}

func TestHandleRejectsInvalidRequests(t *testing.T) {
	e := newAPIEcho()
	called := false
	e.GET("/news/:id", Handle(Handler{}, func(c echo.Context, req *model.IDLangRequest) (echoResult, error) {
		called = true
		return echoResult{}, nil
	}, http.StatusOK, &model.IDLangRequest{}))

	for _, path := range []string{"/news/5?lang=en", "/news/0", "/news/abc"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
	}
	if called {
		t.Error("handler ran for an invalid request")
	}
}

func TestHandlePropagatesHandlerErrors(t *testing.T) {
	e := newAPIEcho()
	e.GET("/leaders/:id", Handle(Handler{}, func(c echo.Context, req *model.IDRequest) (*model.Leader, error) {
		return nil, errs.NewNotFoundError("Leader not found", true, nil)
	}, http.StatusOK, &model.IDRequest{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leaders/3", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "Leader not found" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestHandleNoContentAndFile(t *testing.T) {
	e := newAPIEcho()
	deleted := int64(0)
	e.DELETE("/news/:id", HandleNoContent(Handler{}, func(c echo.Context, req *model.IDRequest) error {
		deleted = req.ID
		return nil
	}, http.StatusNoContent, &model.IDRequest{}))
	e.GET("/export", HandleFile(Handler{}, func(c echo.Context, _ *model.EmptyRequest) ([]byte, error) {
		return []byte("id,email\n"), nil
	}, http.StatusOK, &model.EmptyRequest{}, "subscribers.csv", "text/csv"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/news/9", nil))
	if rec.Code != http.StatusNoContent || deleted != 9 {
		t.Errorf("delete: status = %d, deleted = %d", rec.Code, deleted)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/export", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "id,email\n" {
		t.Fatalf("export: status = %d, body = %q", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != "attachment; filename=subscribers.csv" {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "text/csv" {
		t.Errorf("Content-Type = %q", got)
	}
}
