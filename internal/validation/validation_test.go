package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/labstack/echo/v4"
)

type itemInput struct {
	Lang  string `json:"lang" validate:"required,lang"`
	Title string `json:"title" validate:"required,max=5"`
}

type createRequest struct {
	ID    int64       `param:"id" json:"-"`
	Slug  string      `json:"slug" validate:"required,slug"`
	Items []itemInput `json:"items" validate:"required,min=1,dive"`
}

func (r *createRequest) Validate() error {
	if err := Struct(r); err != nil {
		return err
	}
	langs := make([]string, len(r.Items))
	for i, item := range r.Items {
		langs[i] = item.Lang
	}
	return UniqueLanguages("items", langs)
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("7")
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error %v (%T) is not *errs.HTTPError", err, err)
	}
	return httpErr
}

func TestBindAndValidateSuccess(t *testing.T) {
	var req createRequest
	err := BindAndValidate(newContext(`{"slug":"local-news","items":[{"lang":"uz","title":"Salom"}]}`), &req)
	if err != nil {
		t.Fatalf("BindAndValidate() error = %v", err)
	}
	if req.ID != 7 || req.Slug != "local-news" || len(req.Items) != 1 {
		t.Errorf("bound %+v", req)
	}
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	var req createRequest
	err := BindAndValidate(newContext(`{"slug":"Bad Slug","items":[{"lang":"en","title":"too long"}]}`), &req)

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d", httpErr.Status)
	}

	got := map[string]string{}
	for _, fe := range httpErr.Errors {
		got[fe.Field] = fe.Error
	}
	want := map[string]string{
		"slug":           "must contain lowercase letters, digits and hyphens only",
		"items[0].lang":  "must be one of: uz ru kaa",
		"items[0].title": "must not exceed 5 characters",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("error for %s = %q, want %q (all: %v)", field, got[field], msg, got)
		}
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	var req createRequest
	err := BindAndValidate(newContext(`{"slug":"a","items":[{"lang":"uz","title":"a"},{"lang":"uz","title":"b"}]}`), &req)

	httpErr := asHTTPError(t, err)
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "items" {
		t.Errorf("Errors = %+v", httpErr.Errors)
	}
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	var req createRequest
	httpErr := asHTTPError(t, BindAndValidate(newContext(`{"slug":`), &req))
	if httpErr.Status != http.StatusBadRequest || httpErr.Message == "" {
		t.Errorf("got %d %q", httpErr.Status, httpErr.Message)
	}
}
