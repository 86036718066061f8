package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Not Found"); got != "NOT_FOUND" {
		t.Errorf("got %q, want NOT_FOUND", got)
	}
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "NEWS_TRANSLATION_ALREADY_EXISTS"
	err := NewBadRequestError("duplicate", true, &code, []FieldError{{Field: "lang", Error: "taken"}}, nil)

	if err.Status != http.StatusBadRequest {
		t.Errorf("Status = %d", err.Status)
	}
	if err.Code != code {
		t.Errorf("Code = %q, want %q", err.Code, code)
	}
	if len(err.Errors) != 1 || err.Errors[0].Field != "lang" {
		t.Errorf("Errors = %+v", err.Errors)
	}
}

func TestStatusOfAndIsNotFound(t *testing.T) {
	notFound := NewNotFoundError("News not found", true, nil)
	wrapped := fmt.Errorf("loading news: %w", notFound)

	if got := StatusOf(wrapped); got != http.StatusNotFound {
		t.Errorf("StatusOf(wrapped) = %d, want 404", got)
	}
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound(wrapped) = false")
	}
	if IsNotFound(errors.New("boom")) {
		t.Error("plain errors are not 404s")
	}
	if got := StatusOf(errors.New("boom")); got != http.StatusInternalServerError {
		t.Errorf("StatusOf(plain) = %d, want 500", got)
	}
	if IsNotFound(nil) {
		t.Error("nil is not a 404")
	}
}

func TestWithMessageCopies(t *testing.T) {
	base := NewForbiddenError("Forbidden", false)
	changed := base.WithMessage("Admins only")

	if base.Message != "Forbidden" {
		t.Error("WithMessage mutated the original error")
	}
	if changed.Message != "Admins only" || changed.Status != http.StatusForbidden {
		t.Errorf("changed = %+v", changed)
	}
	if !errors.Is(changed, base) {
		t.Error("errors.Is should match any *HTTPError")
	}
}
