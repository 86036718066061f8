package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("HandleError() returned %T, want *errs.HTTPError", err)
	}
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "news_translations",
		ConstraintName: "news_translations_lang_key",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "NEWS_TRANSLATION_ALREADY_EXISTS" {
		t.Errorf("Code = %q", httpErr.Code)
	}
	if httpErr.Message != "A News Translation with this Lang already exists" {
		t.Errorf("Message = %q", httpErr.Message)
	}
	if !httpErr.Override {
		t.Error("unique violations should be shown to users")
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:       "23503",
		TableName:  "news",
		ColumnName: "category_id",
	}))

	httpErr := asHTTPError(t, err)
	if httpErr.Code != "NEWS_NOT_FOUND" {
		t.Errorf("Code = %q, want NEWS_NOT_FOUND", httpErr.Code)
	}
	if httpErr.Message != "The referenced Category does not exist" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23502", TableName: "debts", ColumnName: "full_name"})

	httpErr := asHTTPError(t, err)
	if httpErr.Code != "DEBT_REQUIRED" {
		t.Errorf("Code = %q", httpErr.Code)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "full_name" {
		t.Errorf("Errors = %+v", httpErr.Errors)
	}
}

func TestHandleErrorCheckViolationOnCategories(t *testing.T) {
	err := HandleError(&pgconn.PgError{Code: "23514", TableName: "categories", ColumnName: "source_language"})

	httpErr := asHTTPError(t, err)
	if httpErr.Code != "CATEGORY_INVALID" {
		t.Errorf("Code = %q, want CATEGORY_INVALID", httpErr.Code)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(InTable("leaders", pgx.ErrNoRows)))
	if httpErr.Status != http.StatusNotFound || httpErr.Message != "Leader not found" {
		t.Errorf("got %d %q", httpErr.Status, httpErr.Message)
	}

	httpErr = asHTTPError(t, HandleError(InTable("news", pgx.ErrNoRows)))
	if httpErr.Message != "News not found" {
		t.Errorf("Message = %q, want News not found", httpErr.Message)
	}

	httpErr = asHTTPError(t, HandleError(pgx.ErrNoRows))
	if httpErr.Message != "Resource not found" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestHandleErrorPassesHTTPErrorsThrough(t *testing.T) {
	original := errs.NewForbiddenError("nope", false)
	if got := HandleError(original); got != original {
		t.Errorf("HandleError() = %v, want the original error", got)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", httpErr.Status)
	}
}

func TestInTableAndIsNotFound(t *testing.T) {
	if InTable("news", nil) != nil {
		t.Error("InTable(nil) should stay nil")
	}
	err := InTable("guides", pgx.ErrNoRows)
	if !IsNotFound(err) {
		t.Error("IsNotFound() = false for wrapped ErrNoRows")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("IsNotFound() = true for unrelated error")
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := map[string]string{
		"unique_partners_name":        "name",
		"categories_slug_key":         "slug",
		"subscribers_email_key":       "email",
		"guide_translations_lang_key": "lang",
		"":                            "",
		"weird":                       "",
	}
	for constraint, want := range tests {
		if got := extractColumnForUniqueViolation(constraint); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", constraint, got, want)
		}
	}
}
