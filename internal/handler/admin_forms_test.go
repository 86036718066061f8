package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/validation"
	"github.com/shopspring/decimal"
)

func TestParseNewsKeepsFilledTranslations(t *testing.T) {
	values := url.Values{
		"category_id":        {"3"},
		"source_language":    {"ru"},
		"is_published":       {"true"},
		"tr_ru_title":        {"  Заголовок "},
		"tr_ru_image":        {"/media/news/a.png"},
		"tr_uz_title":        {""},
		"tr_kaa_short_title": {"Qisqa"},
	}

	req, err := parseNews(values)
	if err != nil {
		t.Fatalf("parseNews() error = %v", err)
	}
	if req.CategoryID == nil || *req.CategoryID != 3 {
		t.Errorf("CategoryID = %v, want 3", req.CategoryID)
	}
	if !req.IsPublished || req.IsFeatured {
		t.Errorf("published = %v, featured = %v", req.IsPublished, req.IsFeatured)
	}
	if len(req.Translations) != 2 {
		t.Fatalf("translations = %+v, want uz skipped", req.Translations)
	}
	if ru := req.Translations[0]; ru.Lang != "ru" || ru.Title != "Заголовок" || ru.Image != "/media/news/a.png" {
		t.Errorf("ru translation = %+v", ru)
	}

	// kaa has no title, which validation reports.
	if err := validation.Validate(req); errs.StatusOf(err) != http.StatusBadRequest {
		t.Errorf("Validate() = %v, want 400", err)
	}
}

func TestParseNewsRejectsBadCategory(t *testing.T) {
	req, err := parseNews(url.Values{"category_id": {"abc"}})
	if req == nil {
		t.Fatal("parseNews returned no request")
	}

	httpErr, ok := err.(*errs.HTTPError)
	if !ok || len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "category_id" {
		t.Errorf("error = %v", err)
	}
}

func TestParseDebtAmount(t *testing.T) {
	req, err := parseDebt(url.Values{"inn": {"123456789"}, "debt_amount": {"1250,50"}})
	if err != nil {
		t.Fatalf("parseDebt() error = %v", err)
	}
	if !req.DebtAmount.Equal(decimal.RequireFromString("1250.50")) {
		t.Errorf("DebtAmount = %s", req.DebtAmount)
	}

	_, err = parseDebt(url.Values{"debt_amount": {"lots"}})
	if errs.StatusOf(err) != http.StatusBadRequest {
		t.Errorf("error = %v, want 400", err)
	}
}

func TestParseCategoryTranslations(t *testing.T) {
	req, _ := parseCategory(url.Values{
		"slug":        {"sport"},
		"name":        {"Sport"},
		"is_active":   {"on"},
		"tr_ru_name":  {"Спорт"},
		"tr_kaa_name": {""},
	})

	if !req.IsActive {
		t.Error("is_active checkbox not read")
	}
	if len(req.Translations) != 1 || req.Translations[0].Lang != "ru" || req.Translations[0].Name != "Спорт" {
		t.Errorf("translations = %+v", req.Translations)
	}
}

func TestFormBool(t *testing.T) {
	values := url.Values{"a": {"on"}, "b": {"true"}, "c": {"false"}}
	for name, want := range map[string]bool{"a": true, "b": true, "c": false, "missing": false} {
		if got := formBool(values, name); got != want {
			t.Errorf("formBool(%q) = %v, want %v", name, got, want)
		}
	}
}
