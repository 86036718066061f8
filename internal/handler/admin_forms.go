package handler

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/gosnews/gosnews/internal/lib/media"
	"github.com/gosnews/gosnews/internal/lib/translation"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/validation"
	"github.com/gosnews/gosnews/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Translation inputs are named tr_<lang>_<field>.
func trName(lang, field string) string {
	return "tr_" + lang + "_" + field
}

func trValue(values url.Values, lang, field string) string {
	return formValue(values, trName(lang, field))
}

// trNames returns the translation input name of field in every language.
func trNames(field string) []string {
	langs := i18n.Supported()
	names := make([]string, len(langs))
	for i, lang := range langs {
		names[i] = trName(lang, field)
	}
	return names
}

// hasTranslation reports whether any of fields was filled in for lang.
func hasTranslation(values url.Values, lang string, fields ...string) bool {
	for _, field := range fields {
		if trValue(values, lang, field) != "" {
			return true
		}
	}
	return false
}

func formValue(values url.Values, name string) string {
	if v := values[name]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

// formBool reads a checkbox, which is only submitted when checked.
func formBool(values url.Values, name string) bool {
	switch formValue(values, name) {
	case "true", "on", "1":
		return true
	}
	return false
}

func formatTime(t time.Time) string {
	return t.Format("02.01.2006 15:04")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func languageOptions() []view.Option {
	var options []view.Option
	for _, lang := range i18n.Supported() {
		options = append(options, view.Option{Value: lang, Label: i18n.Name(lang)})
	}
	return options
}

func stringOptions(values []string) []view.Option {
	options := make([]view.Option, len(values))
	for i, v := range values {
		options[i] = view.Option{Value: v, Label: v}
	}
	return options
}

func text(name, label, value string, required bool) view.Field {
	return view.Field{Name: name, Label: label, Type: view.FieldText, Value: value, Required: required}
}

func textarea(name, label, value string) view.Field {
	return view.Field{Name: name, Label: label, Type: view.FieldTextarea, Value: value}
}

func checkbox(name, label string, checked bool) view.Field {
	return view.Field{Name: name, Label: label, Type: view.FieldCheckbox, Checked: checked}
}

func selectField(name, label, value string, required bool, options []view.Option) view.Field {
	return view.Field{Name: name, Label: label, Type: view.FieldSelect, Value: value, Required: required, Options: options}
}

func image(name, label, value string) view.Field {
	return view.Field{Name: name, Label: label, Type: view.FieldImage, Value: value}
}

// translationGroups builds one fieldset per language from fields, which
// returns the inputs of a language.
func translationGroups(fields func(lang string) []view.Field) []view.TranslationGroup {
	var groups []view.TranslationGroup
	for _, lang := range i18n.Supported() {
		groups = append(groups, view.TranslationGroup{
			Lang:   lang,
			Name:   i18n.Name(lang),
			Fields: fields(lang),
		})
	}
	return groups
}

// News

func newsTitle(n model.News, lang string) string {
	t, _, ok := translation.Pick(n.Translations, func(t model.NewsTranslation) string { return t.Lang }, lang, n.SourceLanguage)
	if !ok {
		return ""
	}
	return t.Title
}

func newsRequest(n *model.News) *model.SaveNewsRequest {
	req := &model.SaveNewsRequest{
		ID:             n.ID,
		CategoryID:     n.CategoryID,
		SourceLanguage: n.SourceLanguage,
		VideoURL:       n.VideoURL,
		IsPublished:    n.IsPublished,
		IsFeatured:     n.IsFeatured,
	}
	for _, t := range n.Translations {
		req.Translations = append(req.Translations, model.NewsTranslationInput{
			Lang:             t.Lang,
			Image:            t.Image,
			Title:            t.Title,
			ShortTitle:       t.ShortTitle,
			Description:      t.Description,
			ShortDescription: t.ShortDescription,
		})
	}
	return req
}

func parseNews(values url.Values) (*model.SaveNewsRequest, error) {
	req := &model.SaveNewsRequest{
		SourceLanguage: formValue(values, "source_language"),
		VideoURL:       formValue(values, "video_url"),
		IsPublished:    formBool(values, "is_published"),
		IsFeatured:     formBool(values, "is_featured"),
	}

	var err error
	if raw := formValue(values, "category_id"); raw != "" {
		id, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			err = fieldError("category_id", "must be a category")
		} else {
			req.CategoryID = &id
		}
	}

	for _, lang := range i18n.Supported() {
		if !hasTranslation(values, lang, "title", "short_title", "description", "short_description") {
			continue
		}
		req.Translations = append(req.Translations, model.NewsTranslationInput{
			Lang:             lang,
			Image:            trValue(values, lang, "image"),
			Title:            trValue(values, lang, "title"),
			ShortTitle:       trValue(values, lang, "short_title"),
			Description:      trValue(values, lang, "description"),
			ShortDescription: trValue(values, lang, "short_description"),
		})
	}

	return req, err
}

func newsResource(h *AdminHandler) *resource[*model.SaveNewsRequest] {
	svc := h.services.News
	return &resource[*model.SaveNewsRequest]{
		admin:  h,
		name:   "news",
		title:  "News",
		folder: media.FolderNews,
		images: trNames("image"),
		list: func(c echo.Context, r *resource[*model.SaveNewsRequest]) (view.Table, error) {
			ctx := c.Request().Context()
			lang := h.language(c)

			q := &model.ListNewsQuery{}
			if err := validation.BindAndValidate(c, q); err != nil {
				return view.Table{}, err
			}
			result, err := svc.AdminList(ctx, q)
			if err != nil {
				return view.Table{}, err
			}
			categories, err := h.services.Categories.AdminList(ctx)
			if err != nil {
				return view.Table{}, err
			}

			table := view.Table{
				Searchable: true,
				Search:     q.Search,
				Filters: []view.Filter{{
					Name:     "category",
					Label:    "Category",
					Options:  categoryOptions(categories, true),
					Selected: q.Category,
				}},
				Columns:    []string{"Title", "Category", "Published", "Featured", "Views", "Created"},
				Pagination: paginationOf(c, result.Page, result.TotalPages),
			}
			for _, n := range result.Results {
				category := ""
				if n.Category != nil {
					category = n.Category.Name
				}
				table.Rows = append(table.Rows, r.row(n.ID,
					newsTitle(n, lang), category, yesNo(n.IsPublished), yesNo(n.IsFeatured),
					strconv.Itoa(n.ViewsCount), formatTime(n.CreatedAt)))
			}
			return table, nil
		},
		load: func(ctx context.Context, id int64) (*model.SaveNewsRequest, error) {
			n, err := svc.AdminGet(ctx, id)
			if err != nil {
				return nil, err
			}
			return newsRequest(n), nil
		},
		blank: func() *model.SaveNewsRequest {
			return &model.SaveNewsRequest{SourceLanguage: i18n.Default(), IsPublished: true}
		},
		parse: parseNews,
		form: func(ctx context.Context, req *model.SaveNewsRequest) (view.Form, error) {
			categories, err := h.services.Categories.AdminList(ctx)
			if err != nil {
				return view.Form{}, err
			}

			categoryID := ""
			if req.CategoryID != nil {
				categoryID = strconv.FormatInt(*req.CategoryID, 10)
			}
			byLang := make(map[string]model.NewsTranslationInput, len(req.Translations))
			for _, t := range req.Translations {
				byLang[t.Lang] = t
			}

			return view.Form{
				Fields: []view.Field{
					selectField("category_id", "Category", categoryID, false, categoryOptions(categories, false)),
					selectField("source_language", "Source language", req.SourceLanguage, true, languageOptions()),
					{Name: "video_url", Label: "Video URL", Type: view.FieldURL, Value: req.VideoURL},
					checkbox("is_published", "Published", req.IsPublished),
					checkbox("is_featured", "Featured", req.IsFeatured),
				},
				Translations: translationGroups(func(lang string) []view.Field {
					t := byLang[lang]
					return []view.Field{
						text(trName(lang, "title"), "Title", t.Title, false),
						text(trName(lang, "short_title"), "Short title", t.ShortTitle, false),
						image(trName(lang, "image"), "Image", t.Image),
						textarea(trName(lang, "short_description"), "Short description", t.ShortDescription),
						textarea(trName(lang, "description"), "Description", t.Description),
					}
				}),
			}, nil
		},
		create: func(ctx context.Context, req *model.SaveNewsRequest) error {
			_, err := svc.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req *model.SaveNewsRequest) error {
			req.ID = id
			_, err := svc.Update(ctx, req)
			return err
		},
		remove: svc.Delete,
	}
}

// Categories

// categoryOptions lists categories for a select. Filters match on slug,
// forms store the id.
func categoryOptions(categories []model.Category, bySlug bool) []view.Option {
	options := make([]view.Option, len(categories))
	for i, c := range categories {
		value := strconv.FormatInt(c.ID, 10)
		if bySlug {
			value = c.Slug
		}
		options[i] = view.Option{Value: value, Label: c.Name}
	}
	return options
}

func categoryRequest(c *model.Category) *model.SaveCategoryRequest {
	req := &model.SaveCategoryRequest{
		ID:             c.ID,
		Slug:           c.Slug,
		Name:           c.Name,
		Description:    c.Description,
		SourceLanguage: c.SourceLanguage,
		IsActive:       c.IsActive,
	}
	for _, t := range c.Translations {
		req.Translations = append(req.Translations, model.CategoryTranslationInput{Lang: t.Lang, Name: t.Name})
	}
	return req
}

func parseCategory(values url.Values) (*model.SaveCategoryRequest, error) {
	req := &model.SaveCategoryRequest{
		Slug:           formValue(values, "slug"),
		Name:           formValue(values, "name"),
		Description:    formValue(values, "description"),
		SourceLanguage: formValue(values, "source_language"),
		IsActive:       formBool(values, "is_active"),
	}
	for _, lang := range i18n.Supported() {
		if name := trValue(values, lang, "name"); name != "" {
			req.Translations = append(req.Translations, model.CategoryTranslationInput{Lang: lang, Name: name})
		}
	}
	return req, nil
}

func categoryResource(h *AdminHandler) *resource[*model.SaveCategoryRequest] {
	svc := h.services.Categories
	return &resource[*model.SaveCategoryRequest]{
		admin: h,
		name:  "categories",
		title: "Categories",
		list: func(c echo.Context, r *resource[*model.SaveCategoryRequest]) (view.Table, error) {
			categories, err := svc.AdminList(c.Request().Context())
			if err != nil {
				return view.Table{}, err
			}

			table := view.Table{Columns: []string{"Slug", "Name", "Source", "Active"}}
			for _, cat := range categories {
				table.Rows = append(table.Rows, r.row(cat.ID, cat.Slug, cat.Name, cat.SourceLanguage, yesNo(cat.IsActive)))
			}
			return table, nil
		},
		load: func(ctx context.Context, id int64) (*model.SaveCategoryRequest, error) {
			cat, err := svc.AdminGet(ctx, id)
			if err != nil {
				return nil, err
			}
			return categoryRequest(cat), nil
		},
		blank: func() *model.SaveCategoryRequest {
			return &model.SaveCategoryRequest{SourceLanguage: i18n.Default(), IsActive: true}
		},
		parse: parseCategory,
		form: func(_ context.Context, req *model.SaveCategoryRequest) (view.Form, error) {
			byLang := make(map[string]string, len(req.Translations))
			for _, t := range req.Translations {
				byLang[t.Lang] = t.Name
			}

			return view.Form{
				Fields: []view.Field{
					text("slug", "Slug", req.Slug, true),
					text("name", "Name", req.Name, true),
					textarea("description", "Description", req.Description),
					selectField("source_language", "Source language", req.SourceLanguage, true, languageOptions()),
					checkbox("is_active", "Active", req.IsActive),
				},
				Translations: translationGroups(func(lang string) []view.Field {
					return []view.Field{text(trName(lang, "name"), "Name", byLang[lang], false)}
				}),
			}, nil
		},
		create: func(ctx context.Context, req *model.SaveCategoryRequest) error {
			_, err := svc.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req *model.SaveCategoryRequest) error {
			req.ID = id
			_, err := svc.Update(ctx, req)
			return err
		},
		remove: svc.Delete,
	}
}

// Leaders

func leaderRequest(l *model.Leader) *model.SaveLeaderRequest {
	return &model.SaveLeaderRequest{
		ID:             l.ID,
		LeaderName:     l.LeaderName,
		LeaderPosition: l.LeaderPosition,
		LeaderImage:    l.LeaderImage,
		LeaderMail:     l.LeaderMail,
		LeaderPhone:    l.LeaderPhone,
		Region:         l.Region,
		RegionLink:     l.RegionLink,
	}
}

func parseLeader(values url.Values) (*model.SaveLeaderRequest, error) {
	return &model.SaveLeaderRequest{
		LeaderName:     formValue(values, "leader_name"),
		LeaderPosition: formValue(values, "leader_position"),
		LeaderImage:    formValue(values, "leader_image"),
		LeaderMail:     formValue(values, "leader_mail"),
		LeaderPhone:    formValue(values, "leader_phone"),
		Region:         formValue(values, "region"),
		RegionLink:     formValue(values, "region_link"),
	}, nil
}

func leaderResource(h *AdminHandler) *resource[*model.SaveLeaderRequest] {
	svc := h.services.Leaders
	return &resource[*model.SaveLeaderRequest]{
		admin:  h,
		name:   "leaders",
		title:  "Leaders",
		folder: media.FolderLeaders,
		images: []string{"leader_image"},
		list: func(c echo.Context, r *resource[*model.SaveLeaderRequest]) (view.Table, error) {
			ctx := c.Request().Context()

			q := &model.ListLeadersQuery{}
			if err := validation.BindAndValidate(c, q); err != nil {
				return view.Table{}, err
			}
			leaders, err := svc.List(ctx, q)
			if err != nil {
				return view.Table{}, err
			}
			regions, err := svc.Regions(ctx)
			if err != nil {
				return view.Table{}, err
			}

			table := view.Table{
				Filters: []view.Filter{{Name: "region", Label: "Region", Options: stringOptions(regions), Selected: q.Region}},
				Columns: []string{"Name", "Position", "Region", "Phone", "Email"},
			}
			for _, l := range leaders {
				table.Rows = append(table.Rows, r.row(l.ID, l.LeaderName, l.LeaderPosition, l.Region, l.LeaderPhone, l.LeaderMail))
			}
			return table, nil
		},
		load: func(ctx context.Context, id int64) (*model.SaveLeaderRequest, error) {
			l, err := svc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return leaderRequest(l), nil
		},
		blank: func() *model.SaveLeaderRequest {
			return &model.SaveLeaderRequest{}
		},
		parse: parseLeader,
		form: func(_ context.Context, req *model.SaveLeaderRequest) (view.Form, error) {
			return view.Form{
				Fields: []view.Field{
					text("leader_name", "Name", req.LeaderName, true),
					text("leader_position", "Position", req.LeaderPosition, false),
					image("leader_image", "Photo", req.LeaderImage),
					{Name: "leader_mail", Label: "Email", Type: view.FieldEmail, Value: req.LeaderMail},
					text("leader_phone", "Phone", req.LeaderPhone, false),
					text("region", "Region", req.Region, false),
					{Name: "region_link", Label: "Map link (Google or Yandex)", Type: view.FieldURL, Value: req.RegionLink},
				},
			}, nil
		},
		create: func(ctx context.Context, req *model.SaveLeaderRequest) error {
			_, err := svc.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req *model.SaveLeaderRequest) error {
			req.ID = id
			_, err := svc.Update(ctx, req)
			return err
		},
		remove: svc.Delete,
	}
}

// Debts

func debtRequest(d *model.Debt) *model.SaveDebtRequest {
	return &model.SaveDebtRequest{
		ID:          d.ID,
		INN:         d.INN,
		FullName:    d.FullName,
		DebtAmount:  d.DebtAmount,
		DebtType:    d.DebtType,
		Status:      d.Status,
		Description: d.Description,
	}
}

func parseDebt(values url.Values) (*model.SaveDebtRequest, error) {
	req := &model.SaveDebtRequest{
		INN:         formValue(values, "inn"),
		FullName:    formValue(values, "full_name"),
		DebtType:    formValue(values, "debt_type"),
		Status:      formValue(values, "status"),
		Description: formValue(values, "description"),
	}

	raw := strings.ReplaceAll(formValue(values, "debt_amount"), ",", ".")
	if raw == "" {
		return req, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return req, fieldError("debt_amount", "must be a number")
	}
	req.DebtAmount = amount
	return req, nil
}

func debtResource(h *AdminHandler) *resource[*model.SaveDebtRequest] {
	svc := h.services.Debts
	return &resource[*model.SaveDebtRequest]{
		admin: h,
		name:  "debts",
		title: "Debts",
		list: func(c echo.Context, r *resource[*model.SaveDebtRequest]) (view.Table, error) {
			q := &model.ListDebtsQuery{}
			if err := validation.BindAndValidate(c, q); err != nil {
				return view.Table{}, err
			}
			result, err := svc.List(c.Request().Context(), q)
			if err != nil {
				return view.Table{}, err
			}

			table := view.Table{
				Searchable: true,
				Search:     q.Search,
				Filters: []view.Filter{
					{Name: "status", Label: "Status", Options: stringOptions(model.DebtStatuses), Selected: q.Status},
					{Name: "debt_type", Label: "Type", Options: stringOptions(model.DebtTypes), Selected: q.DebtType},
				},
				Columns:    []string{"INN", "Name", "Amount", "Type", "Status"},
				Pagination: paginationOf(c, result.Page, result.TotalPages),
			}
			for _, d := range result.Results {
				table.Rows = append(table.Rows, r.row(d.ID, d.INN, d.FullName, d.DebtAmount.StringFixed(2), d.DebtType, d.Status))
			}
			return table, nil
		},
		load: func(ctx context.Context, id int64) (*model.SaveDebtRequest, error) {
			d, err := svc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return debtRequest(d), nil
		},
		blank: func() *model.SaveDebtRequest {
			return &model.SaveDebtRequest{DebtType: model.DebtTypeTax, Status: model.DebtStatusActive}
		},
		parse: parseDebt,
		form: func(_ context.Context, req *model.SaveDebtRequest) (view.Form, error) {
			return view.Form{
				Fields: []view.Field{
					text("inn", "INN", req.INN, true),
					text("full_name", "Full name", req.FullName, true),
					{Name: "debt_amount", Label: "Amount", Type: view.FieldNumber, Value: req.DebtAmount.String(), Required: true},
					selectField("debt_type", "Type", req.DebtType, true, stringOptions(model.DebtTypes)),
					selectField("status", "Status", req.Status, true, stringOptions(model.DebtStatuses)),
					textarea("description", "Description", req.Description),
				},
			}, nil
		},
		create: func(ctx context.Context, req *model.SaveDebtRequest) error {
			_, err := svc.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req *model.SaveDebtRequest) error {
			req.ID = id
			_, err := svc.Update(ctx, req)
			return err
		},
		remove: svc.Delete,
	}
}

// Guides

func guideTitle(g model.Guide, lang string) string {
	t, _, ok := translation.Pick(g.Translations, func(t model.GuideTranslation) string { return t.Lang }, lang, g.SourceLanguage)
	if !ok {
		return ""
	}
	return t.Title
}

func guideRequest(g *model.Guide) *model.SaveGuideRequest {
	req := &model.SaveGuideRequest{
		ID:             g.ID,
		GuideType:      g.GuideType,
		Link:           g.Link,
		PreviewURL:     g.PreviewURL,
		SourceLanguage: g.SourceLanguage,
	}
	for _, t := range g.Translations {
		req.Translations = append(req.Translations, model.GuideTranslationInput{
			Lang:             t.Lang,
			Title:            t.Title,
			ShortTitle:       t.ShortTitle,
			Description:      t.Description,
			ShortDescription: t.ShortDescription,
		})
	}
	return req
}

func parseGuide(values url.Values) (*model.SaveGuideRequest, error) {
	req := &model.SaveGuideRequest{
		GuideType:      formValue(values, "guide_type"),
		Link:           formValue(values, "link"),
		PreviewURL:     formValue(values, "preview_url"),
		SourceLanguage: formValue(values, "source_language"),
	}
	for _, lang := range i18n.Supported() {
		if !hasTranslation(values, lang, "title", "short_title", "description", "short_description") {
			continue
		}
		req.Translations = append(req.Translations, model.GuideTranslationInput{
			Lang:             lang,
			Title:            trValue(values, lang, "title"),
			ShortTitle:       trValue(values, lang, "short_title"),
			Description:      trValue(values, lang, "description"),
			ShortDescription: trValue(values, lang, "short_description"),
		})
	}
	return req, nil
}

func guideResource(h *AdminHandler) *resource[*model.SaveGuideRequest] {
	svc := h.services.Guides
	return &resource[*model.SaveGuideRequest]{
		admin:  h,
		name:   "guides",
		title:  "Guides",
		folder: media.FolderGuides,
		images: []string{"preview_url"},
		list: func(c echo.Context, r *resource[*model.SaveGuideRequest]) (view.Table, error) {
			q := &model.ListGuidesQuery{}
			if err := validation.BindAndValidate(c, q); err != nil {
				return view.Table{}, err
			}
			guides, err := svc.AdminList(c.Request().Context(), q.GuideType)
			if err != nil {
				return view.Table{}, err
			}

			lang := h.language(c)
			table := view.Table{
				Filters: []view.Filter{{Name: "guide_type", Label: "Type", Options: stringOptions(model.GuideTypes), Selected: q.GuideType}},
				Columns: []string{"Type", "Title", "Link", "Created"},
			}
			for _, g := range guides {
				table.Rows = append(table.Rows, r.row(g.ID, g.GuideType, guideTitle(g, lang), g.Link, formatTime(g.CreatedAt)))
			}
			return table, nil
		},
		load: func(ctx context.Context, id int64) (*model.SaveGuideRequest, error) {
			g, err := svc.AdminGet(ctx, id)
			if err != nil {
				return nil, err
			}
			return guideRequest(g), nil
		},
		blank: func() *model.SaveGuideRequest {
			return &model.SaveGuideRequest{GuideType: model.GuideTypeBusiness, SourceLanguage: i18n.Default()}
		},
		parse: parseGuide,
		form: func(_ context.Context, req *model.SaveGuideRequest) (view.Form, error) {
			byLang := make(map[string]model.GuideTranslationInput, len(req.Translations))
			for _, t := range req.Translations {
				byLang[t.Lang] = t
			}

			return view.Form{
				Fields: []view.Field{
					selectField("guide_type", "Type", req.GuideType, true, stringOptions(model.GuideTypes)),
					{Name: "link", Label: "Link", Type: view.FieldURL, Value: req.Link, Required: true},
					image("preview_url", "Preview (defaults to the YouTube thumbnail)", req.PreviewURL),
					selectField("source_language", "Source language", req.SourceLanguage, true, languageOptions()),
				},
				Translations: translationGroups(func(lang string) []view.Field {
					t := byLang[lang]
					return []view.Field{
						text(trName(lang, "title"), "Title", t.Title, false),
						text(trName(lang, "short_title"), "Short title", t.ShortTitle, false),
						textarea(trName(lang, "short_description"), "Short description", t.ShortDescription),
						textarea(trName(lang, "description"), "Description", t.Description),
					}
				}),
			}, nil
		},
		create: func(ctx context.Context, req *model.SaveGuideRequest) error {
			_, err := svc.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req *model.SaveGuideRequest) error {
			req.ID = id
			_, err := svc.Update(ctx, req)
			return err
		},
		remove: svc.Delete,
	}
}

// Partners

func parsePartner(values url.Values) (*model.SavePartnerRequest, error) {
	return &model.SavePartnerRequest{
		Name:  formValue(values, "name"),
		Image: formValue(values, "image"),
		Link:  formValue(values, "link"),
	}, nil
}

func partnerResource(h *AdminHandler) *resource[*model.SavePartnerRequest] {
	svc := h.services.Partners
	return &resource[*model.SavePartnerRequest]{
		admin:  h,
		name:   "partners",
		title:  "Partners",
		folder: media.FolderPartners,
		images: []string{"image"},
		list: func(c echo.Context, r *resource[*model.SavePartnerRequest]) (view.Table, error) {
			partners, err := svc.List(c.Request().Context())
			if err != nil {
				return view.Table{}, err
			}

			table := view.Table{Columns: []string{"Name", "Link"}}
			for _, p := range partners {
				table.Rows = append(table.Rows, r.row(p.ID, p.Name, p.Link))
			}
			return table, nil
		},
		load: func(ctx context.Context, id int64) (*model.SavePartnerRequest, error) {
			p, err := svc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return &model.SavePartnerRequest{ID: p.ID, Name: p.Name, Image: p.Image, Link: p.Link}, nil
		},
		blank: func() *model.SavePartnerRequest {
			return &model.SavePartnerRequest{}
		},
		parse: parsePartner,
		form: func(_ context.Context, req *model.SavePartnerRequest) (view.Form, error) {
			return view.Form{
				Fields: []view.Field{
					text("name", "Name", req.Name, true),
					image("image", "Logo", req.Image),
					{Name: "link", Label: "Website", Type: view.FieldURL, Value: req.Link},
				},
			}, nil
		},
		create: func(ctx context.Context, req *model.SavePartnerRequest) error {
			_, err := svc.Create(ctx, req)
			return err
		},
		update: func(ctx context.Context, id int64, req *model.SavePartnerRequest) error {
			req.ID = id
			_, err := svc.Update(ctx, req)
			return err
		},
		remove: svc.Delete,
	}
}

func fieldError(field, message string) error {
	return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{Field: field, Error: message}}, nil)
}
