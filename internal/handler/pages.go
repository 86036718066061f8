package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/service"
	"github.com/gosnews/gosnews/internal/validation"
	"github.com/gosnews/gosnews/internal/view"
	"github.com/labstack/echo/v4"
)

type pageNews interface {
	List(ctx context.Context, q *model.ListNewsQuery) (*model.PaginatedResponse[model.LocalizedNews], error)
	Detail(ctx context.Context, id int64, lang string) (*model.NewsDetail, error)
}

type pageGuides interface {
	Latest(ctx context.Context, guideType, lang string) (*model.LocalizedGuide, error)
}

type pageCategories interface {
	List(ctx context.Context, q *model.ListCategoriesQuery) ([]model.LocalizedCategory, error)
}

type pageLeaders interface {
	List(ctx context.Context, q *model.ListLeadersQuery) ([]model.Leader, error)
	Regions(ctx context.Context) ([]string, error)
}

type pageDebts interface {
	List(ctx context.Context, q *model.ListDebtsQuery) (*model.PaginatedResponse[model.Debt], error)
}

type pageHome interface {
	Home(ctx context.Context, lang string) (*model.HomeResponse, error)
}

type pageDashboard interface {
	Stats(ctx context.Context, lang string) (*model.DashboardStats, error)
}

// PageHandler renders the public pages below /:lang.
type PageHandler struct {
	Handler
	home       pageHome
	news       pageNews
	categories pageCategories
	guides     pageGuides
	leaders    pageLeaders
	debts      pageDebts
	dashboard  pageDashboard
}

func NewPageHandler(s *server.Server, services *service.Services) *PageHandler {
	return &PageHandler{
		Handler:    NewHandler(s),
		home:       services.Home,
		news:       services.News,
		categories: services.Categories,
		guides:     services.Guides,
		leaders:    services.Leaders,
		debts:      services.Debts,
		dashboard:  services.Dashboard,
	}
}

type newsListPage struct {
	Results    []model.LocalizedNews
	Search     string
	Category   string
	Categories []model.LocalizedCategory
	Pagination view.Pagination
}

type leadersPage struct {
	Region  string
	Regions []string
	Leaders []model.Leader
}

type debtsPage struct {
	Search     string
	Results    []model.Debt
	Pagination view.Pagination
}

// render writes a page in the request's language. path is the page's
// address below /<lang>.
func (h *PageHandler) render(c echo.Context, template, title, path string, data any) error {
	return c.Render(http.StatusOK, template, view.Page{
		Lang:  middleware.GetLanguage(c),
		Title: title,
		Path:  path,
		Data:  data,
	})
}

// renderError shows err as an HTML error page. Messages not meant for
// visitors are replaced by the status text.
func (h *PageHandler) renderError(c echo.Context, err error) error {
	httpErr := middleware.ToHTTPError(err)
	lang := middleware.GetLanguage(c)

	event := middleware.GetLogger(c).Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = middleware.GetLogger(c).Error()
	}
	event.Err(err).Int("status", httpErr.Status).Msg("page request failed")

	message := http.StatusText(httpErr.Status)
	if httpErr.Override {
		message = httpErr.Message
	}

	return c.Render(httpErr.Status, view.Error, view.Page{
		Lang:  lang,
		Title: message,
		Path:  "/",
		Data: view.ErrorData{
			Status:  httpErr.Status,
			Message: message,
			HomeURL: view.LangURL(lang, "/"),
		},
	})
}

func (h *PageHandler) Home(c echo.Context) error {
	home, err := h.home.Home(c.Request().Context(), middleware.GetLanguage(c))
	if err != nil {
		return h.renderError(c, err)
	}
	return h.render(c, view.Home, "", "/", home)
}

func (h *PageHandler) NewsList(c echo.Context) error {
	ctx := c.Request().Context()
	lang := middleware.GetLanguage(c)

	q := &model.ListNewsQuery{}
	if err := validation.BindAndValidate(c, q); err != nil {
		return h.renderError(c, err)
	}
	q.Lang = lang

	result, err := h.news.List(ctx, q)
	if err != nil {
		return h.renderError(c, err)
	}

	categories, err := h.categories.List(ctx, &model.ListCategoriesQuery{LangQuery: model.LangQuery{Lang: lang}})
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, view.NewsList, view.Label(lang, "news"), "/news", newsListPage{
		Results:    result.Results,
		Search:     q.Search,
		Category:   q.Category,
		Categories: categories,
		Pagination: view.NewPagination(c.Request().URL, result.Page, result.TotalPages),
	})
}

// NewsDetail shows one published news item and counts the view.
func (h *PageHandler) NewsDetail(c echo.Context) error {
	req := &model.IDRequest{}
	if err := validation.BindAndValidate(c, req); err != nil {
		return h.renderError(c, err)
	}

	detail, err := h.news.Detail(c.Request().Context(), req.ID, middleware.GetLanguage(c))
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, view.NewsDetail, detail.News.Title, fmt.Sprintf("/news/%d", req.ID), detail)
}

func (h *PageHandler) Leaders(c echo.Context) error {
	ctx := c.Request().Context()
	lang := middleware.GetLanguage(c)

	q := &model.ListLeadersQuery{}
	if err := validation.BindAndValidate(c, q); err != nil {
		return h.renderError(c, err)
	}

	leaders, err := h.leaders.List(ctx, q)
	if err != nil {
		return h.renderError(c, err)
	}

	regions, err := h.leaders.Regions(ctx)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, view.Leaders, view.Label(lang, "leaders"), "/leaders", leadersPage{
		Region:  q.Region,
		Regions: regions,
		Leaders: leaders,
	})
}

// GuideRedirect sends the visitor to the newest guide of the requested
// type written in their language. Anything that goes wrong lands them on
// the home page instead.
func (h *PageHandler) GuideRedirect(c echo.Context) error {
	lang := middleware.GetLanguage(c)
	guideType := c.Param("type")

	guide, err := h.guides.Latest(c.Request().Context(), guideType, lang)
	if err != nil || guide.Link == "" {
		middleware.GetLogger(c).Warn().
			Err(err).
			Str("guide_type", guideType).
			Msg("no guide to redirect to")
		return c.Redirect(http.StatusFound, view.LangURL(lang, "/"))
	}

	return c.Redirect(http.StatusFound, guide.Link)
}

// GuidePreview shows the guide GuideRedirect would open, with its video
// embedded.
func (h *PageHandler) GuidePreview(c echo.Context) error {
	lang := middleware.GetLanguage(c)
	guideType := c.Param("type")

	guide, err := h.guides.Latest(c.Request().Context(), guideType, lang)
	if err != nil {
		middleware.GetLogger(c).Warn().
			Err(err).
			Str("guide_type", guideType).
			Msg("no guide to preview")
		return c.Redirect(http.StatusFound, view.LangURL(lang, "/"))
	}

	return h.render(c, view.GuidePreview, guide.Title, "/guides/"+guideType+"/preview", guide)
}

func (h *PageHandler) Dashboard(c echo.Context) error {
	lang := middleware.GetLanguage(c)

	stats, err := h.dashboard.Stats(c.Request().Context(), lang)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, view.Dashboard, view.Label(lang, "dashboard"), "/dashboard", stats)
}

// Debts looks debtors up by INN or name. Without a search term only the
// form is shown.
func (h *PageHandler) Debts(c echo.Context) error {
	lang := middleware.GetLanguage(c)

	q := &model.ListDebtsQuery{}
	if err := validation.BindAndValidate(c, q); err != nil {
		return h.renderError(c, err)
	}
	q.Search = strings.TrimSpace(q.Search)

	page := debtsPage{Search: q.Search}
	if q.Search != "" {
		result, err := h.debts.List(c.Request().Context(), q)
		if err != nil {
			return h.renderError(c, err)
		}
		page.Results = result.Results
		page.Pagination = view.NewPagination(c.Request().URL, result.Page, result.TotalPages)
	}

	return h.render(c, view.Debts, view.Label(lang, "debts"), "/debts", page)
}
