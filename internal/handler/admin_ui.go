package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/service"
	"github.com/gosnews/gosnews/internal/validation"
	"github.com/gosnews/gosnews/internal/view"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	AdminPrefix = "/admin"

	// CSRFField is the form field carrying the CSRF token.
	CSRFField = "_csrf"
)

var flashMessages = map[string]string{
	"saved":   "Saved.",
	"deleted": "Deleted.",
}

// AdminRoutes is implemented by every admin CRUD screen.
type AdminRoutes interface {
	Name() string
	List(c echo.Context) error
	New(c echo.Context) error
	Create(c echo.Context) error
	Edit(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// AdminHandler serves the HTML admin behind basic auth.
type AdminHandler struct {
	Handler
	services *service.Services

	News       *resource[*model.SaveNewsRequest]
	Categories *resource[*model.SaveCategoryRequest]
	Leaders    *resource[*model.SaveLeaderRequest]
	Debts      *resource[*model.SaveDebtRequest]
	Guides     *resource[*model.SaveGuideRequest]
	Partners   *resource[*model.SavePartnerRequest]
}

func NewAdminHandler(s *server.Server, services *service.Services) *AdminHandler {
	h := &AdminHandler{
		Handler:  NewHandler(s),
		services: services,
	}
	h.News = newsResource(h)
	h.Categories = categoryResource(h)
	h.Leaders = leaderResource(h)
	h.Debts = debtResource(h)
	h.Guides = guideResource(h)
	h.Partners = partnerResource(h)
	return h
}

// Resources lists the CRUD screens in menu order.
func (h *AdminHandler) Resources() []AdminRoutes {
	return []AdminRoutes{h.News, h.Categories, h.Leaders, h.Debts, h.Guides, h.Partners}
}

// language picks the language content is previewed in. A ?lang= choice is
// remembered in the language cookie.
func (h *AdminHandler) language(c echo.Context) string {
	lang, fromQuery := i18n.Resolve(c.Request())
	if fromQuery {
		i18n.SetLanguageCookie(c.Response(), lang)
	}
	return lang
}

func (h *AdminHandler) render(c echo.Context, status int, template, title string, data any) error {
	csrf, _ := c.Get(echomw.DefaultCSRFConfig.ContextKey).(string)
	return c.Render(status, template, view.AdminPage{
		Title: title,
		User:  middleware.GetUserID(c),
		CSRF:  csrf,
		Flash: flashMessages[c.QueryParam("flash")],
		Lang:  h.language(c),
		Data:  data,
	})
}

func (h *AdminHandler) renderError(c echo.Context, err error) error {
	httpErr := middleware.ToHTTPError(err)

	event := middleware.GetLogger(c).Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = middleware.GetLogger(c).Error()
	}
	event.Err(err).Int("status", httpErr.Status).Msg("admin request failed")

	message := httpErr.Message
	if !httpErr.Override && httpErr.Status >= http.StatusInternalServerError {
		message = http.StatusText(httpErr.Status)
	}

	return h.render(c, httpErr.Status, view.AdminError, message, view.ErrorData{
		Status:  httpErr.Status,
		Message: message,
		HomeURL: AdminPrefix + "/",
	})
}

func (h *AdminHandler) Index(c echo.Context) error {
	stats, err := h.services.Dashboard.Stats(c.Request().Context(), h.language(c))
	if err != nil {
		return h.renderError(c, err)
	}
	return h.render(c, http.StatusOK, view.AdminIndex, "Dashboard", stats)
}

// Subscribers is a read-only list.
func (h *AdminHandler) Subscribers(c echo.Context) error {
	q := &model.ListSubscribersQuery{}
	if err := validation.BindAndValidate(c, q); err != nil {
		return h.renderError(c, err)
	}

	result, err := h.services.Subscribers.List(c.Request().Context(), q.Search, q.PageQuery)
	if err != nil {
		return h.renderError(c, err)
	}

	table := view.Table{
		Title:      "Subscribers",
		Searchable: true,
		Search:     q.Search,
		Columns:    []string{"Email", "Phone", "Language", "Subscribed"},
		Pagination: paginationOf(c, result.Page, result.TotalPages),
	}
	for _, sub := range result.Results {
		table.Rows = append(table.Rows, view.Row{
			ID:    sub.ID,
			Cells: []string{sub.Email, sub.Phone, sub.Lang, formatTime(sub.CreatedAt)},
		})
	}

	return h.render(c, http.StatusOK, view.AdminList, table.Title, table)
}

// resource is one admin CRUD screen over a save request type. Records
// are edited as their save request, so a rejected form is shown again
// exactly as submitted.
type resource[Req validation.Validatable] struct {
	admin  *AdminHandler
	name   string
	title  string
	folder string

	// images are form fields whose value can be replaced by uploading
	// <field>_file.
	images []string

	list   func(c echo.Context, r *resource[Req]) (view.Table, error)
	load   func(ctx context.Context, id int64) (Req, error)
	blank  func() Req
	parse  func(values url.Values) (Req, error)
	form   func(ctx context.Context, req Req) (view.Form, error)
	create func(ctx context.Context, req Req) error
	update func(ctx context.Context, id int64, req Req) error
	remove func(ctx context.Context, id int64) error
}

func (r *resource[Req]) Name() string {
	return r.name
}

func (r *resource[Req]) listURL() string {
	return AdminPrefix + "/" + r.name
}

func (r *resource[Req]) itemURL(id int64) string {
	return fmt.Sprintf("%s/%s/%d", AdminPrefix, r.name, id)
}

func (r *resource[Req]) row(id int64, cells ...string) view.Row {
	return view.Row{
		ID:        id,
		Cells:     cells,
		EditURL:   r.itemURL(id) + "/edit",
		DeleteURL: r.itemURL(id) + "/delete",
	}
}

func (r *resource[Req]) List(c echo.Context) error {
	table, err := r.list(c, r)
	if err != nil {
		return r.admin.renderError(c, err)
	}
	table.Title = r.title
	table.NewURL = r.listURL() + "/new"
	return r.admin.render(c, http.StatusOK, view.AdminList, r.title, table)
}

func (r *resource[Req]) New(c echo.Context) error {
	return r.showForm(c, http.StatusOK, 0, r.blank(), nil)
}

func (r *resource[Req]) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return r.admin.renderError(c, err)
	}

	req, err := r.load(c.Request().Context(), id)
	if err != nil {
		return r.admin.renderError(c, err)
	}
	return r.showForm(c, http.StatusOK, id, req, nil)
}

func (r *resource[Req]) Create(c echo.Context) error {
	return r.save(c, 0)
}

func (r *resource[Req]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return r.admin.renderError(c, err)
	}
	return r.save(c, id)
}

func (r *resource[Req]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return r.admin.renderError(c, err)
	}

	if err := r.remove(c.Request().Context(), id); err != nil {
		return r.admin.renderError(c, err)
	}

	middleware.GetLogger(c).Info().Str("resource", r.name).Int64("id", id).Msg("admin deleted record")
	return c.Redirect(http.StatusSeeOther, r.listURL()+"?flash=deleted")
}

// save handles a submitted form. id is 0 for new records. Validation and
// constraint errors show the form again; anything else is an error page.
func (r *resource[Req]) save(c echo.Context, id int64) error {
	ctx := c.Request().Context()

	values, err := c.FormParams()
	if err != nil {
		return r.admin.renderError(c, errs.NewBadRequestError("Invalid form", true, nil, nil, nil))
	}

	uploadErrors := r.upload(c, values)

	req, err := r.parse(values)
	if err == nil && len(uploadErrors) > 0 {
		err = errs.NewBadRequestError("Upload failed", true, nil, uploadErrors, nil)
	}
	if err == nil {
		err = validation.Validate(req)
	}
	if err == nil {
		if id == 0 {
			err = r.create(ctx, req)
		} else {
			err = r.update(ctx, id, req)
		}
	}

	if err != nil {
		httpErr := middleware.ToHTTPError(err)
		if httpErr.Status != http.StatusBadRequest {
			return r.admin.renderError(c, err)
		}
		return r.showForm(c, http.StatusBadRequest, id, req, httpErr)
	}

	middleware.GetLogger(c).Info().Str("resource", r.name).Int64("id", id).Msg("admin saved record")
	return c.Redirect(http.StatusSeeOther, r.listURL()+"?flash=saved")
}

// upload stores every attached image and points its field at the new URL.
func (r *resource[Req]) upload(c echo.Context, values url.Values) []errs.FieldError {
	var fieldErrors []errs.FieldError
	for _, field := range r.images {
		file, err := c.FormFile(field + "_file")
		if err != nil || file.Size == 0 {
			continue
		}

		location, err := r.admin.services.Media.Upload(c.Request().Context(), r.folder, file)
		if err != nil {
			fieldErrors = append(fieldErrors, errs.FieldError{Field: field, Error: middleware.ToHTTPError(err).Message})
			continue
		}
		values.Set(field, location)
	}
	return fieldErrors
}

func (r *resource[Req]) showForm(c echo.Context, status int, id int64, req Req, httpErr *errs.HTTPError) error {
	form, err := r.form(c.Request().Context(), req)
	if err != nil {
		return r.admin.renderError(c, err)
	}

	form.CancelURL = r.listURL()
	if id == 0 {
		form.Title = "Add " + r.title
		form.Action = r.listURL()
	} else {
		form.Title = fmt.Sprintf("Edit %s #%d", r.title, id)
		form.Action = r.itemURL(id)
	}
	if httpErr != nil {
		form.SetErrors(httpErr.Message, httpErr.Errors)
	}

	return r.admin.render(c, status, view.AdminForm, form.Title, form)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errs.NewNotFoundError("Record not found", true, nil)
	}
	return id, nil
}

func paginationOf(c echo.Context, page, totalPages int) *view.Pagination {
	p := view.NewPagination(c.Request().URL, page, totalPages)
	return &p
}
