// Package view renders the server-side pages and the admin UI from
// embedded html templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

const (
	siteLayout  = "templates/layout.html"
	adminLayout = "templates/admin/layout.html"
)

// Template names accepted by Render.
const (
	Home         = "home"
	NewsList     = "news_list"
	NewsDetail   = "news_detail"
	Leaders      = "leaders"
	GuidePreview = "guide_preview"
	Dashboard    = "dashboard"
	Debts        = "debts"
	Error        = "error"

	AdminIndex = "admin_index"
	AdminList  = "admin_list"
	AdminForm  = "admin_form"
	AdminError = "admin_error"
)

var pages = map[string][]string{
	Home:         {siteLayout, "templates/pages/home.html", "templates/pages/cards.html"},
	NewsList:     {siteLayout, "templates/pages/news_list.html", "templates/pages/cards.html", "templates/pages/pagination.html"},
	NewsDetail:   {siteLayout, "templates/pages/news_detail.html", "templates/pages/cards.html"},
	Leaders:      {siteLayout, "templates/pages/leaders.html"},
	GuidePreview: {siteLayout, "templates/pages/guide_preview.html"},
	Dashboard:    {siteLayout, "templates/pages/dashboard.html"},
	Debts:        {siteLayout, "templates/pages/debts.html", "templates/pages/pagination.html"},
	Error:        {siteLayout, "templates/pages/error.html"},

	AdminIndex: {adminLayout, "templates/admin/index.html"},
	AdminList:  {adminLayout, "templates/admin/list.html", "templates/pages/pagination.html"},
	AdminForm:  {adminLayout, "templates/admin/form.html"},
	AdminError: {adminLayout, "templates/pages/error.html"},
}

// Page is the data every public template receives. Path is the request
// path below /<lang>, used to link the same page in other languages.
type Page struct {
	Lang  string
	Title string
	Path  string
	Data  any
}

// AdminPage is the data every admin template receives.
type AdminPage struct {
	Title string
	User  string
	CSRF  string
	Flash string
	Lang  string
	Data  any
}

// ErrorData is rendered by the error template.
type ErrorData struct {
	Status  int
	Message string
	HomeURL string
}

// Renderer implements echo.Renderer.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := FuncMap()

	templates := make(map[string]*template.Template, len(pages))
	for name, files := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template: %s", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// FuncMap is sprig's function map plus the site helpers.
func FuncMap() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["languages"] = i18n.Supported
	funcs["langName"] = i18n.Name
	funcs["t"] = Label
	funcs["langURL"] = LangURL
	return funcs
}

// LangURL joins a language and a path below it: LangURL("ru", "/news")
// is "/ru/news".
func LangURL(lang, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + lang + path
}

// Pagination links the neighbours of the current page.
type Pagination struct {
	Page       int
	TotalPages int
	PrevURL    template.URL
	NextURL    template.URL
}

// NewPagination keeps every query parameter of base except page.
func NewPagination(base *url.URL, page, totalPages int) Pagination {
	p := Pagination{Page: page, TotalPages: totalPages}
	link := func(n int) template.URL {
		q := base.Query()
		q.Set("page", strconv.Itoa(n))
		return template.URL(base.Path + "?" + q.Encode())
	}
	if page > 1 {
		p.PrevURL = link(page - 1)
	}
	if page < totalPages {
		p.NextURL = link(page + 1)
	}
	return p
}
