package router

import (
	"net/http"

	"github.com/gosnews/gosnews/internal/handler"
	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// adminCSRF protects the admin forms. The token travels in a hidden
// form field and the cookie never leaves /admin.
func adminCSRF() echo.MiddlewareFunc {
	return echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:" + handler.CSRFField,
		CookieName:     "admin_csrf",
		CookiePath:     handler.AdminPrefix,
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	})
}

func registerAdminRoutes(g *echo.Group, h *handler.Handlers) {
	g.GET("", h.Admin.Index)
	g.GET("/", h.Admin.Index)
	g.GET("/subscribers", h.Admin.Subscribers)

	for _, screen := range h.Admin.Resources() {
		base := "/" + screen.Name()
		g.GET(base, screen.List)
		g.GET(base+"/new", screen.New)
		g.POST(base, screen.Create)
		g.GET(base+"/:id/edit", screen.Edit)
		g.POST(base+"/:id", screen.Update)
		g.POST(base+"/:id/delete", screen.Delete)
	}
}

// registerPageRoutes registers the pages below /:lang and the frontend
// catch-all. A first segment that is not a supported language belongs to
// the frontend.
func registerPageRoutes(r *echo.Echo, h *handler.Handlers) {
	pages := h.Pages

	site := r.Group("/:lang", middleware.RequireLanguage(h.Frontend.Serve))
	site.GET("", pages.Home)
	site.GET("/", pages.Home)
	site.GET("/news", pages.NewsList)
	site.GET("/news/:id", pages.NewsDetail)
	site.GET("/leaders", pages.Leaders)
	site.GET("/guides/:type", pages.GuideRedirect)
	site.GET("/guides/:type/preview", pages.GuidePreview)
	site.GET("/dashboard", pages.Dashboard)
	site.GET("/debts", pages.Debts)

	r.GET("/", h.Frontend.Serve)
	r.Any("/*", h.Frontend.Serve)
}
