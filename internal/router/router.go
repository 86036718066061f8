// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the route groups, mapping
// specific paths to their corresponding handlers: the JSON API, the
// admin screens, the server-rendered pages and the frontend catch-all.
package router

import (
	"fmt"

	"github.com/gosnews/gosnews/internal/handler"
	"github.com/gosnews/gosnews/internal/middleware"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/view"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) (*echo.Echo, error) {
	middlewares := middleware.NewMiddlewares(s)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Renderer = renderer
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// global middlewares
	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h, s)

	// JSON API. /api is kept as an alias of /api/v1 for older clients.
	registerAPIRoutes(router.Group("/api/v1"), h)
	registerAPIRoutes(router.Group("/api"), h)
	registerAdminAPIRoutes(router.Group("/api/v1/admin",
		middlewares.Auth.RequireAuth,
		middlewares.Auth.RequireRole(middleware.AdminRole),
	), h)

	registerAdminRoutes(router.Group(handler.AdminPrefix,
		middlewares.AdminAuth.RequireAdmin(),
		adminCSRF(),
	), h)

	registerPageRoutes(router, h)

	return router, nil
}
