package router

import (
	"github.com/gosnews/gosnews/internal/config"
	"github.com/gosnews/gosnews/internal/handler"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the site
// itself: health, API docs, embedded assets and uploaded media.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, s *server.Server) {
	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json, openapi.html and the page stylesheets.
	r.StaticFS("/static", static.FS)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)

	// Uploads stored on S3 are addressed by the bucket's public URL.
	if media := s.Config.Media; media.Driver == config.MediaDriverLocal {
		r.Static(media.URLPrefix, media.LocalDir)
	}

	r.POST("/i18n/setlang", h.Language.SetLanguage)
}
