package handler

import (
	"os"

	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/service"
	"github.com/gosnews/gosnews/static"
)

type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	API      *APIHandler
	AdminAPI *AdminAPIHandler
	Pages    *PageHandler
	Admin    *AdminHandler
	Language *LanguageHandler
	Frontend *FrontendHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s, static.FS),
		API:      NewAPIHandler(s, services),
		AdminAPI: NewAdminAPIHandler(s, services),
		Pages:    NewPageHandler(s, services),
		Admin:    NewAdminHandler(s, services),
		Language: NewLanguageHandler(s),
		Frontend: NewFrontendHandler(s, os.DirFS(s.Config.Frontend.Dir), s.Config.Frontend.Index),
	}
}
