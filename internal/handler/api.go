package handler

import (
	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/service"
	"github.com/labstack/echo/v4"
)

// APIHandler serves the public read API and the subscription form.
type APIHandler struct {
	Handler
	services *service.Services
}

func NewAPIHandler(s *server.Server, services *service.Services) *APIHandler {
	return &APIHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

func (h *APIHandler) Home(c echo.Context, req *model.LangQuery) (*model.HomeResponse, error) {
	return h.services.Home.Home(c.Request().Context(), req.Language())
}

func (h *APIHandler) ListNews(c echo.Context, req *model.ListNewsQuery) (*model.PaginatedResponse[model.LocalizedNews], error) {
	return h.services.News.List(c.Request().Context(), req)
}

func (h *APIHandler) GetNews(c echo.Context, req *model.IDLangRequest) (*model.LocalizedNews, error) {
	return h.services.News.Get(c.Request().Context(), req.ID, req.Language())
}

// GetNewsDetail counts a view.
func (h *APIHandler) GetNewsDetail(c echo.Context, req *model.IDLangRequest) (*model.NewsDetail, error) {
	return h.services.News.Detail(c.Request().Context(), req.ID, req.Language())
}

func (h *APIHandler) ListCategories(c echo.Context, req *model.ListCategoriesQuery) ([]model.LocalizedCategory, error) {
	return h.services.Categories.List(c.Request().Context(), req)
}

func (h *APIHandler) GetCategory(c echo.Context, req *model.IDLangRequest) (*model.LocalizedCategory, error) {
	return h.services.Categories.Get(c.Request().Context(), req.ID, req.Language())
}

func (h *APIHandler) ListLeaders(c echo.Context, req *model.ListLeadersQuery) ([]model.Leader, error) {
	return h.services.Leaders.List(c.Request().Context(), req)
}

func (h *APIHandler) ListRegions(c echo.Context, _ *model.EmptyRequest) ([]string, error) {
	return h.services.Leaders.Regions(c.Request().Context())
}

func (h *APIHandler) GetLeader(c echo.Context, req *model.IDRequest) (*model.Leader, error) {
	return h.services.Leaders.Get(c.Request().Context(), req.ID)
}

func (h *APIHandler) ListDebts(c echo.Context, req *model.ListDebtsQuery) (*model.PaginatedResponse[model.Debt], error) {
	return h.services.Debts.List(c.Request().Context(), req)
}

func (h *APIHandler) GetDebt(c echo.Context, req *model.IDRequest) (*model.Debt, error) {
	return h.services.Debts.Get(c.Request().Context(), req.ID)
}

func (h *APIHandler) ListGuides(c echo.Context, req *model.ListGuidesQuery) ([]model.LocalizedGuide, error) {
	return h.services.Guides.List(c.Request().Context(), req)
}

func (h *APIHandler) GetGuide(c echo.Context, req *model.IDLangRequest) (*model.LocalizedGuide, error) {
	return h.services.Guides.Get(c.Request().Context(), req.ID, req.Language())
}

func (h *APIHandler) ListPartners(c echo.Context, _ *model.EmptyRequest) ([]model.Partner, error) {
	return h.services.Partners.List(c.Request().Context())
}

func (h *APIHandler) GetPartner(c echo.Context, req *model.IDRequest) (*model.Partner, error) {
	return h.services.Partners.Get(c.Request().Context(), req.ID)
}

func (h *APIHandler) Subscribe(c echo.Context, req *model.SubscribeRequest) (*model.Subscriber, error) {
	return h.services.Subscribers.Subscribe(c.Request().Context(), req)
}
