package handler

import (
	"github.com/gosnews/gosnews/internal/errs"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/service"
	"github.com/labstack/echo/v4"
)

// AdminAPIHandler serves content management for authenticated editors.
// Records are returned raw, with every translation row.
type AdminAPIHandler struct {
	Handler
	services *service.Services
}

func NewAdminAPIHandler(s *server.Server, services *service.Services) *AdminAPIHandler {
	return &AdminAPIHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

func (h *AdminAPIHandler) Dashboard(c echo.Context, req *model.LangQuery) (*model.DashboardStats, error) {
	return h.services.Dashboard.Stats(c.Request().Context(), req.Language())
}

// News

func (h *AdminAPIHandler) ListNews(c echo.Context, req *model.ListNewsQuery) (*model.PaginatedResponse[model.News], error) {
	return h.services.News.AdminList(c.Request().Context(), req)
}

func (h *AdminAPIHandler) GetNews(c echo.Context, req *model.IDRequest) (*model.News, error) {
	return h.services.News.AdminGet(c.Request().Context(), req.ID)
}

func (h *AdminAPIHandler) CreateNews(c echo.Context, req *model.SaveNewsRequest) (*model.News, error) {
	return h.services.News.Create(c.Request().Context(), req)
}

func (h *AdminAPIHandler) UpdateNews(c echo.Context, req *model.SaveNewsRequest) (*model.News, error) {
	return h.services.News.Update(c.Request().Context(), req)
}

func (h *AdminAPIHandler) DeleteNews(c echo.Context, req *model.IDRequest) error {
	return h.services.News.Delete(c.Request().Context(), req.ID)
}

// Categories

func (h *AdminAPIHandler) ListCategories(c echo.Context, _ *model.EmptyRequest) ([]model.Category, error) {
	return h.services.Categories.AdminList(c.Request().Context())
}

func (h *AdminAPIHandler) GetCategory(c echo.Context, req *model.IDRequest) (*model.Category, error) {
	return h.services.Categories.AdminGet(c.Request().Context(), req.ID)
}

func (h *AdminAPIHandler) CreateCategory(c echo.Context, req *model.SaveCategoryRequest) (*model.Category, error) {
	return h.services.Categories.Create(c.Request().Context(), req)
}

func (h *AdminAPIHandler) UpdateCategory(c echo.Context, req *model.SaveCategoryRequest) (*model.Category, error) {
	return h.services.Categories.Update(c.Request().Context(), req)
}

func (h *AdminAPIHandler) DeleteCategory(c echo.Context, req *model.IDRequest) error {
	return h.services.Categories.Delete(c.Request().Context(), req.ID)
}

// Leaders

func (h *AdminAPIHandler) CreateLeader(c echo.Context, req *model.SaveLeaderRequest) (*model.Leader, error) {
	return h.services.Leaders.Create(c.Request().Context(), req)
}

func (h *AdminAPIHandler) UpdateLeader(c echo.Context, req *model.SaveLeaderRequest) (*model.Leader, error) {
	return h.services.Leaders.Update(c.Request().Context(), req)
}

func (h *AdminAPIHandler) DeleteLeader(c echo.Context, req *model.IDRequest) error {
	return h.services.Leaders.Delete(c.Request().Context(), req.ID)
}

// Debts

func (h *AdminAPIHandler) CreateDebt(c echo.Context, req *model.SaveDebtRequest) (*model.Debt, error) {
	return h.services.Debts.Create(c.Request().Context(), req)
}

func (h *AdminAPIHandler) UpdateDebt(c echo.Context, req *model.SaveDebtRequest) (*model.Debt, error) {
	return h.services.Debts.Update(c.Request().Context(), req)
}

func (h *AdminAPIHandler) DeleteDebt(c echo.Context, req *model.IDRequest) error {
	return h.services.Debts.Delete(c.Request().Context(), req.ID)
}

// Guides

func (h *AdminAPIHandler) ListGuides(c echo.Context, req *model.ListGuidesQuery) ([]model.Guide, error) {
	return h.services.Guides.AdminList(c.Request().Context(), req.GuideType)
}

func (h *AdminAPIHandler) GetGuide(c echo.Context, req *model.IDRequest) (*model.Guide, error) {
	return h.services.Guides.AdminGet(c.Request().Context(), req.ID)
}

func (h *AdminAPIHandler) CreateGuide(c echo.Context, req *model.SaveGuideRequest) (*model.Guide, error) {
	return h.services.Guides.Create(c.Request().Context(), req)
}

func (h *AdminAPIHandler) UpdateGuide(c echo.Context, req *model.SaveGuideRequest) (*model.Guide, error) {
	return h.services.Guides.Update(c.Request().Context(), req)
}

func (h *AdminAPIHandler) DeleteGuide(c echo.Context, req *model.IDRequest) error {
	return h.services.Guides.Delete(c.Request().Context(), req.ID)
}

// Partners

func (h *AdminAPIHandler) CreatePartner(c echo.Context, req *model.SavePartnerRequest) (*model.Partner, error) {
	return h.services.Partners.Create(c.Request().Context(), req)
}

func (h *AdminAPIHandler) UpdatePartner(c echo.Context, req *model.SavePartnerRequest) (*model.Partner, error) {
	return h.services.Partners.Update(c.Request().Context(), req)
}

func (h *AdminAPIHandler) DeletePartner(c echo.Context, req *model.IDRequest) error {
	return h.services.Partners.Delete(c.Request().Context(), req.ID)
}

// Subscribers

func (h *AdminAPIHandler) ListSubscribers(c echo.Context, req *model.ListSubscribersQuery) (*model.PaginatedResponse[model.Subscriber], error) {
	return h.services.Subscribers.List(c.Request().Context(), req.Search, req.PageQuery)
}

func (h *AdminAPIHandler) ExportSubscribers(c echo.Context, _ *model.EmptyRequest) ([]byte, error) {
	return h.services.Subscribers.Export(c.Request().Context())
}

// UploadMedia stores the multipart "file" field under req.Folder.
func (h *AdminAPIHandler) UploadMedia(c echo.Context, req *model.UploadMediaRequest) (*model.UploadMediaResponse, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, errs.NewBadRequestError("A file is required", true, nil,
			[]errs.FieldError{{Field: "file", Error: "is required"}}, nil)
	}

	url, err := h.services.Media.Upload(c.Request().Context(), req.Folder, file)
	if err != nil {
		return nil, err
	}
	return &model.UploadMediaResponse{URL: url}, nil
}
