package router

import (
	"net/http"

	"github.com/gosnews/gosnews/internal/handler"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/labstack/echo/v4"
)

func registerAPIRoutes(g *echo.Group, h *handler.Handlers) {
	api := h.API

	g.GET("/home", handler.Handle(api.Handler, api.Home, http.StatusOK, &model.LangQuery{}))

	g.GET("/news", handler.Handle(api.Handler, api.ListNews, http.StatusOK, &model.ListNewsQuery{}))
	g.GET("/news/:id", handler.Handle(api.Handler, api.GetNews, http.StatusOK, &model.IDLangRequest{}))
	g.GET("/news/:id/detail", handler.Handle(api.Handler, api.GetNewsDetail, http.StatusOK, &model.IDLangRequest{}))

	g.GET("/categories", handler.Handle(api.Handler, api.ListCategories, http.StatusOK, &model.ListCategoriesQuery{}))
	g.GET("/categories/:id", handler.Handle(api.Handler, api.GetCategory, http.StatusOK, &model.IDLangRequest{}))

	g.GET("/leaders", handler.Handle(api.Handler, api.ListLeaders, http.StatusOK, &model.ListLeadersQuery{}))
	g.GET("/leaders/regions", handler.Handle(api.Handler, api.ListRegions, http.StatusOK, &model.EmptyRequest{}))
	g.GET("/leaders/:id", handler.Handle(api.Handler, api.GetLeader, http.StatusOK, &model.IDRequest{}))

	g.GET("/debts", handler.Handle(api.Handler, api.ListDebts, http.StatusOK, &model.ListDebtsQuery{}))
	g.GET("/debts/:id", handler.Handle(api.Handler, api.GetDebt, http.StatusOK, &model.IDRequest{}))

	g.GET("/guides", handler.Handle(api.Handler, api.ListGuides, http.StatusOK, &model.ListGuidesQuery{}))
	g.GET("/guides/:id", handler.Handle(api.Handler, api.GetGuide, http.StatusOK, &model.IDLangRequest{}))

	g.GET("/partners", handler.Handle(api.Handler, api.ListPartners, http.StatusOK, &model.EmptyRequest{}))
	g.GET("/partners/:id", handler.Handle(api.Handler, api.GetPartner, http.StatusOK, &model.IDRequest{}))

	g.POST("/subscribe", handler.Handle(api.Handler, api.Subscribe, http.StatusCreated, &model.SubscribeRequest{}))
}

// registerAdminAPIRoutes registers the write side of the API. The group
// carries the Clerk session and admin role checks.
func registerAdminAPIRoutes(g *echo.Group, h *handler.Handlers) {
	admin := h.AdminAPI
	base := admin.Handler

	g.GET("/dashboard", handler.Handle(base, admin.Dashboard, http.StatusOK, &model.LangQuery{}))

	news := g.Group("/news")
	news.GET("", handler.Handle(base, admin.ListNews, http.StatusOK, &model.ListNewsQuery{}))
	news.GET("/:id", handler.Handle(base, admin.GetNews, http.StatusOK, &model.IDRequest{}))
	news.POST("", handler.Handle(base, admin.CreateNews, http.StatusCreated, &model.SaveNewsRequest{}))
	news.PUT("/:id", handler.Handle(base, admin.UpdateNews, http.StatusOK, &model.SaveNewsRequest{}))
	news.DELETE("/:id", handler.HandleNoContent(base, admin.DeleteNews, http.StatusNoContent, &model.IDRequest{}))

	categories := g.Group("/categories")
	categories.GET("", handler.Handle(base, admin.ListCategories, http.StatusOK, &model.EmptyRequest{}))
	categories.GET("/:id", handler.Handle(base, admin.GetCategory, http.StatusOK, &model.IDRequest{}))
	categories.POST("", handler.Handle(base, admin.CreateCategory, http.StatusCreated, &model.SaveCategoryRequest{}))
	categories.PUT("/:id", handler.Handle(base, admin.UpdateCategory, http.StatusOK, &model.SaveCategoryRequest{}))
	categories.DELETE("/:id", handler.HandleNoContent(base, admin.DeleteCategory, http.StatusNoContent, &model.IDRequest{}))

	leaders := g.Group("/leaders")
	leaders.POST("", handler.Handle(base, admin.CreateLeader, http.StatusCreated, &model.SaveLeaderRequest{}))
	leaders.PUT("/:id", handler.Handle(base, admin.UpdateLeader, http.StatusOK, &model.SaveLeaderRequest{}))
	leaders.DELETE("/:id", handler.HandleNoContent(base, admin.DeleteLeader, http.StatusNoContent, &model.IDRequest{}))

	debts := g.Group("/debts")
	debts.POST("", handler.Handle(base, admin.CreateDebt, http.StatusCreated, &model.SaveDebtRequest{}))
	debts.PUT("/:id", handler.Handle(base, admin.UpdateDebt, http.StatusOK, &model.SaveDebtRequest{}))
	debts.DELETE("/:id", handler.HandleNoContent(base, admin.DeleteDebt, http.StatusNoContent, &model.IDRequest{}))

	guides := g.Group("/guides")
	guides.GET("", handler.Handle(base, admin.ListGuides, http.StatusOK, &model.ListGuidesQuery{}))
	guides.GET("/:id", handler.Handle(base, admin.GetGuide, http.StatusOK, &model.IDRequest{}))
	guides.POST("", handler.Handle(base, admin.CreateGuide, http.StatusCreated, &model.SaveGuideRequest{}))
	guides.PUT("/:id", handler.Handle(base, admin.UpdateGuide, http.StatusOK, &model.SaveGuideRequest{}))
	guides.DELETE("/:id", handler.HandleNoContent(base, admin.DeleteGuide, http.StatusNoContent, &model.IDRequest{}))

	partners := g.Group("/partners")
	partners.POST("", handler.Handle(base, admin.CreatePartner, http.StatusCreated, &model.SavePartnerRequest{}))
	partners.PUT("/:id", handler.Handle(base, admin.UpdatePartner, http.StatusOK, &model.SavePartnerRequest{}))
	partners.DELETE("/:id", handler.HandleNoContent(base, admin.DeletePartner, http.StatusNoContent, &model.IDRequest{}))

	g.GET("/subscribers", handler.Handle(base, admin.ListSubscribers, http.StatusOK, &model.ListSubscribersQuery{}))
	g.GET("/subscribers/export", handler.HandleFile(base, admin.ExportSubscribers, http.StatusOK, &model.EmptyRequest{},
		"subscribers.csv", "text/csv"))

	g.POST("/media", handler.Handle(base, admin.UploadMedia, http.StatusCreated, &model.UploadMediaRequest{}))
}
