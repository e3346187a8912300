package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// PageHandler отдаёт собранные страницы сайта на языке запроса.
type PageHandler struct {
	pages *service.PageService
}

// NewPageHandler создаёт хэндлер.
func NewPageHandler(pages *service.PageService) *PageHandler {
	return &PageHandler{pages: pages}
}

// Home обрабатывает GET /api/pages/home.
func (h *PageHandler) Home(c *gin.Context) {
	page, err := h.pages.Home(c.Request.Context(), common.Lang(c))
	respondPage(c, page, err)
}

// Portfolio обрабатывает GET /api/pages/portfolio?category=.
func (h *PageHandler) Portfolio(c *gin.Context) {
	page, err := h.pages.Portfolio(c.Request.Context(), common.Lang(c), c.Query("category"))
	respondPage(c, page, err)
}

// Project обрабатывает GET /api/pages/project/:slug.
func (h *PageHandler) Project(c *gin.Context) {
	page, err := h.pages.Project(c.Request.Context(), common.Lang(c), c.Param("slug"))
	respondPage(c, page, err)
}

// About обрабатывает GET /api/pages/about.
func (h *PageHandler) About(c *gin.Context) {
	page, err := h.pages.About(c.Request.Context(), common.Lang(c))
	respondPage(c, page, err)
}

// Contact обрабатывает GET /api/pages/contact.
func (h *PageHandler) Contact(c *gin.Context) {
	page, err := h.pages.Contact(c.Request.Context(), common.Lang(c))
	respondPage(c, page, err)
}

// Layout обрабатывает GET /api/pages/layout: шапка, подвал и типографика.
func (h *PageHandler) Layout(c *gin.Context) {
	page, err := h.pages.Layout(c.Request.Context(), common.Lang(c))
	respondPage(c, page, err)
}

// Dashboard обрабатывает GET /api/admin/dashboard.
func (h *PageHandler) Dashboard(c *gin.Context) {
	page, err := h.pages.Dashboard(c.Request.Context())
	respondPage(c, page, err)
}

func respondPage(c *gin.Context, page any, err error) {
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, page)
}
