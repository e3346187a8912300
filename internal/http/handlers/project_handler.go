package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/dto"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// ProjectHandler обслуживает публичный список проектов и админский CRUD.
type ProjectHandler struct {
	projects *service.ProjectService
}

// NewProjectHandler создаёт хэндлер.
func NewProjectHandler(projects *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List обрабатывает GET /api/projects?category=.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context(), models.ProjectFilter{Category: c.Query("category")})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.NewListResponse(service.LocalizeAll(projects, common.Lang(c))))
}

// Featured обрабатывает GET /api/projects/featured.
func (h *ProjectHandler) Featured(c *gin.Context) {
	projects, err := h.projects.ListFeatured(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.NewListResponse(service.LocalizeAll(projects, common.Lang(c))))
}

// GetBySlug обрабатывает GET /api/projects/:slug.
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	project, err := h.projects.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, service.Localize(project, common.Lang(c)))
}

// AdminList обрабатывает GET /api/admin/projects?search=&category=.
// Админка получает обе языковые версии полей.
func (h *ProjectHandler) AdminList(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context(), models.ProjectFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.NewListResponse(projects))
}

// Template обрабатывает GET /api/admin/projects/new.
func (h *ProjectHandler) Template(c *gin.Context) {
	common.RespondOK(c, h.projects.Template())
}

// AdminGet обрабатывает GET /api/admin/projects/:id.
func (h *ProjectHandler) AdminGet(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	project, err := h.projects.GetByID(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, project)
}

// Create обрабатывает POST /api/admin/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req service.ProjectInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}
	project, err := h.projects.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondJSON(c, http.StatusCreated, project)
}

// Update обрабатывает PUT /api/admin/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	var req service.ProjectInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}
	project, err := h.projects.Update(c.Request.Context(), id, req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, project)
}

// Delete обрабатывает DELETE /api/admin/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, "project deleted", nil)
}

// ToggleFeatured обрабатывает POST /api/admin/projects/:id/featured.
func (h *ProjectHandler) ToggleFeatured(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	project, err := h.projects.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, project)
}
