package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// SeedHandler заполняет базу демо-данными. Роут регистрируется только в development.
type SeedHandler struct {
	seedService *service.SeedService
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed обрабатывает POST /api/seed.
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.seedService.SeedData(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, "seed completed", result)
}
