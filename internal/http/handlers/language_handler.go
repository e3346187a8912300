package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/dto"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

// LanguageHandler управляет языком посетителя. Состояние живёт в сессии запроса,
// между запросами оно сохраняется в cookie.
type LanguageHandler struct{}

// NewLanguageHandler создаёт хэндлер.
func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

// Get обрабатывает GET /api/language.
func (h *LanguageHandler) Get(c *gin.Context) {
	session := i18n.MustFromContext(c.Request.Context())
	common.RespondOK(c, dto.NewLanguageResponse(session.Lang()))
}

// Toggle обрабатывает POST /api/language/toggle.
func (h *LanguageHandler) Toggle(c *gin.Context) {
	session := i18n.MustFromContext(c.Request.Context())
	common.RespondOK(c, dto.NewLanguageResponse(session.Toggle()))
}

// Set обрабатывает PUT /api/language.
func (h *LanguageHandler) Set(c *gin.Context) {
	var req dto.LanguageRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	lang, err := i18n.Parse(req.Lang)
	if err != nil {
		common.RespondError(c, apperror.Validation(map[string]string{"lang": "lang must be en or ar"}))
		return
	}

	session := i18n.MustFromContext(c.Request.Context())
	if err := session.Set(lang); err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.NewLanguageResponse(session.Lang()))
}
