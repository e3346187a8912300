package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// maxSettingsBody ограничивает размер значения одного ключа.
const maxSettingsBody = 1 << 20

// SettingResponse — значение одного ключа; value = null, если ключ не сохранён.
type SettingResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// SettingsHandler отдаёт и сохраняет настройки сайта.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler создаёт хэндлер.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetAll обрабатывает GET /api/settings.
func (h *SettingsHandler) GetAll(c *gin.Context) {
	all, err := h.settings.GetAll(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, all)
}

// Get обрабатывает GET /api/settings/:key.
func (h *SettingsHandler) Get(c *gin.Context) {
	key := c.Param("key")
	raw, err := h.settings.Get(c.Request.Context(), key)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	if raw == nil {
		raw = json.RawMessage("null")
	}
	common.RespondOK(c, SettingResponse{Key: key, Value: raw})
}

// Put обрабатывает PUT /api/admin/settings/:key. Тело запроса целиком является значением.
func (h *SettingsHandler) Put(c *gin.Context) {
	key := c.Param("key")
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSettingsBody+1))
	if err != nil {
		common.RespondError(c, apperror.Wrap(err, apperror.ErrCodeBadRequest, "failed to read request body"))
		return
	}
	if len(body) > maxSettingsBody {
		common.RespondError(c, apperror.New(apperror.ErrCodeBadRequest, "settings value is too large"))
		return
	}
	if !json.Valid(body) {
		common.RespondError(c, apperror.New(apperror.ErrCodeBadRequest, "request body must be valid JSON"))
		return
	}

	saved, err := h.settings.Set(c.Request.Context(), key, body)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, SettingResponse{Key: key, Value: saved})
}
