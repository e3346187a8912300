package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// MediaHandler управляет загрузкой и удалением изображений проектов.
type MediaHandler struct {
	uploads  *service.UploadService
	maxBytes int64
}

// NewMediaHandler создаёт новый хэндлер. maxBytes ограничивает исходный файл до сжатия.
func NewMediaHandler(uploads *service.UploadService, maxBytes int64) *MediaHandler {
	return &MediaHandler{uploads: uploads, maxBytes: maxBytes}
}

// Upload обрабатывает POST /api/admin/media (multipart, поле file).
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		common.RespondError(c, apperror.Validation(map[string]string{"file": "file is required"}))
		return
	}

	// Валидация размера файла
	if file.Size == 0 {
		common.RespondError(c, apperror.New(apperror.ErrCodeUpload, "file is empty"))
		return
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		common.RespondError(c, apperror.New(apperror.ErrCodeUpload,
			fmt.Sprintf("file is too large: maximum is %d MB", h.maxBytes>>20)))
		return
	}

	src, err := file.Open()
	if err != nil {
		common.RespondError(c, apperror.Wrap(err, apperror.ErrCodeUpload, "upload failed"))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		common.RespondError(c, apperror.Wrap(err, apperror.ErrCodeUpload, "upload failed"))
		return
	}

	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondError(c, apperror.ErrUnauthorized)
		return
	}

	media, err := h.uploads.Upload(c.Request.Context(), &userID, data)
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.RespondJSON(c, http.StatusCreated, media)
}

// Delete обрабатывает DELETE /api/admin/media/:id.
func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	if err := h.uploads.Delete(c.Request.Context(), id); err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, "media deleted", nil)
}
