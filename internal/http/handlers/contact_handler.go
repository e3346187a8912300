package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/dto"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// ContactHandler принимает сообщения с сайта и отдаёт входящие в админку.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler создаёт хэндлер.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit обрабатывает POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.ContactInput
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	msg, err := h.contacts.Submit(c.Request.Context(), req)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusCreated, "message sent", gin.H{"id": msg.ID})
}

// List обрабатывает GET /api/admin/messages.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.contacts.List(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.NewListResponse(messages))
}

// Get обрабатывает GET /api/admin/messages/:id. Первый просмотр помечает сообщение прочитанным.
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	msg, err := h.contacts.Get(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, msg)
}

// MarkAsRead обрабатывает PUT /api/admin/messages/:id/read.
func (h *ContactHandler) MarkAsRead(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	unread, err := h.contacts.MarkAsRead(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.UnreadCountResponse{Count: unread})
}

// Delete обрабатывает DELETE /api/admin/messages/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		common.RespondError(c, err)
		return
	}
	unread, err := h.contacts.Delete(c.Request.Context(), id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.UnreadCountResponse{Count: unread})
}

// UnreadCount обрабатывает GET /api/admin/messages/unread/count.
func (h *ContactHandler) UnreadCount(c *gin.Context) {
	count, err := h.contacts.CountUnread(c.Request.Context())
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, dto.UnreadCountResponse{Count: count})
}
