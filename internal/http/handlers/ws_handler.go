package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений админки.
// Права проверяются middleware до апгрейда.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер. Пустой allowedOrigins пропускает любой Origin.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if len(allowed) == 0 {
					return true
				}
				_, ok := allowed[r.Header.Get("Origin")]
				return ok
			},
		},
	}
}

// Handle обслуживает GET /api/admin/ws?token=...
func (h *WSHandler) Handle(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondError(c, apperror.ErrUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже записал ответ клиенту
		if logger.Log != nil {
			logger.Log.WithError(err).Debug("ws: апгрейд не удался")
		}
		return
	}

	client := ws.NewClient(conn, h.hub, userID)
	if !h.hub.Register(client) {
		client.Close()
		return
	}

	client.Run(c.Request.Context())
}
