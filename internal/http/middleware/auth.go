package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

// Context ключи для gin.Context.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AccessTokenParser разбирает access токен.
type AccessTokenParser interface {
	ParseAccess(token string) (uuid.UUID, string, error)
}

// AdminChecker проверяет права администратора по базе.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AuthMiddleware проверяет JWT access токен. Без токена или с невалидным токеном 401.
func AuthMiddleware(tokens AccessTokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		userID, role, err := tokens.ParseAccess(raw)
		if err != nil || userID == uuid.Nil {
			AbortWithError(c, apperror.New(apperror.ErrCodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextRoleKey, role)
		c.Next()
	}
}

// RequireAdmin пропускает только администраторов. Ставится после AuthMiddleware.
// Роль перечитывается из базы: отозванные права действуют сразу.
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get(ContextUserIDKey)
		userID, ok := raw.(uuid.UUID)
		if !exists || !ok {
			AbortWithError(c, apperror.ErrUnauthorized)
			return
		}

		isAdmin, err := checker.IsAdmin(c.Request.Context(), userID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if !isAdmin {
			if logger.Log != nil {
				logger.Log.WithFields(map[string]interface{}{
					"user_id": userID,
					"path":    c.Request.URL.Path,
				}).Warn("auth: доступ к админке без прав")
			}
			AbortWithError(c, apperror.ErrAccessDenied)
			return
		}
		c.Next()
	}
}

// bearerToken достаёт токен из Authorization, для WebSocket также из ?token=.
func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if c.IsWebsocket() {
		return c.Query("token")
	}
	return ""
}
