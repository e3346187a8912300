package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

// UUIDValidator проверяет, что параметр с указанным именем является валидным UUID.
// Использование: router.GET("/projects/:id", UUIDValidator("id"), handler.Get)
func UUIDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param(paramName)
		if idStr == "" {
			AbortWithError(c, apperror.Validation(map[string]string{paramName: paramName + " is required"}))
			return
		}

		if _, err := uuid.Parse(idStr); err != nil {
			AbortWithError(c, apperror.Validation(map[string]string{paramName: paramName + " must be a valid UUID"}))
			return
		}

		c.Next()
	}
}
