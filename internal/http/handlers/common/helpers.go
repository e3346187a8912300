package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/dto"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/middleware"
	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

// ErrUserNotFound is returned when user is not found in context
var ErrUserNotFound = errors.New("user not found in request context")

// CurrentUserID extracts user ID from Gin context
func CurrentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return uuid.Nil, ErrUserNotFound
	}

	userID, ok := raw.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrUserNotFound
	}

	return userID, nil
}

// ParseUUIDParam parses UUID from URL parameter
func ParseUUIDParam(c *gin.Context, paramName string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		return uuid.Nil, apperror.Validation(map[string]string{paramName: paramName + " must be a valid UUID"})
	}
	return parsed, nil
}

// BindJSON binds JSON request body; a malformed body becomes a 400 with the parser reason
func BindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeBadRequest, "invalid request body")
	}
	return nil
}

// Lang returns the language of the current request session
func Lang(c *gin.Context) i18n.Lang {
	return middleware.LangFromContext(c)
}

// RespondError sends an error response mapped from the error chain
func RespondError(c *gin.Context, err error) {
	middleware.AbortWithError(c, err)
}

// RespondSuccess sends a standardized success response
func RespondSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// RespondJSON sends a JSON response with the given status code and data
func RespondJSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RespondOK sends 200 with the given data
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RequestMeta collects client metadata stored with sessions
func RequestMeta(c *gin.Context) map[string]string {
	return map[string]string{
		"user_agent": c.GetHeader("User-Agent"),
		"ip":         c.ClientIP(),
	}
}
