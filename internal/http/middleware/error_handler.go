package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// ErrorHandler обрабатывает ошибки централизованно.
// Хэндлеры кладут ошибку через c.Error и выходят, ответ формируется здесь.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Проверяем, не был ли уже отправлен ответ
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		status, body := errorBody(c.Errors.Last().Err)
		logError(c, status, c.Errors.Last().Err)
		c.JSON(status, body)
	}
}

// AbortWithError сразу пишет ответ с ошибкой и прерывает цепочку.
func AbortWithError(c *gin.Context, err error) {
	status, body := errorBody(err)
	logError(c, status, err)
	c.AbortWithStatusJSON(status, body)
}

func errorBody(err error) (int, ErrorResponse) {
	if appErr, ok := apperror.As(err); ok {
		body := ErrorResponse{Error: appErr.PublicMessage(), Code: string(appErr.Code), Errors: appErr.Fields}
		if appErr.HTTPStatus >= http.StatusInternalServerError && containsInternalKeywords(body.Error) {
			body.Error = "internal server error"
		}
		return appErr.HTTPStatus, body
	}

	if errors.Is(err, i18n.ErrInvalidLang) {
		return http.StatusBadRequest, ErrorResponse{Error: "lang must be en or ar", Code: string(apperror.ErrCodeBadRequest)}
	}

	// Необработанная ошибка: причина видна клиенту, если в ней нет внутренних деталей.
	message := "internal server error"
	if errStr := err.Error(); errStr != "" && !containsInternalKeywords(errStr) {
		message = "request failed: " + errStr
	}
	return http.StatusInternalServerError, ErrorResponse{Error: message, Code: string(apperror.ErrCodeInternal)}
}

func logError(c *gin.Context, status int, err error) {
	if logger.Log == nil {
		return
	}
	entry := logger.Log.WithFields(logrus.Fields{
		"error":  err.Error(),
		"status": status,
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request error")
		return
	}
	entry.Debug("Request rejected")
}

// containsInternalKeywords проверяет, содержит ли строка ключевые слова внутренних ошибок.
func containsInternalKeywords(s string) bool {
	keywords := []string{
		"sql:",
		"pq:",
		"database",
		"connection",
		"panic",
		"runtime",
	}

	for _, keyword := range keywords {
		if contains(s, keyword) {
			return true
		}
	}
	return false
}

// contains проверяет, содержит ли строка подстроку (case-insensitive).
func contains(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
