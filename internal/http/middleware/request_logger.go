package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
)

// RequestLogger пишет одну строку лога на запрос.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if logger.Log == nil {
			return
		}
		entry := logger.Log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= 500:
			entry.Error("http request")
		case c.Writer.Status() >= 400:
			entry.Warn("http request")
		default:
			entry.Info("http request")
		}
	}
}
