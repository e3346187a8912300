package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

// ErrTooManyRequests отдаётся при превышении лимита.
var ErrTooManyRequests = &apperror.AppError{
	Code:       "RATE_LIMITED",
	Message:    "too many requests, please try again later",
	HTTPStatus: http.StatusTooManyRequests,
}

// RateLimitMiddleware создаёт middleware для ограничения количества запросов.
// По умолчанию: 10 запросов в минуту с одного IP. Группы с разным prefix считаются отдельно.
func RateLimitMiddleware(prefix string, limit int64, period time.Duration) gin.HandlerFunc {
	if limit <= 0 {
		limit = 10
	}
	if period <= 0 {
		period = 1 * time.Minute
	}

	rate := limiter.Rate{
		Period: period,
		Limit:  limit,
	}
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          "portfolio:" + prefix,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
	})
	instance := limiter.New(store, rate)

	return func(c *gin.Context) {
		key := c.ClientIP()
		context, err := instance.Get(c, key)
		if err != nil {
			AbortWithError(c, fmt.Errorf("rate limiter: %w", err))
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", context.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", context.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", context.Reset))

		if context.Reached {
			AbortWithError(c, ErrTooManyRequests)
			return
		}

		c.Next()
	}
}
