package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed возвращается после Close.
var ErrClosed = errors.New("cache closed")

// Cache хранит JSON-представления значений с TTL.
// Get возвращает found=false без ошибки, если ключа нет или он истёк.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	InvalidateByPrefix(ctx context.Context, prefix string) error
	Close() error
}

// GetOrSet читает значение из кэша или вычисляет и сохраняет его.
// Ошибка записи в кэш не ломает чтение: значение всё равно возвращается.
func GetOrSet[T any](ctx context.Context, c Cache, key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var cached T
	if found, err := c.Get(ctx, key, &cached); err == nil && found {
		return cached, nil
	}

	value, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}

	_ = c.Set(ctx, key, value, ttl)
	return value, nil
}
