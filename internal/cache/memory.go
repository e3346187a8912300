package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Memory — кэш в памяти процесса с TTL и инвалидацией по префиксу.
// Значения хранятся в сериализованном виде, чтобы вызывающий код не делил
// с кэшем изменяемые срезы и map.
type Memory struct {
	mu     sync.RWMutex
	cache  map[string]*cacheEntry
	stop   chan struct{}
	closed bool
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory создаёт кэш и запускает фоновую очистку истёкших записей.
func NewMemory(cleanupEvery time.Duration) *Memory {
	m := &Memory{
		cache: make(map[string]*cacheEntry),
		stop:  make(chan struct{}),
	}
	if cleanupEvery <= 0 {
		cleanupEvery = 5 * time.Minute
	}
	go m.cleanup(cleanupEvery)
	return m
}

// Get читает значение и декодирует его в dest.
func (m *Memory) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.RLock()
	entry, exists := m.cache[key]
	closed := m.closed
	m.mu.RUnlock()

	if closed {
		return false, ErrClosed
	}
	if !exists || time.Now().After(entry.expiresAt) {
		// истёкшие записи удаляет cleanup
		return false, nil
	}
	if dest == nil {
		return true, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set сохраняет значение с TTL.
func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.cache[key] = &cacheEntry{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete удаляет ключи.
func (m *Memory) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.cache, key)
	}
	return nil
}

// InvalidateByPrefix удаляет все ключи с заданным префиксом.
func (m *Memory) InvalidateByPrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.cache {
		if strings.HasPrefix(key, prefix) {
			delete(m.cache, key)
		}
	}
	return nil
}

// Len возвращает количество записей, включая ещё не очищенные истёкшие.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cache)
}

// Close останавливает фоновую очистку.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	close(m.stop)
	m.cache = make(map[string]*cacheEntry)
	return nil
}

// cleanup периодически удаляет истёкшие записи.
func (m *Memory) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			now := time.Now()
			for key, entry := range m.cache {
				if now.After(entry.expiresAt) {
					delete(m.cache, key)
				}
			}
			m.mu.Unlock()
		}
	}
}
