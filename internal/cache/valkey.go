package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"
)

// Valkey — кэш поверх Valkey/Redis.
type Valkey struct {
	client valkey.Client
}

// NewValkey подключается по URL вида redis://[user:pass@]host:port/db.
func NewValkey(ctx context.Context, rawURL string, disableClientCache bool) (*Valkey, error) {
	opt, err := valkey.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("cache: некорректный VALKEY_URL: %w", err)
	}
	opt.DisableCache = disableClientCache

	client, err := valkey.NewClient(opt)
	if err != nil {
		return nil, fmt.Errorf("cache: не удалось подключиться к valkey: %w", err)
	}

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache: valkey не отвечает: %w", err)
	}

	return &Valkey{client: client}, nil
}

// Get читает JSON по ключу и декодирует его в dest.
func (v *Valkey) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := v.client.Do(ctx, v.client.B().Get().Key(key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	if dest == nil {
		return true, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return true, nil
}

// Set сохраняет значение в JSON с TTL.
func (v *Valkey) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	cmd := v.client.B().Set().Key(key).Value(string(data)).Ex(ttl).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ключи одной командой.
func (v *Valkey) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := v.client.Do(ctx, v.client.B().Del().Key(keys...).Build()).Error(); err != nil {
		return fmt.Errorf("cache: del: %w", err)
	}
	return nil
}

// InvalidateByPrefix проходит SCAN по шаблону prefix* и удаляет найденные ключи.
func (v *Valkey) InvalidateByPrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		cmd := v.client.B().Scan().Cursor(cursor).Match(prefix + "*").Count(100).Build()
		entry, err := v.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return fmt.Errorf("cache: scan %s*: %w", prefix, err)
		}
		if err := v.Delete(ctx, entry.Elements...); err != nil {
			return err
		}
		cursor = entry.Cursor
		if cursor == 0 {
			return nil
		}
	}
}

// Close закрывает соединение.
func (v *Valkey) Close() error {
	v.client.Close()
	return nil
}

// Ping проверяет доступность сервера, используется health check.
func (v *Valkey) Ping(ctx context.Context) error {
	return v.client.Do(ctx, v.client.B().Ping().Build()).Error()
}
