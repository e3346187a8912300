package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository/common"
)

// SettingsRepository работает с таблицей site_settings (одна строка на ключ).
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository создаёт экземпляр репозитория.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get возвращает сырое JSON-значение ключа или nil, если строки нет.
func (r *SettingsRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	if err := r.db.GetContext(ctx, &value, `SELECT value FROM site_settings WHERE key = $1`, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("settings repository: get %w", err)
	}
	return value, nil
}

// List возвращает все сохранённые ключи.
func (r *SettingsRepository) List(ctx context.Context) ([]models.SiteSetting, error) {
	settings := []models.SiteSetting{}
	if err := r.db.SelectContext(ctx, &settings, `SELECT key, value, updated_at FROM site_settings ORDER BY key`); err != nil {
		return nil, fmt.Errorf("settings repository: list %w", err)
	}
	return settings, nil
}

// Upsert создаёт или перезаписывает значение ключа.
func (r *SettingsRepository) Upsert(ctx context.Context, key string, value []byte) error {
	if _, err := r.db.ExecContext(ctx, upsertSettingQuery, key, value); err != nil {
		return fmt.Errorf("settings repository: upsert %w", err)
	}
	return nil
}

// UpsertMany записывает несколько ключей в одной транзакции.
func (r *SettingsRepository) UpsertMany(ctx context.Context, values map[string][]byte) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		for key, value := range values {
			if _, err := tx.ExecContext(ctx, upsertSettingQuery, key, value); err != nil {
				return fmt.Errorf("settings repository: upsert many %s %w", key, err)
			}
		}
		return nil
	})
}

const upsertSettingQuery = `
	INSERT INTO site_settings (key, value, updated_at)
	VALUES ($1, $2::jsonb, NOW())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value,
		updated_at = NOW()
`
