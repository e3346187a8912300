package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository/common"
)

// MediaRepository работает с таблицей media_files.
type MediaRepository struct {
	db *sqlx.DB
}

// NewMediaRepository создаёт экземпляр.
func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// ErrMediaNotFound сигнализирует об отсутствии файла.
var ErrMediaNotFound = errors.New("media not found")

// Create сохраняет запись о файле.
func (r *MediaRepository) Create(ctx context.Context, media *models.MediaFile) error {
	query := `
		INSERT INTO media_files (uploaded_by, bucket, file_path, file_type, file_size, original_size, width, height, public_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		media.UploadedBy,
		media.Bucket,
		media.FilePath,
		media.FileType,
		media.FileSize,
		media.OriginalSize,
		media.Width,
		media.Height,
		media.PublicURL,
	).Scan(&media.ID, &media.CreatedAt); err != nil {
		return fmt.Errorf("media repository: create %w", err)
	}

	return nil
}

// GetByID возвращает запись о файле.
func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MediaFile, error) {
	return common.GetByID[models.MediaFile](ctx, r.db, "media_files", id, ErrMediaNotFound)
}

// Delete удаляет запись о файле.
func (r *MediaRepository) Delete(ctx context.Context, mediaID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM media_files WHERE id = $1`, mediaID)
	if err != nil {
		return fmt.Errorf("media repository: delete %w", err)
	}
	return common.ExpectAffected(result, ErrMediaNotFound, "media repository: delete")
}
