package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"github.com/hadeelmohammed/portfolio-backend/internal/imaging"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
	"github.com/hadeelmohammed/portfolio-backend/internal/storage"
)

// allowedImageTypes — MIME-типы, распознаваемые по магическим байтам.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MediaRepository описывает хранилище метаданных загрузок.
type MediaRepository interface {
	Create(ctx context.Context, media *models.MediaFile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MediaFile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FileStore сохраняет и удаляет файлы.
type FileStore interface {
	Save(ctx context.Context, bucket, name string, data []byte) (string, error)
	Delete(ctx context.Context, relativePath string) error
}

// UploadService сжимает изображения и сохраняет их в бакет project-images.
type UploadService struct {
	repo          MediaRepository
	files         FileStore
	publicBaseURL string
	opts          imaging.Options
}

// NewUploadService создаёт сервис загрузки.
func NewUploadService(repo MediaRepository, files FileStore, publicBaseURL string, opts imaging.Options) *UploadService {
	return &UploadService{repo: repo, files: files, publicBaseURL: publicBaseURL, opts: opts}
}

// Upload определяет тип по содержимому, сжимает и сохраняет изображение
// под новым именем <uuid>.<ext>.
func (s *UploadService) Upload(ctx context.Context, uploadedBy *uuid.UUID, data []byte) (*models.MediaFile, error) {
	if len(data) == 0 {
		return nil, apperror.New(apperror.ErrCodeUpload, "file is empty")
	}

	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return nil, apperror.New(apperror.ErrCodeUpload, "unable to detect file type, only images are allowed")
	}
	if !allowedImageTypes[kind.MIME.Value] {
		return nil, apperror.New(apperror.ErrCodeUpload,
			fmt.Sprintf("unsupported file type %s, allowed: jpeg, png, gif, webp", kind.MIME.Value))
	}

	compressed, err := imaging.Compress(data, s.opts)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeUpload, "image processing failed")
	}

	name := uuid.NewString() + "." + compressed.Ext()
	relative, err := s.files.Save(ctx, storage.BucketProjectImages, name, compressed.Data)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeUpload, "upload failed")
	}

	media := &models.MediaFile{
		UploadedBy:   uploadedBy,
		Bucket:       storage.BucketProjectImages,
		FilePath:     relative,
		FileType:     compressed.ContentType(),
		FileSize:     int64(len(compressed.Data)),
		OriginalSize: compressed.OriginalSize,
		Width:        compressed.Width,
		Height:       compressed.Height,
		PublicURL:    storage.PublicURL(s.publicBaseURL, relative),
	}

	if err := s.repo.Create(ctx, media); err != nil {
		// без записи в базе файл никто не удалит
		if delErr := s.files.Delete(ctx, relative); delErr != nil && logger.Log != nil {
			logger.Log.WithError(delErr).WithField("path", relative).Warn("upload service: не удалось удалить файл")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeUpload, "upload failed")
	}

	if logger.Log != nil {
		logger.Log.WithFields(map[string]interface{}{
			"media_id":      media.ID,
			"path":          media.FilePath,
			"size":          media.FileSize,
			"original_size": media.OriginalSize,
		}).Info("upload service: изображение загружено")
	}
	return media, nil
}

// Delete удаляет запись и файл.
func (s *UploadService) Delete(ctx context.Context, id uuid.UUID) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return apperror.ErrMediaNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return apperror.ErrMediaNotFound
		}
		return err
	}

	return s.files.Delete(ctx, media.FilePath)
}
