package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaFile описывает загруженное изображение.
type MediaFile struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	UploadedBy   *uuid.UUID `db:"uploaded_by" json:"uploaded_by,omitempty"`
	Bucket       string     `db:"bucket" json:"bucket"`
	FilePath     string     `db:"file_path" json:"file_path"`
	FileType     string     `db:"file_type" json:"file_type"`
	FileSize     int64      `db:"file_size" json:"file_size"`
	OriginalSize int64      `db:"original_size" json:"original_size"`
	Width        int        `db:"width" json:"width"`
	Height       int        `db:"height" json:"height"`
	PublicURL    string     `db:"public_url" json:"url"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
