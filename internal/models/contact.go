package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage — заявка из формы обратной связи.
// После создания меняется только флаг is_read.
type ContactMessage struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	ProjectType string    `db:"project_type" json:"project_type"`
	Message     string    `db:"message" json:"message"`
	IsRead      bool      `db:"is_read" json:"is_read"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
