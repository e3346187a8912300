package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository/common"
)

// ErrMessageNotFound возвращается, когда заявка не найдена.
var ErrMessageNotFound = errors.New("contact message not found")

// ContactRepository работает с таблицей contact_messages.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository создаёт экземпляр репозитория.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create сохраняет заявку как непрочитанную.
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, project_type, message, is_read)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, is_read, created_at
	`

	if err := r.db.QueryRowxContext(ctx, query, msg.Name, msg.Email, msg.ProjectType, msg.Message).
		Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt); err != nil {
		return fmt.Errorf("contact repository: create %w", err)
	}
	return nil
}

// List возвращает заявки от новых к старым.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	messages := []models.ContactMessage{}
	query := `
		SELECT id, name, email, project_type, message, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &messages, query); err != nil {
		return nil, fmt.Errorf("contact repository: list %w", err)
	}
	return messages, nil
}

// GetByID возвращает заявку.
func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	return common.GetByID[models.ContactMessage](ctx, r.db, "contact_messages", id, ErrMessageNotFound)
}

// MarkAsRead отмечает заявку прочитанной. Повторный вызов ничего не меняет.
func (r *ContactRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("contact repository: mark as read %w", err)
	}
	return common.ExpectAffected(result, ErrMessageNotFound, "contact repository: mark as read")
}

// Delete удаляет заявку.
func (r *ContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("contact repository: delete %w", err)
	}
	return common.ExpectAffected(result, ErrMessageNotFound, "contact repository: delete")
}

// CountUnread возвращает число непрочитанных заявок.
func (r *ContactRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE`); err != nil {
		return 0, fmt.Errorf("contact repository: count unread %w", err)
	}
	return count, nil
}
