package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/goroutine"
	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/notify"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
	"github.com/hadeelmohammed/portfolio-backend/internal/validation"
	"github.com/hadeelmohammed/portfolio-backend/internal/ws"
)

const notifyTimeout = 15 * time.Second

// ContactRepository описывает хранилище заявок.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int, error)
}

// InboxPublisher доставляет события входящих в открытые панели управления.
type InboxPublisher interface {
	Publish(event string, data any) error
}

// ContactInput — поля формы обратной связи.
type ContactInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	ProjectType string `json:"project_type" validate:"required,category"`
	Message     string `json:"message" validate:"required,min=10,max=1000"`
}

// UnreadCount — полезная нагрузка события inbox.unread.
type UnreadCount struct {
	Count int `json:"count"`
}

// ContactService принимает заявки и обслуживает входящие в админке.
type ContactService struct {
	repo      ContactRepository
	notifier  notify.Notifier
	publisher InboxPublisher
	spawn     func(fn func())
}

// NewContactService создаёт сервис заявок. notifier и publisher могут быть nil.
func NewContactService(repo ContactRepository, notifier notify.Notifier, publisher InboxPublisher) *ContactService {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &ContactService{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		spawn:     goroutine.SafeGo,
	}
}

// Submit проверяет и сохраняет заявку, затем в фоне отправляет письмо.
// Ошибка отправки письма не влияет на результат.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.ProjectType = strings.TrimSpace(in.ProjectType)
	in.Message = strings.TrimSpace(in.Message)

	if fields := validation.Struct(in); fields != nil {
		return nil, apperror.Validation(fields)
	}

	msg := &models.ContactMessage{
		Name:        in.Name,
		Email:       in.Email,
		ProjectType: in.ProjectType,
		Message:     in.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if logger.Log != nil {
		logger.Log.WithFields(map[string]interface{}{
			"message_id":   msg.ID,
			"project_type": msg.ProjectType,
		}).Info("contact service: получена новая заявка")
	}

	sent := *msg
	s.spawn(func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := s.notifier.NotifyContact(notifyCtx, &sent); err != nil && logger.Log != nil {
			logger.Log.WithError(err).WithField("message_id", sent.ID).Warn("contact service: не удалось отправить уведомление")
		}
	})

	s.publish(ws.EventInboxNew, &sent)
	_, _ = s.publishUnread(ctx)
	return msg, nil
}

// List возвращает заявки от новых к старым.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.List(ctx)
}

// Get возвращает заявку и отмечает её прочитанной при первом просмотре.
func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapMessageError(err)
	}
	if msg.IsRead {
		return msg, nil
	}

	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return nil, mapMessageError(err)
	}
	msg.IsRead = true
	_, _ = s.publishUnread(ctx)
	return msg, nil
}

// MarkAsRead отмечает заявку прочитанной и возвращает новое число непрочитанных.
func (s *ContactService) MarkAsRead(ctx context.Context, id uuid.UUID) (int, error) {
	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return 0, mapMessageError(err)
	}
	return s.publishUnread(ctx)
}

// Delete удаляет заявку и возвращает новое число непрочитанных.
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) (int, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, mapMessageError(err)
	}
	return s.publishUnread(ctx)
}

// CountUnread читает счётчик из базы, без локальных вычитаний.
func (s *ContactService) CountUnread(ctx context.Context) (int, error) {
	return s.repo.CountUnread(ctx)
}

// publishUnread перечитывает счётчик после записи и рассылает его.
func (s *ContactService) publishUnread(ctx context.Context) (int, error) {
	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithError(err).Warn("contact service: не удалось посчитать непрочитанные")
		}
		return 0, err
	}
	s.publish(ws.EventInboxUnread, UnreadCount{Count: count})
	return count, nil
}

func (s *ContactService) publish(event string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event, data); err != nil && logger.Log != nil {
		logger.Log.WithError(err).WithField("event", event).Warn("contact service: не удалось отправить событие")
	}
}

func mapMessageError(err error) error {
	if errors.Is(err, repository.ErrMessageNotFound) {
		return apperror.ErrMessageNotFound
	}
	return err
}
