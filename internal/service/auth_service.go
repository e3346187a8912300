package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/hadeelmohammed/portfolio-backend/internal/logger"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
	"github.com/hadeelmohammed/portfolio-backend/internal/validation"
)

// AuthRepository описывает зависимости AuthService от слоя хранилища.
type AuthRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, refreshToken string) (*models.Session, error)
	DeleteSession(ctx context.Context, refreshToken string) error
	UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error
}

// AuthService инкапсулирует регистрацию, вход и проверку прав администратора.
type AuthService struct {
	repo         AuthRepository
	tokenManager *TokenManager
	isAdminEmail func(email string) bool
}

// Credentials содержит email и пароль.
type Credentials struct {
	Email    string
	Password string
}

// AuthResult возвращает итог регистрации или авторизации.
type AuthResult struct {
	User      *models.User
	TokenPair *TokenPair
}

// AuthStatus — ответ на вопрос «кто я и админ ли я».
type AuthStatus struct {
	User    *models.User `json:"user"`
	IsAdmin bool         `json:"is_admin"`
}

// NewAuthService создаёт сервис аутентификации.
// isAdminEmail решает, получит ли новый пользователь роль admin при регистрации.
func NewAuthService(repo AuthRepository, tokenManager *TokenManager, isAdminEmail func(email string) bool) *AuthService {
	if isAdminEmail == nil {
		isAdminEmail = func(string) bool { return false }
	}
	return &AuthService{
		repo:         repo,
		tokenManager: tokenManager,
		isAdminEmail: isAdminEmail,
	}
}

// SignUp создаёт пользователя и сразу открывает сессию.
func (s *AuthService) SignUp(ctx context.Context, in Credentials, meta map[string]string) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	fields := map[string]string{}
	if err := validation.ValidateEmail(email); err != nil {
		fields["email"] = err.Error()
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		fields["password"] = err.Error()
	}
	if len(fields) > 0 {
		return nil, apperror.Validation(fields)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth service: не удалось захешировать пароль: %w", err)
	}

	role := models.RoleViewer
	if s.isAdminEmail(email) {
		role = models.RoleAdmin
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(passHash),
		Role:         role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, apperror.ErrEmailTaken
		}
		return nil, err
	}

	if logger.Log != nil {
		logger.Log.WithFields(map[string]interface{}{
			"user_id": user.ID,
			"role":    user.Role,
		}).Info("auth service: зарегистрирован пользователь")
	}

	tokenPair, err := s.openSession(ctx, user, meta)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, TokenPair: tokenPair}, nil
}

// SignIn проверяет учётные данные и возвращает токены.
func (s *AuthService) SignIn(ctx context.Context, in Credentials, meta map[string]string) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, apperror.Validation(map[string]string{"email": err.Error()})
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	// Проверка активности пользователя
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	// Обновляем время последнего входа
	if err := s.repo.UpdateLastLoginAt(ctx, user.ID); err != nil {
		// Логируем ошибку, но не прерываем процесс логина
		if logger.Log != nil {
			logger.Log.WithFields(map[string]interface{}{
				"user_id": user.ID,
				"error":   err.Error(),
			}).Warn("auth service: не удалось обновить last_login_at")
		}
	} else {
		now := time.Now()
		user.LastLoginAt = &now
	}

	tokenPair, err := s.openSession(ctx, user, meta)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, TokenPair: tokenPair}, nil
}

// SignOut закрывает сессию. Неизвестный токен не считается ошибкой.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, refreshToken)
}

// Refresh выпускает новую пару токенов и отзывает старый refresh токен.
func (s *AuthService) Refresh(ctx context.Context, oldToken string, meta map[string]string) (*TokenPair, error) {
	claims, err := s.tokenManager.ParseRefresh(oldToken)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeUnauthorized, "invalid refresh token")
	}

	if _, err := s.repo.GetSession(ctx, oldToken); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, apperror.New(apperror.ErrCodeUnauthorized, "session expired")
		}
		return nil, err
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeUnauthorized, "invalid refresh token")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDisabled
	}

	if err := s.repo.DeleteSession(ctx, oldToken); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user, meta)
}

// Status возвращает пользователя и флаг администратора.
func (s *AuthService) Status(ctx context.Context, userID uuid.UUID) (*AuthStatus, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}
	return &AuthStatus{User: user, IsAdmin: user.IsAdmin()}, nil
}

// IsAdmin проверяет права по актуальной записи в базе, а не по claims токена.
func (s *AuthService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return false, err
	}
	return status.IsAdmin, nil
}

// openSession выпускает токены и сохраняет refresh токен.
func (s *AuthService) openSession(ctx context.Context, user *models.User, meta map[string]string) (*TokenPair, error) {
	tokenPair, _, refreshExp, err := s.tokenManager.GeneratePair(user)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		UserID:       user.ID,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    refreshExp,
	}

	if meta != nil {
		if ua, ok := meta["user_agent"]; ok && ua != "" {
			session.UserAgent = &ua
		}
		if ip, ok := meta["ip"]; ok && ip != "" {
			session.IPAddress = &ip
		}
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	return tokenPair, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
