package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hadeelmohammed/portfolio-backend/internal/models"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/repository"
)

// mockAuthRepository реализует AuthRepository для тестов.
type mockAuthRepository struct {
	usersByEmail map[string]*models.User
	usersByID    map[uuid.UUID]*models.User
	sessions     map[string]*models.Session
}

func newMockAuthRepository() *mockAuthRepository {
	return &mockAuthRepository{
		usersByEmail: make(map[string]*models.User),
		usersByID:    make(map[uuid.UUID]*models.User),
		sessions:     make(map[string]*models.Session),
	}
}

func (m *mockAuthRepository) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.usersByEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true
	m.usersByEmail[user.Email] = user
	m.usersByID[user.ID] = user
	return nil
}

func (m *mockAuthRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := m.usersByEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := m.usersByID[id]; ok {
		return user, nil
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockAuthRepository) CreateSession(ctx context.Context, session *models.Session) error {
	session.ID = uuid.New()
	session.CreatedAt = time.Now()
	m.sessions[session.RefreshToken] = session
	return nil
}

func (m *mockAuthRepository) GetSession(ctx context.Context, refreshToken string) (*models.Session, error) {
	if s, ok := m.sessions[refreshToken]; ok {
		return s, nil
	}
	return nil, repository.ErrSessionNotFound
}

func (m *mockAuthRepository) DeleteSession(ctx context.Context, refreshToken string) error {
	delete(m.sessions, refreshToken)
	return nil
}

func (m *mockAuthRepository) UpdateLastLoginAt(ctx context.Context, userID uuid.UUID) error {
	if user, ok := m.usersByID[userID]; ok {
		now := time.Now()
		user.LastLoginAt = &now
	}
	return nil
}

func newTestAuthService(repo *mockAuthRepository, admins ...string) *AuthService {
	tokenManager := NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	return NewAuthService(repo, tokenManager, func(email string) bool {
		for _, a := range admins {
			if a == email {
				return true
			}
		}
		return false
	})
}

func TestAuthService_SignUpAndSignIn(t *testing.T) {
	repo := newMockAuthRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	res, err := service.SignUp(ctx, Credentials{
		Email:    "Visitor@Example.com",
		Password: "Password123",
	}, map[string]string{"ip": "127.0.0.1"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.User.ID)
	assert.Equal(t, "visitor@example.com", res.User.Email)
	assert.Equal(t, models.RoleViewer, res.User.Role)
	assert.Len(t, repo.sessions, 1)

	signIn, err := service.SignIn(ctx, Credentials{Email: "visitor@example.com", Password: "Password123"}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, signIn.TokenPair.AccessToken)
	assert.NotNil(t, signIn.User.LastLoginAt)

	status, err := service.Status(ctx, res.User.ID)
	require.NoError(t, err)
	assert.False(t, status.IsAdmin)
}

func TestAuthService_SignUpGrantsAdminFromList(t *testing.T) {
	repo := newMockAuthRepository()
	service := newTestAuthService(repo, "hadeel@studio.com")

	res, err := service.SignUp(context.Background(), Credentials{Email: "hadeel@studio.com", Password: "Password123"}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, res.User.Role)

	isAdmin, err := service.IsAdmin(context.Background(), res.User.ID)
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestAuthService_SignUpRejectsDuplicatesAndWeakPasswords(t *testing.T) {
	repo := newMockAuthRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	_, err := service.SignUp(ctx, Credentials{Email: "a@example.com", Password: "weak"}, nil)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Fields, "password")

	_, err = service.SignUp(ctx, Credentials{Email: "a@example.com", Password: "Password123"}, nil)
	require.NoError(t, err)
	_, err = service.SignUp(ctx, Credentials{Email: "a@example.com", Password: "Password123"}, nil)
	assert.ErrorIs(t, err, apperror.ErrEmailTaken)
}

func TestAuthService_SignInWrongPassword(t *testing.T) {
	repo := newMockAuthRepository()
	service := newTestAuthService(repo)
	ctx := context.Background()

	_, err := service.SignUp(ctx, Credentials{Email: "a@example.com", Password: "Password123"}, nil)
	require.NoError(t, err)

	_, err = service.SignIn(ctx, Credentials{Email: "a@example.com", Password: "Password124"}, nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = service.SignIn(ctx, Credentials{Email: "nobody@example.com", Password: "Password123"}, nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestAuthService_RefreshAndSignOut(t *testing.T) {
	repo := newMockAuthRepository()
	tokenManager := NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	service := NewAuthService(repo, tokenManager, nil)

	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	repo.usersByEmail[user.Email] = user
	repo.usersByID[user.ID] = user

	tokenPair, accessExp, refreshExp, err := tokenManager.GeneratePair(user)
	require.NoError(t, err)
	assert.True(t, accessExp.Before(refreshExp), "access должен истекать раньше refresh")

	repo.sessions[tokenPair.RefreshToken] = &models.Session{
		ID:           uuid.New(),
		UserID:       user.ID,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresAt:    refreshExp,
	}

	newPair, err := service.Refresh(ctx, tokenPair.RefreshToken, nil)
	require.NoError(t, err)
	assert.NotEqual(t, tokenPair.RefreshToken, newPair.RefreshToken)

	// старый токен отозван
	_, err = service.Refresh(ctx, tokenPair.RefreshToken, nil)
	assert.Error(t, err)

	require.NoError(t, service.SignOut(ctx, newPair.RefreshToken))
	assert.Empty(t, repo.sessions)
}

func TestTokenManager_ParseAccess(t *testing.T) {
	tm := NewTokenManager("access-secret", "refresh-secret", time.Minute, time.Hour)
	user := &models.User{ID: uuid.New(), Email: "a@example.com", Role: models.RoleAdmin}

	pair, _, _, err := tm.GeneratePair(user)
	require.NoError(t, err)

	id, role, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, models.RoleAdmin, role)

	_, _, err = tm.ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}
