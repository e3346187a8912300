package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hadeelmohammed/portfolio-backend/internal/config"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/middleware"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
)

var (
	adminID  = uuid.New()
	viewerID = uuid.New()
)

type tokens struct{}

func (tokens) ParseAccess(token string) (uuid.UUID, string, error) {
	switch token {
	case "admin":
		return adminID, "admin", nil
	case "viewer":
		return viewerID, "user", nil
	}
	return uuid.Nil, "", errors.New("invalid token")
}

type admins struct{}

func (admins) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return userID == adminID, nil
}

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mediaDir := t.TempDir()
	cfg := &config.Config{
		Env:              "test",
		MediaStoragePath: mediaDir,
		AllowedOrigins:   []string{"http://localhost:3000"},
		RateLimitLimit:   100,
		RateLimitPeriod:  time.Minute,
		ContactRateLimit: 5,
	}
	h := Handlers{
		Language: handlers.NewLanguageHandler(),
	}
	return SetupRouter(cfg, h, Guards{Tokens: tokens{}, Admins: admins{}}), mediaDir
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Code
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/admin/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, string(apperror.ErrCodeUnauthorized), errorCode(t, w))

	w = serve(r, http.MethodGet, "/api/admin/messages", "expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_NonAdminGetsAccessDenied(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/projects", "/api/admin/messages/unread/count"} {
		w := serve(r, http.MethodGet, path, "viewer")
		assert.Equal(t, http.StatusForbidden, w.Code, path)
		assert.Equal(t, string(apperror.ErrCodeAccessDenied), errorCode(t, w), path)
	}
}

func TestRouter_AdminUUIDValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/admin/projects/not-a-uuid", "admin")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UnknownRouteIsJSON404(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(apperror.ErrCodeNotFound), errorCode(t, w))
}

func TestRouter_LanguageRoutesCarryDirection(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/api/language?lang=ar", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rtl", w.Header().Get(middleware.HeaderTextDirection))
	assert.Equal(t, "ar", w.Header().Get("Content-Language"))
}

func TestRouter_MediaIsCached(t *testing.T) {
	r, dir := newTestRouter(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "project-images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project-images", "a.jpg"), []byte("jpeg"), 0o644))

	w := serve(r, http.MethodGet, "/media/project-images/a.jpg", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, mediaCacheControl, w.Header().Get("Cache-Control"))
	assert.Equal(t, "jpeg", w.Body.String())

	w = serve(r, http.MethodGet, "/media/project-images/missing.jpg", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
