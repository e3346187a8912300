package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuthHandler_Status_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil}
	r.GET("/auth/status", handler.Status)

	req, _ := http.NewRequest("GET", "/auth/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_SignIn_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil}
	r.POST("/auth/signin", handler.SignIn)

	req, _ := http.NewRequest("POST", "/auth/signin", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Refresh_MissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &AuthHandler{auth: nil}
	r.POST("/auth/refresh", handler.Refresh)

	req, _ := http.NewRequest("POST", "/auth/refresh", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaHandler_Upload_MissingFile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewMediaHandler(nil, 10<<20)
	r.POST("/admin/media", handler.Upload)

	req, _ := http.NewRequest("POST", "/admin/media", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMediaHandler_Delete_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewMediaHandler(nil, 10<<20)
	r.DELETE("/admin/media/:id", handler.Delete)

	req, _ := http.NewRequest("DELETE", "/admin/media/invalid-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactHandler_MarkAsRead_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &ContactHandler{contacts: nil}
	r.PUT("/admin/messages/:id/read", handler.MarkAsRead)

	req, _ := http.NewRequest("PUT", "/admin/messages/invalid-uuid/read", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
