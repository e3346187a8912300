package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hadeelmohammed/portfolio-backend/internal/dto"
	"github.com/hadeelmohammed/portfolio-backend/internal/http/handlers/common"
	"github.com/hadeelmohammed/portfolio-backend/internal/pkg/apperror"
	"github.com/hadeelmohammed/portfolio-backend/internal/service"
)

// AuthHandler предоставляет HTTP слой для регистрации и логина.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp обрабатывает POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	result, err := h.auth.SignUp(c.Request.Context(), service.Credentials{Email: req.Email, Password: req.Password}, common.RequestMeta(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.RespondJSON(c, http.StatusCreated, authResponse(result))
}

// SignIn обрабатывает POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}

	result, err := h.auth.SignIn(c.Request.Context(), service.Credentials{Email: req.Email, Password: req.Password}, common.RequestMeta(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.RespondOK(c, authResponse(result))
}

// SignOut обрабатывает POST /api/auth/signout.
func (h *AuthHandler) SignOut(c *gin.Context) {
	var req dto.RefreshRequest
	// пустое тело допустимо
	_ = c.ShouldBindJSON(&req)

	if err := h.auth.SignOut(c.Request.Context(), req.RefreshToken); err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, "signed out", nil)
}

// Refresh обрабатывает POST /api/auth/refresh.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := common.BindJSON(c, &req); err != nil {
		common.RespondError(c, err)
		return
	}
	if req.RefreshToken == "" {
		common.RespondError(c, apperror.Validation(map[string]string{"refresh_token": "refresh_token is required"}))
		return
	}

	pair, err := h.auth.Refresh(c.Request.Context(), req.RefreshToken, common.RequestMeta(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}

	common.RespondOK(c, gin.H{"tokens": tokensResponse(pair)})
}

// Status обрабатывает GET /api/auth/status: пользователь и флаг администратора.
func (h *AuthHandler) Status(c *gin.Context) {
	userID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondError(c, apperror.ErrUnauthorized)
		return
	}

	status, err := h.auth.Status(c.Request.Context(), userID)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.RespondOK(c, status)
}

func authResponse(result *service.AuthResult) dto.AuthResponse {
	return dto.AuthResponse{
		User:    result.User,
		IsAdmin: result.User.IsAdmin(),
		Tokens:  tokensResponse(result.TokenPair),
	}
}

func tokensResponse(pair *service.TokenPair) dto.TokensResponse {
	if pair == nil {
		return dto.TokensResponse{}
	}
	return dto.TokensResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
}
