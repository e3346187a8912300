package dto

import (
	"github.com/hadeelmohammed/portfolio-backend/internal/i18n"
	"github.com/hadeelmohammed/portfolio-backend/internal/models"
)

// SuccessResponse — ответ на операции без содержательного тела.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// LanguageResponse — текущее состояние языка.
type LanguageResponse struct {
	Lang i18n.Lang `json:"lang"`
	Dir  string    `json:"dir"`
}

// NewLanguageResponse собирает ответ по языку.
func NewLanguageResponse(lang i18n.Lang) LanguageResponse {
	return LanguageResponse{Lang: lang, Dir: lang.Dir()}
}

// TokensResponse — пара токенов.
type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse возвращается после регистрации и входа.
type AuthResponse struct {
	User    *models.User   `json:"user"`
	IsAdmin bool           `json:"is_admin"`
	Tokens  TokensResponse `json:"tokens"`
}

// UnreadCountResponse — счётчик непрочитанных сообщений для бейджа.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// ListResponse — список с количеством элементов.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewListResponse не отдаёт null вместо пустого списка.
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}
