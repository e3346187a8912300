package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden     ErrorCode = "FORBIDDEN"
	ErrCodeAccessDenied  ErrorCode = "ACCESS_DENIED"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeConflict      ErrorCode = "CONFLICT"
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeUpload        ErrorCode = "UPLOAD_FAILED"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
	// Fields заполняется для ошибок валидации: поле -> сообщение.
	Fields map[string]string
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по коду и сообщению, чтобы errors.Is работал с копиями.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// PublicMessage возвращает текст для клиента вместе с причиной.
func (e *AppError) PublicMessage() string {
	if e.Cause != nil && e.HTTPStatus < http.StatusInternalServerError {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// Validation создаёт ошибку валидации с ошибками по полям.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:       ErrCodeValidation,
		Message:    "validation failed",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeAccessDenied:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation, ErrCodeUpload:
		return http.StatusBadRequest
	case ErrCodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// As достаёт AppError из цепочки.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}

func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && (appErr.Code == ErrCodeForbidden || appErr.Code == ErrCodeAccessDenied)
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeValidation
}

var (
	ErrProjectNotFound    = New(ErrCodeNotFound, "project not found")
	ErrMessageNotFound    = New(ErrCodeNotFound, "message not found")
	ErrMediaNotFound      = New(ErrCodeNotFound, "media not found")
	ErrUserNotFound       = New(ErrCodeNotFound, "user not found")
	ErrUnknownSetting     = New(ErrCodeBadRequest, "unknown settings key")
	ErrSlugTaken          = New(ErrCodeConflict, "slug already in use")
	ErrEmailTaken         = New(ErrCodeConflict, "email already registered")
	ErrUnauthorized       = New(ErrCodeUnauthorized, "authorization required")
	ErrForbidden          = New(ErrCodeForbidden, "forbidden")
	ErrAccessDenied       = New(ErrCodeAccessDenied, "admin privileges required")
	ErrInvalidCredentials = New(ErrCodeUnauthorized, "invalid email or password")
	ErrAccountDisabled    = New(ErrCodeForbidden, "account disabled")
)
