package apperrors

import (
	"net/http"
)

// Фабрики для оборачивания ошибок репозиториев

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// Предопределенные ошибки домена

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

	ErrUserNotFound       = New(CodeUserNotFound, "users", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "users", "Email already exists", http.StatusConflict)

	// Профиль должен быть заполнен до использования ленты и свайпов
	ErrProfileIncomplete = New(CodeProfileIncomplete, "users", "Complete your profile to use this feature", http.StatusForbidden)

	ErrSelfSwipe = New(CodeSelfSwipe, "connections", "You cannot swipe on yourself", http.StatusBadRequest)
)
