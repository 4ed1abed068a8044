package dto

// ========================
// Auth DTOs
// ========================

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=2,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - токен и публичный профиль
type AuthResponse struct {
	Token string   `json:"token"`
	User  UserSafe `json:"user"`
}
