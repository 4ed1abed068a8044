package dto

import (
	"time"

	"linkup_backend/internal/models"
)

// ========================
// User DTOs
// ========================

// UserSafe - фиксированная публичная проекция пользователя.
// Любой пользовательский payload, который отдает ядро, проходит
// через эту проекцию; email и хеш пароля наружу не выходят.
type UserSafe struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	Headline          string                 `json:"headline"`
	Role              string                 `json:"role"`
	Experience        models.ExperienceLevel `json:"experience"`
	Availability      models.Availability    `json:"availability"`
	Location          string                 `json:"location"`
	Skills            []string               `json:"skills"`
	Links             map[string]string      `json:"links"`
	IsProfileComplete bool                   `json:"isProfileComplete"`
	CreatedAt         time.Time              `json:"createdAt"`
}

// NewUserSafe строит публичную проекцию из модели
func NewUserSafe(user *models.User) UserSafe {
	skills := []string{}
	if user.Skills != nil {
		skills = append(skills, user.Skills...)
	}
	return UserSafe{
		ID:                user.ID,
		Name:              user.Name,
		Headline:          user.Headline,
		Role:              user.Role,
		Experience:        user.Experience,
		Availability:      user.Availability,
		Location:          user.Location,
		Skills:            skills,
		Links:             user.GetLinks(),
		IsProfileComplete: user.IsProfileComplete,
		CreatedAt:         user.CreatedAt,
	}
}

// UpdateProfileRequest - обновление собственного профиля.
// isProfileComplete не принимается с клиента, он вычисляется.
type UpdateProfileRequest struct {
	Name         string            `json:"name" validate:"omitempty,min=2,max=100"`
	Headline     string            `json:"headline" validate:"omitempty,max=200"`
	Role         string            `json:"role" validate:"omitempty,max=100"`
	Experience   string            `json:"experience" validate:"omitempty,is-experience"`
	Availability string            `json:"availability" validate:"omitempty,is-availability"`
	Location     string            `json:"location" validate:"omitempty,max=100"`
	Skills       []string          `json:"skills" validate:"omitempty,max=30,dive,min=1,max=50"`
	Links        map[string]string `json:"links" validate:"omitempty,max=10"`
}
