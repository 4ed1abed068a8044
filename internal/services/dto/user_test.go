package dto

import (
	"encoding/json"
	"testing"

	"linkup_backend/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Публичная проекция не должна содержать email и хеш пароля
// ни при каких обстоятельствах.
func TestNewUserSafe_OmitsCredentials(t *testing.T) {
	user := &models.User{
		Email:        "hidden@example.com",
		PasswordHash: "$2a$10$secrethash",
		Name:         "Dana",
		Headline:     "Platform engineer",
		Role:         "SRE",
		Experience:   models.ExperienceSenior,
		Availability: models.AvailabilityContract,
		Location:     "Astana",
		Skills:       pq.StringArray{"go", "kubernetes"},
	}
	user.ID = "11111111-1111-1111-1111-111111111111"

	safe := NewUserSafe(user)

	payload, err := json.Marshal(safe)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "hidden@example.com")
	assert.NotContains(t, string(payload), "secrethash")
	assert.NotContains(t, string(payload), "email")
	assert.NotContains(t, string(payload), "password")

	assert.Equal(t, user.ID, safe.ID)
	assert.Equal(t, "Dana", safe.Name)
	assert.Equal(t, []string{"go", "kubernetes"}, safe.Skills)
}

func TestNewUserSafe_EmptySkillsSerializeAsArray(t *testing.T) {
	safe := NewUserSafe(&models.User{Name: "Empty"})

	payload, err := json.Marshal(safe)
	require.NoError(t, err)

	// nil-срез превратился бы в null, клиенты ждут []
	assert.Contains(t, string(payload), `"skills":[]`)
}
