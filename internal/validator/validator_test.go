package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Email        string `json:"email" validate:"required,email"`
	Experience   string `json:"experience" validate:"omitempty,is-experience"`
	Availability string `json:"availability" validate:"omitempty,is-availability"`
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleDTO{Email: "not-an-email"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// Имя поля берется из json-тега, не из имени в Go
	assert.Contains(t, vErr.Errors, "email")
	assert.NotContains(t, vErr.Errors, "Email")
}

func TestValidate_ExperienceRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Experience: "junior"}))
	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Experience: "mid"}))
	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Experience: "senior"}))
	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Experience: "lead"}))

	err := v.Validate(&sampleDTO{Email: "a@b.com", Experience: "guru"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "experience")
}

func TestValidate_AvailabilityRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Availability: "full_time"}))
	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com", Availability: "open"}))

	err := v.Validate(&sampleDTO{Email: "a@b.com", Availability: "weekends"})
	assert.Error(t, err)
}

func TestValidate_OmitemptySkipsCustomRules(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(&sampleDTO{Email: "a@b.com"}))
}
