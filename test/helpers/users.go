package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUser - зарегистрированный через API пользователь с его токеном
type TestUser struct {
	ID    string
	Email string
	Token string
}

// RegisterUser регистрирует пользователя через API и возвращает токен и id
func RegisterUser(t *testing.T, ts *TestServer, name, email, password string) *TestUser {
	body := map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна быть успешной. Ответ: "+bodyStr)

	var authResponse struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	err := json.Unmarshal([]byte(bodyStr), &authResponse)
	require.NoError(t, err, "Не удалось распарсить JSON ответа регистрации")
	require.NotEmpty(t, authResponse.Token, "Токен не должен быть пустым")
	require.NotEmpty(t, authResponse.User.ID)

	return &TestUser{
		ID:    authResponse.User.ID,
		Email: email,
		Token: authResponse.Token,
	}
}

// UniqueEmail генерирует уникальный email для параллельных сценариев
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// CompleteProfile заполняет профиль так, чтобы isProfileComplete стал true
func CompleteProfile(t *testing.T, ts *TestServer, user *TestUser, skills []string) {
	body := map[string]interface{}{
		"name":         "Test User",
		"role":         "Backend Engineer",
		"experience":   "mid",
		"availability": "full_time",
		"location":     "Almaty",
		"skills":       skills,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/users/me", user.Token, body)
	require.Equal(t, http.StatusOK, res.StatusCode, "Обновление профиля должно быть успешным. Ответ: "+bodyStr)
	assert.Contains(t, bodyStr, `"isProfileComplete":true`)
}

// RegisterCompleteUser - регистрация + полный профиль одним вызовом
func RegisterCompleteUser(t *testing.T, ts *TestServer, prefix string, skills []string) *TestUser {
	user := RegisterUser(t, ts, "Test User", UniqueEmail(prefix), "super_password123")
	CompleteProfile(t, ts, user, skills)
	return user
}

// Swipe выполняет свайп от actor к targetID и разбирает поле matched
func Swipe(t *testing.T, ts *TestServer, actor *TestUser, direction, targetID string) (int, bool, string) {
	body := map[string]interface{}{"toUserId": targetID}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/users/swipe-"+direction, actor.Token, body)

	var parsed struct {
		Matched bool `json:"matched"`
	}
	_ = json.Unmarshal([]byte(bodyStr), &parsed)

	return res.StatusCode, parsed.Matched, bodyStr
}
