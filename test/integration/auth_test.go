package integration_test

import (
	"net/http"
	"testing"

	"linkup_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuthFlow - регистрация, логин, неверный пароль
func TestAuthFlow(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("auth_flow")
	registerBody := map[string]interface{}{
		"name":     "Тестовый Пользователь",
		"email":    email,
		"password": "super_password123",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, "Ответ: "+regBodyStr)
	assert.Contains(t, regBodyStr, `"token"`)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode, "Ответ: "+logBodyStr)
	assert.Contains(t, logBodyStr, `"token"`)

	// Неверный пароль - 401 без уточнения, что именно не так
	badBody := map[string]interface{}{
		"email":    email,
		"password": "wrong_password",
	}
	badRes, badBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", badBody)
	assert.Equal(t, http.StatusUnauthorized, badRes.StatusCode)
	assert.Contains(t, badBodyStr, "Invalid email or password")
}

// TestRegister_DuplicateEmail - защита от дубликатов email
func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	email := helpers.UniqueEmail("dup_email")
	body := map[string]interface{}{
		"name":     "First",
		"email":    email,
		"password": "super_password123",
	}

	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res2, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res2.StatusCode)
	assert.Contains(t, bodyStr, "Email already exists")
}

// TestRegister_WeakPassword - пароль короче 8 символов отклоняется
func TestRegister_WeakPassword(t *testing.T) {
	ts := GetTestServer(t)

	body := map[string]interface{}{
		"name":     "Weak",
		"email":    helpers.UniqueEmail("weak_pass"),
		"password": "1234567",
	}

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "password")
}

// TestProtectedRoute_RequiresToken - без токена доступа нет
func TestProtectedRoute_RequiresToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res2, _ := ts.SendRequest(t, "GET", "/api/v1/users/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
}
