package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"linkup_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMarkNotificationAsRead - пометка прочитанным доступна только владельцу
func TestMarkNotificationAsRead(t *testing.T) {
	ts := GetTestServer(t)

	u1 := helpers.RegisterCompleteUser(t, ts, "read_u1", []string{"go"})
	u2 := helpers.RegisterCompleteUser(t, ts, "read_u2", []string{"go"})

	helpers.Swipe(t, ts, u1, "right", u2.ID)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", u2.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var parsed struct {
		Notifications []struct {
			ID     string `json:"id"`
			IsRead bool   `json:"isRead"`
		} `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	require.NotEmpty(t, parsed.Notifications)

	target := parsed.Notifications[0]
	assert.False(t, target.IsRead)

	// Чужое уведомление пометить нельзя
	foreignRes, _ := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+target.ID+"/read", u1.Token, nil)
	assert.Equal(t, http.StatusNotFound, foreignRes.StatusCode)

	readRes, readBody := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+target.ID+"/read", u2.Token, nil)
	require.Equal(t, http.StatusOK, readRes.StatusCode, "Ответ: "+readBody)

	res2, bodyStr2 := ts.SendRequest(t, "GET", "/api/v1/notifications", u2.Token, nil)
	require.Equal(t, http.StatusOK, res2.StatusCode)

	var after struct {
		Notifications []struct {
			ID     string `json:"id"`
			IsRead bool   `json:"isRead"`
		} `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr2), &after))
	for _, n := range after.Notifications {
		if n.ID == target.ID {
			assert.True(t, n.IsRead)
		}
	}
}
