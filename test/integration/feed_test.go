package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"linkup_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedResponse struct {
	Data []struct {
		ID     string   `json:"id"`
		Skills []string `json:"skills"`
	} `json:"data"`
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

func getFeed(t *testing.T, ts *helpers.TestServer, user *helpers.TestUser, query string) feedResponse {
	t.Helper()
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/users/feed"+query, user.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var parsed feedResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &parsed))
	return parsed
}

func feedContains(feed feedResponse, userID string) bool {
	for _, item := range feed.Data {
		if item.ID == userID {
			return true
		}
	}
	return false
}

// TestFeedExclusion - любой сигнал навсегда убирает пару из лент
// друг друга, включая ignored
func TestFeedExclusion(t *testing.T) {
	ts := GetTestServer(t)

	// Уникальный навык изолирует сценарий от пользователей других тестов
	skill := "feed-excl-" + helpers.UniqueEmail("s")
	u1 := helpers.RegisterCompleteUser(t, ts, "excl_u1", []string{skill})
	u2 := helpers.RegisterCompleteUser(t, ts, "excl_u2", []string{skill})
	u3 := helpers.RegisterCompleteUser(t, ts, "excl_u3", []string{skill})

	feed := getFeed(t, ts, u1, "?limit=50&skills="+skill)
	assert.True(t, feedContains(feed, u2.ID))
	assert.True(t, feedContains(feed, u3.ID))
	assert.False(t, feedContains(feed, u1.ID), "Сам пользователь в ленту не попадает")

	// left: исключение в обе стороны, несмотря на односторонний сигнал
	helpers.Swipe(t, ts, u1, "left", u2.ID)

	feed = getFeed(t, ts, u1, "?limit=50&skills="+skill)
	assert.False(t, feedContains(feed, u2.ID))
	assert.True(t, feedContains(feed, u3.ID))

	feedU2 := getFeed(t, ts, u2, "?limit=50&skills="+skill)
	assert.False(t, feedContains(feedU2, u1.ID))
	assert.True(t, feedContains(feedU2, u3.ID))

	// Матч с u3 тоже навсегда исключает из ленты
	helpers.Swipe(t, ts, u1, "right", u3.ID)
	helpers.Swipe(t, ts, u3, "right", u1.ID)

	feed = getFeed(t, ts, u1, "?limit=50&skills="+skill)
	assert.Empty(t, feed.Data)
}

// TestFeedSkillsOverlap - достаточно одного пересекающегося навыка
func TestFeedSkillsOverlap(t *testing.T) {
	ts := GetTestServer(t)

	skillA := "feed-skill-a-" + helpers.UniqueEmail("s")
	skillB := "feed-skill-b-" + helpers.UniqueEmail("s")
	viewer := helpers.RegisterCompleteUser(t, ts, "skills_viewer", []string{skillA})
	both := helpers.RegisterCompleteUser(t, ts, "skills_both", []string{skillA, skillB})
	onlyB := helpers.RegisterCompleteUser(t, ts, "skills_only_b", []string{skillB})

	feed := getFeed(t, ts, viewer, "?limit=50&skills="+skillA)
	assert.True(t, feedContains(feed, both.ID))
	assert.False(t, feedContains(feed, onlyB.ID))

	// Запрос с двумя навыками: пересечение хотя бы по одному
	feed = getFeed(t, ts, viewer, "?limit=50&skills="+skillA+","+skillB)
	assert.True(t, feedContains(feed, both.ID))
	assert.True(t, feedContains(feed, onlyB.ID))
}

// TestFeedFilters - equality-фильтры и сентинел any
func TestFeedFilters(t *testing.T) {
	ts := GetTestServer(t)

	skill := "feed-filter-" + helpers.UniqueEmail("s")
	viewer := helpers.RegisterCompleteUser(t, ts, "filter_viewer", []string{skill})
	candidate := helpers.RegisterCompleteUser(t, ts, "filter_candidate", []string{skill})

	// RegisterCompleteUser выставляет experience=mid, availability=full_time
	feed := getFeed(t, ts, viewer, "?limit=50&skills="+skill+"&experience=mid")
	assert.True(t, feedContains(feed, candidate.ID))

	feed = getFeed(t, ts, viewer, "?limit=50&skills="+skill+"&experience=senior")
	assert.False(t, feedContains(feed, candidate.ID))

	// any означает "без фильтра"
	feed = getFeed(t, ts, viewer, "?limit=50&skills="+skill+"&experience=any&availability=any")
	assert.True(t, feedContains(feed, candidate.ID))

	// location - регистронезависимая подстрока
	feed = getFeed(t, ts, viewer, "?limit=50&skills="+skill+"&location=alma")
	assert.True(t, feedContains(feed, candidate.ID))

	feed = getFeed(t, ts, viewer, "?limit=50&skills="+skill+"&location=Berlin")
	assert.False(t, feedContains(feed, candidate.ID))
}

// TestFeedPagination - limit+1 дает hasMore, limit зажимается на 50
func TestFeedPagination(t *testing.T) {
	ts := GetTestServer(t)

	skill := "feed-page-" + helpers.UniqueEmail("s")
	viewer := helpers.RegisterCompleteUser(t, ts, "page_viewer", []string{skill})
	c1 := helpers.RegisterCompleteUser(t, ts, "page_c1", []string{skill})
	c2 := helpers.RegisterCompleteUser(t, ts, "page_c2", []string{skill})
	c3 := helpers.RegisterCompleteUser(t, ts, "page_c3", []string{skill})

	first := getFeed(t, ts, viewer, "?limit=2&skills="+skill)
	assert.Len(t, first.Data, 2)
	assert.True(t, first.HasMore)
	assert.Equal(t, 2, first.Limit)
	assert.Equal(t, 1, first.Page)

	second := getFeed(t, ts, viewer, "?limit=2&page=2&skills="+skill)
	assert.Len(t, second.Data, 1)
	assert.False(t, second.HasMore)

	// Стабильный порядок: страницы не пересекаются и покрывают всех
	seen := map[string]bool{}
	for _, item := range append(first.Data, second.Data...) {
		assert.False(t, seen[item.ID], "Дубликат между страницами: %s", item.ID)
		seen[item.ID] = true
	}
	assert.True(t, seen[c1.ID] && seen[c2.ID] && seen[c3.ID])

	// Запредельный limit зажимается до 50
	clamped := getFeed(t, ts, viewer, "?limit=10000&skills="+skill)
	assert.Equal(t, 50, clamped.Limit)
}

// TestFeedExcludesIncompleteProfiles
func TestFeedExcludesIncompleteProfiles(t *testing.T) {
	ts := GetTestServer(t)

	skill := "feed-incomplete-" + helpers.UniqueEmail("s")
	viewer := helpers.RegisterCompleteUser(t, ts, "inc_viewer", []string{skill})
	incomplete := helpers.RegisterUser(t, ts, "Incomplete", helpers.UniqueEmail("inc_user"), "super_password123")

	feed := getFeed(t, ts, viewer, "?limit=50")
	assert.False(t, feedContains(feed, incomplete.ID))
}
