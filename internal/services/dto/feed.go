package dto

// ========================
// Feed DTOs
// ========================

// FeedQuery - параметры GET /feed
type FeedQuery struct {
	Page         int    `form:"page" validate:"omitempty,min=1"`
	Limit        int    `form:"limit" validate:"omitempty,min=1"`
	Skills       string `form:"skills"` // через запятую
	Experience   string `form:"experience"`
	Role         string `form:"role"`
	Availability string `form:"availability"`
	Location     string `form:"location"`
}

// FeedResult - страница кандидатов
type FeedResult struct {
	Data    []UserSafe `json:"data"`
	Page    int        `json:"page"`
	Limit   int        `json:"limit"`
	HasMore bool       `json:"hasMore"`
}
