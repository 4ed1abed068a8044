package services

import (
	"strings"

	"linkup_backend/internal/apperrors"
	"linkup_backend/internal/repositories"
	"linkup_backend/internal/services/dto"
)

const (
	DefaultFeedLimit = 10
	MaxFeedLimit     = 50
)

type FeedService interface {
	// Feed выбирает страницу кандидатов: исключаются сам пользователь и
	// все, с кем уже есть любая запись в журнале (в любом направлении,
	// с любым статусом), остаются только полные профили.
	Feed(userID string, query dto.FeedQuery) (*dto.FeedResult, error)
}

type feedService struct {
	userRepo    repositories.UserRepository
	requestRepo repositories.ConnectionRequestRepository
}

func NewFeedService(
	userRepo repositories.UserRepository,
	requestRepo repositories.ConnectionRequestRepository,
) FeedService {
	return &feedService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

func (s *feedService) Feed(userID string, query dto.FeedQuery) (*dto.FeedResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := ClampLimit(query.Limit, DefaultFeedLimit, MaxFeedLimit)

	// Множество исключений строится на лету из журнала, не кэшируется
	excludedIDs, err := s.requestRepo.CounterpartIDs(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	filter := repositories.FeedFilter{
		Role:         query.Role,
		Experience:   query.Experience,
		Availability: query.Availability,
		Location:     query.Location,
		Skills:       SplitSkills(query.Skills),
	}

	// limit+1 строк: наличие лишней строки означает hasMore
	// без отдельного count-запроса
	offset := (page - 1) * limit
	users, err := s.userRepo.FindCandidates(userID, excludedIDs, filter, limit+1, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	hasMore := len(users) > limit
	if hasMore {
		users = users[:limit]
	}

	items := make([]dto.UserSafe, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserSafe(&users[i]))
	}

	return &dto.FeedResult{
		Data:    items,
		Page:    page,
		Limit:   limit,
		HasMore: hasMore,
	}, nil
}

// ClampLimit приводит limit к [1, max], пустое значение - к default
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// SplitSkills разбирает список навыков "go,postgres, docker"
func SplitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}
