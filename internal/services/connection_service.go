package services

import (
	"context"
	"encoding/json"

	"linkup_backend/internal/apperrors"
	"linkup_backend/internal/logger"
	"linkup_backend/internal/models"
	"linkup_backend/internal/repositories"
	"linkup_backend/internal/services/dto"

	"gorm.io/datatypes"
)

// SwipeIntent - намерение сигнала: left (не интересен) / right (интересен)
type SwipeIntent string

const (
	SwipeLeft  SwipeIntent = "left"
	SwipeRight SwipeIntent = "right"
)

type ConnectionService interface {
	// RegisterSignal регистрирует односторонний сигнал actor→target и
	// решает, образовался ли матч. Повторный сигнал по той же паре
	// идемпотентен. Конфликт конкурентной вставки разрешается
	// повторным чтением и наружу не выходит.
	RegisterSignal(ctx context.Context, actorID, targetID string, intent SwipeIntent) (*dto.SwipeResult, error)

	GetReceivedRequests(userID string) ([]dto.PendingRequestView, error)
	GetSentRequests(userID string) ([]dto.PendingRequestView, error)
	GetConnections(userID string) ([]dto.ConnectionView, error)
}

type connectionService struct {
	requestRepo      repositories.ConnectionRequestRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
}

func NewConnectionService(
	requestRepo repositories.ConnectionRequestRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
) ConnectionService {
	return &connectionService{
		requestRepo:      requestRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *connectionService) RegisterSignal(ctx context.Context, actorID, targetID string, intent SwipeIntent) (*dto.SwipeResult, error) {
	if actorID == targetID {
		return nil, apperrors.ErrSelfSwipe
	}

	// Цель должна существовать
	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Уже свайпал - не ошибка, возвращаем запись как есть
	existing, err := s.requestRepo.FindPair(actorID, targetID)
	if err == nil {
		return s.repeatedSignal(existing, intent)
	}
	if !apperrors.Is(err, repositories.ErrRequestNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if intent == SwipeLeft {
		return s.registerLeft(ctx, actorID, targetID)
	}
	return s.registerRight(ctx, actorID, targetID)
}

// repeatedSignal - идемпотентная ветка: запись по упорядоченной паре
// уже есть. Для повторного right дополнительно сообщаем текущее
// состояние матча по встречной записи, чтобы клиент мог восстановить
// его без повторного свайпа.
func (s *connectionService) repeatedSignal(existing *models.ConnectionRequest, intent SwipeIntent) (*dto.SwipeResult, error) {
	result := &dto.SwipeResult{
		Request:       dto.NewRequestView(existing),
		AlreadySwiped: true,
	}

	if intent != SwipeRight {
		return result, nil
	}

	if existing.Status == models.RequestStatusAccepted {
		result.Matched = true
		return result, nil
	}

	if existing.Status == models.RequestStatusInterested {
		reciprocal, err := s.requestRepo.FindPair(existing.ToUserID, existing.FromUserID)
		if err == nil && reciprocal.Status == models.RequestStatusInterested {
			// Взаимный интерес зафиксирован; проигравшая сторона гонки
			// видит его здесь до (или сразу после) atomic flip победителя
			result.Matched = true
		}
	}

	return result, nil
}

func (s *connectionService) registerLeft(ctx context.Context, actorID, targetID string) (*dto.SwipeResult, error) {
	req := &models.ConnectionRequest{
		FromUserID: actorID,
		ToUserID:   targetID,
		Status:     models.RequestStatusIgnored,
	}

	if err := s.requestRepo.CreateIfAbsent(req); err != nil {
		if apperrors.Is(err, repositories.ErrRequestAlreadyExists) {
			// Гонка с параллельным сигналом: перечитываем и идем
			// по идемпотентной ветке
			return s.rereadAfterConflict(actorID, targetID, SwipeLeft)
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.SwipeResult{Request: dto.NewRequestView(req)}, nil
}

func (s *connectionService) registerRight(ctx context.Context, actorID, targetID string) (*dto.SwipeResult, error) {
	reciprocal, err := s.requestRepo.FindPair(targetID, actorID)
	if err != nil && !apperrors.Is(err, repositories.ErrRequestNotFound) {
		return nil, apperrors.InternalError(err)
	}
	mutualInterest := err == nil && reciprocal.Status == models.RequestStatusInterested

	req := &models.ConnectionRequest{
		FromUserID: actorID,
		ToUserID:   targetID,
		Status:     models.RequestStatusInterested,
	}

	if err := s.requestRepo.CreateIfAbsent(req); err != nil {
		if apperrors.Is(err, repositories.ErrRequestAlreadyExists) {
			return s.rereadAfterConflict(actorID, targetID, SwipeRight)
		}
		return nil, apperrors.InternalError(err)
	}

	if !mutualInterest {
		s.notify(ctx, targetID, models.NotificationNewRequest, actorID)
		return &dto.SwipeResult{Request: dto.NewRequestView(req)}, nil
	}

	// Матч: обе направленные записи переводятся в accepted одним UPDATE
	if _, err := s.requestRepo.AcceptPair(actorID, targetID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	req.Status = models.RequestStatusAccepted

	s.notify(ctx, actorID, models.NotificationNewMatch, targetID)
	s.notify(ctx, targetID, models.NotificationNewMatch, actorID)

	return &dto.SwipeResult{
		Request: dto.NewRequestView(req),
		Matched: true,
	}, nil
}

// rereadAfterConflict перечитывает запись, появившуюся в конкурентной
// вставке, и отвечает так же, как ветка "уже свайпал"
func (s *connectionService) rereadAfterConflict(actorID, targetID string, intent SwipeIntent) (*dto.SwipeResult, error) {
	existing, err := s.requestRepo.FindPair(actorID, targetID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.repeatedSignal(existing, intent)
}

// notify пишет строку для внешнего коллаборатора доставки.
// Уведомление не критично: ошибка логируется и не валит свайп.
func (s *connectionService) notify(ctx context.Context, userID string, ntype models.NotificationType, counterpartID string) {
	data, _ := json.Marshal(map[string]string{"counterpart_id": counterpartID})
	n := &models.Notification{
		UserID: userID,
		Type:   ntype,
		Data:   datatypes.JSON(data),
	}
	if err := s.notificationRepo.Create(n); err != nil {
		logger.CtxWithError(ctx, "failed to create notification", err,
			"user_id", userID, "type", string(ntype))
	}
}

// --- Read-only проекции ---

func (s *connectionService) GetReceivedRequests(userID string) ([]dto.PendingRequestView, error) {
	requests, err := s.requestRepo.FindReceivedPending(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.PendingRequestView, 0, len(requests))
	for _, req := range requests {
		if req.FromUser == nil {
			continue
		}
		views = append(views, dto.PendingRequestView{
			ID:        req.ID,
			User:      dto.NewUserSafe(req.FromUser),
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
		})
	}
	return views, nil
}

func (s *connectionService) GetSentRequests(userID string) ([]dto.PendingRequestView, error) {
	requests, err := s.requestRepo.FindSentPending(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.PendingRequestView, 0, len(requests))
	for _, req := range requests {
		if req.ToUser == nil {
			continue
		}
		views = append(views, dto.PendingRequestView{
			ID:        req.ID,
			User:      dto.NewUserSafe(req.ToUser),
			Status:    req.Status,
			CreatedAt: req.CreatedAt,
		})
	}
	return views, nil
}

func (s *connectionService) GetConnections(userID string) ([]dto.ConnectionView, error) {
	requests, err := s.requestRepo.FindAccepted(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Матч представлен двумя записями; проецируем на вторую сторону
	// и схлопываем дубликаты
	seen := make(map[string]bool)
	views := make([]dto.ConnectionView, 0, len(requests))
	for _, req := range requests {
		var other *models.User
		if req.FromUserID == userID {
			other = req.ToUser
		} else {
			other = req.FromUser
		}
		if other == nil || seen[other.ID] {
			continue
		}
		seen[other.ID] = true
		views = append(views, dto.ConnectionView{
			User:        dto.NewUserSafe(other),
			ConnectedAt: req.UpdatedAt,
		})
	}
	return views, nil
}
