package services

import (
	"linkup_backend/internal/apperrors"
	"linkup_backend/internal/repositories"
	"linkup_backend/internal/services/dto"
)

type NotificationService interface {
	GetUserNotifications(userID string, limit, offset int) ([]dto.NotificationView, error)
	MarkAsRead(notificationID, userID string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetUserNotifications(userID string, limit, offset int) ([]dto.NotificationView, error) {
	notifications, err := s.notificationRepo.FindByUser(userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	views := make([]dto.NotificationView, 0, len(notifications))
	for i := range notifications {
		views = append(views, dto.NewNotificationView(&notifications[i]))
	}
	return views, nil
}

func (s *notificationService) MarkAsRead(notificationID, userID string) error {
	if err := s.notificationRepo.MarkAsRead(notificationID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
