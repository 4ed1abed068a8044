package dto

import (
	"time"

	"linkup_backend/internal/models"
)

// ========================
// Connection DTOs
// ========================

// SwipeRequest - тело POST /swipe-left и /swipe-right
type SwipeRequest struct {
	ToUserID string `json:"toUserId" validate:"required,uuid"`
}

// SwipeResult - результат регистрации сигнала
type SwipeResult struct {
	Request *RequestView `json:"data"`
	Matched bool         `json:"matched"`
	// Повторный свайп возвращает существующую запись без изменений
	AlreadySwiped bool `json:"-"`
}

// RequestView - проекция записи журнала без связанных пользователей
type RequestView struct {
	ID         string               `json:"id"`
	FromUserID string               `json:"fromUserId"`
	ToUserID   string               `json:"toUserId"`
	Status     models.RequestStatus `json:"status"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

func NewRequestView(req *models.ConnectionRequest) *RequestView {
	return &RequestView{
		ID:         req.ID,
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Status:     req.Status,
		CreatedAt:  req.CreatedAt,
		UpdatedAt:  req.UpdatedAt,
	}
}

// PendingRequestView - входящая/исходящая заявка с профилем второй стороны
type PendingRequestView struct {
	ID        string               `json:"id"`
	User      UserSafe             `json:"user"`
	Status    models.RequestStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
}

// ConnectionView - принятая связь, спроецированная на "вторую сторону"
type ConnectionView struct {
	User        UserSafe  `json:"user"`
	ConnectedAt time.Time `json:"connectedAt"`
}
