package dto

import (
	"encoding/json"
	"time"

	"linkup_backend/internal/models"
)

// NotificationView - запись уведомления для выдачи клиенту
type NotificationView struct {
	ID        string                  `json:"id"`
	Type      models.NotificationType `json:"type"`
	Data      map[string]string       `json:"data"`
	IsRead    bool                    `json:"isRead"`
	CreatedAt time.Time               `json:"createdAt"`
}

func NewNotificationView(n *models.Notification) NotificationView {
	data := make(map[string]string)
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &data)
	}
	return NotificationView{
		ID:        n.ID,
		Type:      n.Type,
		Data:      data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
