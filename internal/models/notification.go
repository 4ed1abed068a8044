package models

import (
	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationNewMatch   NotificationType = "new_match"
	NotificationNewRequest NotificationType = "new_request"
)

// Notification - запись для внешнего коллаборатора доставки.
// Ядро только пишет строку, доставкой занимается внешний сервис.
type Notification struct {
	BaseModel
	UserID string           `gorm:"type:uuid;not null;index"`
	Type   NotificationType `gorm:"type:varchar(30);not null"`
	Data   datatypes.JSON   `gorm:"type:jsonb"` // {"counterpart_id": "..."}
	IsRead bool             `gorm:"default:false"`
}
