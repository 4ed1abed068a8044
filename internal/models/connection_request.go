package models

// ConnectionRequest - направленная запись о сигнале интереса.
// (A→B) и (B→A) - разные записи; матч представлен двумя записями
// со статусом accepted, которые переводятся в него одновременно.
//
// Уникальный составной индекс по упорядоченной паре закрывает гонку
// check-then-insert: второй конкурентный insert падает с 23505,
// а не создает дубликат.
type ConnectionRequest struct {
	BaseModel
	FromUserID string        `gorm:"type:uuid;not null;index;uniqueIndex:idx_connection_requests_pair" json:"fromUserId"`
	ToUserID   string        `gorm:"type:uuid;not null;index;uniqueIndex:idx_connection_requests_pair" json:"toUserId"`
	Status     RequestStatus `gorm:"type:varchar(20);not null" json:"status"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"-"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"-"`
}

func (ConnectionRequest) TableName() string {
	return "connection_requests"
}
