package repositories

import (
	"errors"
	"time"

	"linkup_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound      = errors.New("connection request not found")
	ErrRequestAlreadyExists = errors.New("connection request already exists")
)

// ConnectionRequestFilter - опциональные условия поиска по журналу сигналов
type ConnectionRequestFilter struct {
	FromUserID string
	ToUserID   string
	Status     models.RequestStatus
}

type ConnectionRequestRepository interface {
	Find(filter ConnectionRequestFilter) ([]models.ConnectionRequest, error)
	FindPair(fromUserID, toUserID string) (*models.ConnectionRequest, error)

	// CreateIfAbsent создает направленную запись; если запись для этой
	// упорядоченной пары уже есть, возвращает ErrRequestAlreadyExists.
	// Уникальность обеспечивает составной индекс, а не проверка в коде.
	CreateIfAbsent(req *models.ConnectionRequest) error

	// AcceptPair атомарно переводит обе направленные записи
	// неупорядоченной пары {a, b} в статус accepted одним UPDATE.
	AcceptPair(userA, userB string) (int64, error)

	// CounterpartIDs возвращает всех пользователей, фигурирующих в любой
	// записи с данным пользователем, независимо от статуса и направления.
	CounterpartIDs(userID string) ([]string, error)

	// Read-only проекции
	FindReceivedPending(userID string) ([]models.ConnectionRequest, error)
	FindSentPending(userID string) ([]models.ConnectionRequest, error)
	FindAccepted(userID string) ([]models.ConnectionRequest, error)
}

type ConnectionRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewConnectionRequestRepository(db *gorm.DB) ConnectionRequestRepository {
	return &ConnectionRequestRepositoryImpl{db: db}
}

func (r *ConnectionRequestRepositoryImpl) Find(filter ConnectionRequestFilter) ([]models.ConnectionRequest, error) {
	query := r.db.Model(&models.ConnectionRequest{})

	if filter.FromUserID != "" {
		query = query.Where("from_user_id = ?", filter.FromUserID)
	}
	if filter.ToUserID != "" {
		query = query.Where("to_user_id = ?", filter.ToUserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var requests []models.ConnectionRequest
	if err := query.Order("created_at, id").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ConnectionRequestRepositoryImpl) FindPair(fromUserID, toUserID string) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	err := r.db.First(&req, "from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *ConnectionRequestRepositoryImpl) CreateIfAbsent(req *models.ConnectionRequest) error {
	if err := r.db.Create(req).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrRequestAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ConnectionRequestRepositoryImpl) AcceptPair(userA, userB string) (int64, error) {
	result := r.db.Model(&models.ConnectionRequest{}).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		Updates(map[string]interface{}{
			"status":     models.RequestStatusAccepted,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *ConnectionRequestRepositoryImpl) CounterpartIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Raw(
		`SELECT CASE WHEN from_user_id = ? THEN to_user_id ELSE from_user_id END
		 FROM connection_requests
		 WHERE from_user_id = ? OR to_user_id = ?`,
		userID, userID, userID,
	).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *ConnectionRequestRepositoryImpl) FindReceivedPending(userID string) ([]models.ConnectionRequest, error) {
	var requests []models.ConnectionRequest
	err := r.db.Preload("FromUser").
		Where("to_user_id = ? AND status = ?", userID, models.RequestStatusInterested).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ConnectionRequestRepositoryImpl) FindSentPending(userID string) ([]models.ConnectionRequest, error) {
	var requests []models.ConnectionRequest
	err := r.db.Preload("ToUser").
		Where("from_user_id = ? AND status = ?", userID, models.RequestStatusInterested).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ConnectionRequestRepositoryImpl) FindAccepted(userID string) ([]models.ConnectionRequest, error) {
	var requests []models.ConnectionRequest
	err := r.db.Preload("FromUser").Preload("ToUser").
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?",
			userID, userID, models.RequestStatusAccepted).
		Order("updated_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// isUniqueViolation распознает нарушение уникального индекса (SQLSTATE 23505)
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
