package repositories

import (
	"errors"
	"time"

	"linkup_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// FeedFilter - фильтры ленты кандидатов.
// Пустое значение или сентинел "any" означает "без фильтра".
type FeedFilter struct {
	Role         string
	Experience   string
	Availability string
	Location     string
	Skills       []string
}

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateProfile(user *models.User) error

	// FindCandidates выбирает кандидатов ленты: полный профиль, не сам
	// пользователь, не из excludedIDs, с учетом фильтров. Стабильный
	// порядок по created_at, id, чтобы страницы не расходились.
	FindCandidates(userID string, excludedIDs []string, filter FeedFilter, limit, offset int) ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	// Check if user already exists
	var existing models.User
	if err := r.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) UpdateProfile(user *models.User) error {
	result := r.db.Model(user).Updates(map[string]interface{}{
		"name":                user.Name,
		"headline":            user.Headline,
		"role":                user.Role,
		"experience":          user.Experience,
		"availability":        user.Availability,
		"location":            user.Location,
		"skills":              user.Skills,
		"links":               user.Links,
		"is_profile_complete": user.IsProfileComplete,
		"updated_at":          time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindCandidates(userID string, excludedIDs []string, filter FeedFilter, limit, offset int) ([]models.User, error) {
	query := r.db.Model(&models.User{}).
		Where("id <> ?", userID).
		Where("is_profile_complete = ?", true)

	if len(excludedIDs) > 0 {
		query = query.Where("id NOT IN ?", excludedIDs)
	}
	if filter.Role != "" && filter.Role != models.FilterAny {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Experience != "" && filter.Experience != models.FilterAny {
		query = query.Where("experience = ?", filter.Experience)
	}
	if filter.Availability != "" && filter.Availability != models.FilterAny {
		query = query.Where("availability = ?", filter.Availability)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if len(filter.Skills) > 0 {
		// Пересечение массивов: хотя бы один общий навык
		query = query.Where("skills && ?", pq.StringArray(filter.Skills))
	}

	var users []models.User
	err := query.Order("created_at, id").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
