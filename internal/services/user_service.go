package services

import (
	"linkup_backend/internal/apperrors"
	"linkup_backend/internal/models"
	"linkup_backend/internal/repositories"
	"linkup_backend/internal/services/dto"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserSafe, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserSafe, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(userID string) (*dto.UserSafe, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	safe := dto.NewUserSafe(user)
	return &safe, nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserSafe, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Headline != "" {
		user.Headline = req.Headline
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Experience != "" {
		user.Experience = models.ExperienceLevel(req.Experience)
	}
	if req.Availability != "" {
		user.Availability = models.Availability(req.Availability)
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.Links != nil {
		if err := user.SetLinks(req.Links); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	// isProfileComplete вычисляется, клиент его не присылает
	user.IsProfileComplete = user.ComputeProfileComplete()

	if err := s.userRepo.UpdateProfile(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	safe := dto.NewUserSafe(user)
	return &safe, nil
}
