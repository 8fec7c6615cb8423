package services

import (
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProfileResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Bio:       user.Bio,
		Location:  user.Location,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		Skills:    user.Skills,
	}, nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) error {
	err := s.userRepo.UpdateProfile(userID, req.FullName, req.Bio, req.Location)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
