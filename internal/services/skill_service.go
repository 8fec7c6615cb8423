package services

import (
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type SkillService interface {
	AddSkill(userID string, req *dto.AddSkillRequest) (*dto.AddSkillResponse, error)
	GetUserSkills(userID string) ([]models.Skill, error)
	DeleteSkill(userID, skillID string) error

	// Catalog view
	ListCatalog(category string) ([]dto.CatalogListing, error)
	GetSkillDetail(skillID string) (*dto.CatalogDetail, error)
}

type SkillServiceImpl struct {
	skillRepo repositories.SkillRepository
	userRepo  repositories.UserRepository
}

func NewSkillService(
	skillRepo repositories.SkillRepository,
	userRepo repositories.UserRepository,
) SkillService {
	return &SkillServiceImpl{
		skillRepo: skillRepo,
		userRepo:  userRepo,
	}
}

func (s *SkillServiceImpl) AddSkill(userID string, req *dto.AddSkillRequest) (*dto.AddSkillResponse, error) {
	if !models.ValidSkillLevel(req.Level) {
		return nil, apperrors.ErrInvalidSkillLevel
	}

	// The owner must exist; skills have no life of their own.
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	skill := &models.Skill{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
	}

	if err := s.skillRepo.Add(skill); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AddSkillResponse{SkillID: skill.ID}, nil
}

func (s *SkillServiceImpl) GetUserSkills(userID string) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skills, nil
}

func (s *SkillServiceImpl) DeleteSkill(userID, skillID string) error {
	err := s.skillRepo.DeleteUserSkill(userID, skillID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrSkillNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *SkillServiceImpl) ListCatalog(category string) ([]dto.CatalogListing, error) {
	listings, err := s.skillRepo.ListAll(category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	catalog := make([]dto.CatalogListing, 0, len(listings))
	for _, listing := range listings {
		catalog = append(catalog, dto.CatalogListing{
			SkillListing: listing,
			Rating:       nil, // no review system yet
		})
	}
	return catalog, nil
}

func (s *SkillServiceImpl) GetSkillDetail(skillID string) (*dto.CatalogDetail, error) {
	detail, err := s.skillRepo.GetDetail(skillID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return nil, apperrors.ErrSkillNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CatalogDetail{
		SkillDetail: *detail,
		Rating:      nil,
	}, nil
}
