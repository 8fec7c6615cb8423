package repositories

import (
	"errors"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	Add(skill *models.Skill) error
	FindByUser(userID string) ([]models.Skill, error)
	DeleteUserSkill(userID, skillID string) error
	CountByUser(userID string) (int64, error)

	// Catalog view: flat projections joined with the owning mentor at read
	// time. No explicit ordering is applied to listings.
	ListAll(category string) ([]SkillListing, error)
	GetDetail(skillID string) (*SkillDetail, error)
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

// SkillListing is one row of the flattened catalog.
type SkillListing struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Level      models.SkillLevel `json:"level"`
	MentorID   string            `json:"mentor_id"`
	MentorName string            `json:"mentor_name"`
}

// SkillDetail joins one skill with its mentor's public identity.
type SkillDetail struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Level          models.SkillLevel `json:"level"`
	MentorID       string            `json:"mentor_id"`
	MentorName     string            `json:"mentor_name"`
	MentorBio      string            `json:"mentor_bio"`
	MentorLocation string            `json:"mentor_location"`
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

func (r *SkillRepositoryImpl) FindByUser(userID string) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("user_id = ?", userID).Order("added_at ASC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) DeleteUserSkill(userID, skillID string) error {
	result := r.db.Where("user_id = ? AND id = ?", userID, skillID).Delete(&models.Skill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Skill{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *SkillRepositoryImpl) ListAll(category string) ([]SkillListing, error) {
	query := r.db.Table("skills").
		Select("skills.id, skills.name, skills.category, skills.level, skills.user_id AS mentor_id, users.full_name AS mentor_name").
		Joins("JOIN users ON users.id = skills.user_id")

	// "All" is the UI sentinel for an unfiltered catalog. The match is
	// exact and case-sensitive.
	if category != "" && category != "All" {
		query = query.Where("skills.category = ?", category)
	}

	var listings []SkillListing
	err := query.Scan(&listings).Error
	return listings, err
}

func (r *SkillRepositoryImpl) GetDetail(skillID string) (*SkillDetail, error) {
	var detail SkillDetail
	err := r.db.Table("skills").
		Select("skills.id, skills.name, skills.category, skills.level, skills.user_id AS mentor_id, users.full_name AS mentor_name, users.bio AS mentor_bio, users.location AS mentor_location").
		Joins("JOIN users ON users.id = skills.user_id").
		Where("skills.id = ?", skillID).
		Scan(&detail).Error
	if err != nil {
		return nil, err
	}
	if detail.ID == "" {
		return nil, ErrSkillNotFound
	}
	return &detail, nil
}
