package repositories

import (
	"errors"
	"time"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateProfile(userID, fullName, bio, location string) error
	CountAll() (int64, error)
	FindTopMentors(limit int) ([]MentorSummary, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

// MentorSummary is the landing-page projection of a user with at least one
// skill, ranked by how many skills they offer.
type MentorSummary struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Location   string `json:"location"`
	SkillCount int64  `json:"skill_count"`
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Skills", func(db *gorm.DB) *gorm.DB {
		return db.Order("added_at ASC")
	}).First(&user, "id = ?", id).Error
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
	err := r.db.Create(user).Error
	if err != nil {
		// The unique index on email is the source of truth; translate the
		// duplicate-key failure instead of pre-checking.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateProfile(userID, fullName, bio, location string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"full_name":  fullName,
		"bio":        bio,
		"location":   location,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) FindTopMentors(limit int) ([]MentorSummary, error) {
	var mentors []MentorSummary
	err := r.db.Table("users").
		Select("users.id, users.full_name, users.location, COUNT(skills.id) AS skill_count").
		Joins("JOIN skills ON skills.user_id = users.id").
		Group("users.id, users.full_name, users.location").
		Order("skill_count DESC").
		Limit(limit).
		Scan(&mentors).Error
	return mentors, err
}
