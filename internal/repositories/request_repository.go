package repositories

import (
	"errors"
	"time"

	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrDuplicatePending = errors.New("pending request already exists for this skill and learner")
)

type RequestRepository interface {
	Create(request *models.Request) error
	FindByID(id string) (*models.Request, error)
	FindByMentor(mentorID string) ([]models.Request, error)
	FindByLearner(learnerID string) ([]models.Request, error)
	FindRecentByMentor(mentorID string, limit int) ([]models.Request, error)

	ExistsPending(skillID, learnerID string) (bool, error)
	Exists(skillID, learnerID string) (bool, error)

	// Decide flips a pending request into a terminal status. The update is
	// conditional on the current status, so terminal states stay immutable.
	Decide(requestID string, status models.RequestStatus) error

	CountPendingByMentor(mentorID string) (int64, error)
	CountAcceptedInvolving(userID string) (int64, error)
}

type RequestRepositoryImpl struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

func (r *RequestRepositoryImpl) Create(request *models.Request) error {
	err := r.db.Create(request).Error
	if err != nil {
		// The partial unique index (status = 'pending') rejects concurrent
		// duplicates that a read-then-write check would let through.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePending
		}
		return err
	}
	return nil
}

func (r *RequestRepositoryImpl) FindByID(id string) (*models.Request, error) {
	var request models.Request
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) FindByMentor(mentorID string) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Where("mentor_id = ?", mentorID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) FindByLearner(learnerID string) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Where("learner_id = ?", learnerID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) FindRecentByMentor(mentorID string, limit int) ([]models.Request, error) {
	var requests []models.Request
	err := r.db.Where("mentor_id = ?", mentorID).Order("created_at DESC").Limit(limit).Find(&requests).Error
	return requests, err
}

func (r *RequestRepositoryImpl) ExistsPending(skillID, learnerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Request{}).
		Where("skill_id = ? AND learner_id = ? AND status = ?", skillID, learnerID, models.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *RequestRepositoryImpl) Exists(skillID, learnerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Request{}).
		Where("skill_id = ? AND learner_id = ?", skillID, learnerID).
		Count(&count).Error
	return count > 0, err
}

func (r *RequestRepositoryImpl) Decide(requestID string, status models.RequestStatus) error {
	result := r.db.Model(&models.Request{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Either the id is unknown or the request was already decided; the
		// service layer distinguishes the two with a follow-up lookup.
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) CountPendingByMentor(mentorID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Request{}).
		Where("mentor_id = ? AND status = ?", mentorID, models.RequestStatusPending).
		Count(&count).Error
	return count, err
}

func (r *RequestRepositoryImpl) CountAcceptedInvolving(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Request{}).
		Where("(mentor_id = ? OR learner_id = ?) AND status = ?", userID, userID, models.RequestStatusAccepted).
		Count(&count).Error
	return count, err
}
