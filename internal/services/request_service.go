package services

import (
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"
)

// Request list directions.
const (
	DirectionIncoming = "incoming" // caller is the mentor
	DirectionOutgoing = "outgoing" // caller is the learner
)

type RequestService interface {
	CreateRequest(learnerID string, req *dto.CreateRequestRequest) error
	ListRequests(userID, direction string) ([]models.Request, error)
	UpdateStatus(requesterID, requestID string, status models.RequestStatus) error
	GetRequest(requesterID, requestID string) (*dto.RequestDetail, error)
	HasRequested(learnerID, skillID string) (bool, error)
}

type RequestServiceImpl struct {
	requestRepo repositories.RequestRepository
	skillRepo   repositories.SkillRepository
	userRepo    repositories.UserRepository
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	skillRepo repositories.SkillRepository,
	userRepo repositories.UserRepository,
) RequestService {
	return &RequestServiceImpl{
		requestRepo: requestRepo,
		skillRepo:   skillRepo,
		userRepo:    userRepo,
	}
}

// CreateRequest inserts a pending request for the authenticated learner.
// Skill, mentor and learner names are snapshotted server-side from current
// records; client-supplied copies are not trusted.
func (s *RequestServiceImpl) CreateRequest(learnerID string, req *dto.CreateRequestRequest) error {
	skill, err := s.skillRepo.GetDetail(req.SkillID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrSkillNotFound
		}
		return apperrors.InternalError(err)
	}

	if skill.MentorID == learnerID {
		return apperrors.ErrSelfRequest
	}

	learner, err := s.userRepo.FindByID(learnerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	// Friendly pre-check. The partial unique index remains the actual
	// guard, so a concurrent duplicate still fails on insert below.
	exists, err := s.requestRepo.ExistsPending(req.SkillID, learnerID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if exists {
		return apperrors.ErrDuplicateRequest
	}

	request := &models.Request{
		SkillID:     skill.ID,
		SkillName:   skill.Name,
		MentorID:    skill.MentorID,
		MentorName:  skill.MentorName,
		LearnerID:   learner.ID,
		LearnerName: learner.FullName,
		Status:      models.RequestStatusPending,
	}

	if err := s.requestRepo.Create(request); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicatePending) {
			return apperrors.ErrDuplicateRequest
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// ListRequests returns the caller's requests, newest first. An empty result
// is an empty slice, never an error.
func (s *RequestServiceImpl) ListRequests(userID, direction string) ([]models.Request, error) {
	var (
		requests []models.Request
		err      error
	)

	switch direction {
	case DirectionIncoming:
		requests, err = s.requestRepo.FindByMentor(userID)
	case DirectionOutgoing:
		requests, err = s.requestRepo.FindByLearner(userID)
	default:
		return nil, apperrors.NewBadRequestError("type must be 'incoming' or 'outgoing'")
	}

	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if requests == nil {
		requests = []models.Request{}
	}
	return requests, nil
}

// UpdateStatus performs the one-shot pending -> accepted|rejected transition.
// Only the request's mentor may decide, the submitted status is validated
// against the closed decision set, and terminal states are immutable.
func (s *RequestServiceImpl) UpdateStatus(requesterID, requestID string, status models.RequestStatus) error {
	if !models.ValidRequestDecision(status) {
		return apperrors.ErrInvalidRequestStatus
	}

	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return apperrors.ErrRequestNotFound
		}
		return apperrors.InternalError(err)
	}

	if request.MentorID != requesterID {
		return apperrors.ErrNotRequestMentor
	}

	if request.Status != models.RequestStatusPending {
		return apperrors.ErrRequestAlreadyDecided
	}

	if err := s.requestRepo.Decide(requestID, status); err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			// Lost a race: the request was decided between the read above
			// and the conditional update.
			return apperrors.ErrRequestAlreadyDecided
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// GetRequest returns the detail view for a participant. The counterpart's
// contact email is disclosed only when the request has been accepted.
func (s *RequestServiceImpl) GetRequest(requesterID, requestID string) (*dto.RequestDetail, error) {
	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if requesterID != request.MentorID && requesterID != request.LearnerID {
		return nil, apperrors.ErrNotRequestParticipant
	}

	detail := &dto.RequestDetail{
		ID:          request.ID,
		SkillID:     request.SkillID,
		SkillName:   request.SkillName,
		MentorID:    request.MentorID,
		MentorName:  request.MentorName,
		LearnerID:   request.LearnerID,
		LearnerName: request.LearnerName,
		Status:      request.Status,
		CreatedAt:   request.CreatedAt,
	}

	if request.Status == models.RequestStatusAccepted {
		counterpartID := request.MentorID
		if requesterID == request.MentorID {
			counterpartID = request.LearnerID
		}

		counterpart, err := s.userRepo.FindByID(counterpartID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		detail.ContactEmail = &counterpart.Email
	}

	return detail, nil
}

// HasRequested reports whether the learner ever requested the skill,
// independent of status. Used by the UI to pre-populate the
// "already requested" state.
func (s *RequestServiceImpl) HasRequested(learnerID, skillID string) (bool, error) {
	exists, err := s.requestRepo.Exists(skillID, learnerID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return exists, nil
}
