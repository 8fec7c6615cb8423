package dto

import (
	"time"

	"skillswap_backend/internal/models"
)

type CreateRequestRequest struct {
	SkillID string `json:"skill_id" binding:"required"`
}

type UpdateRequestStatusRequest struct {
	Status models.RequestStatus `json:"status" binding:"required"`
}

// RequestDetail is the single-request view for a participant. ContactEmail
// is the counterpart's email and is disclosed only once the request has been
// accepted.
type RequestDetail struct {
	ID          string               `json:"id"`
	SkillID     string               `json:"skill_id"`
	SkillName   string               `json:"skill_name"`
	MentorID    string               `json:"mentor_id"`
	MentorName  string               `json:"mentor_name"`
	LearnerID   string               `json:"learner_id"`
	LearnerName string               `json:"learner_name"`
	Status      models.RequestStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`

	ContactEmail *string `json:"contact_email,omitempty"`
}

type RequestExistsResponse struct {
	Exists bool `json:"exists"`
}
