package dto

import (
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
)

type DashboardStats struct {
	ActiveSkills    int64 `json:"active_skills"`
	PendingIncoming int64 `json:"pending_incoming"`
	AcceptedTotal   int64 `json:"accepted_total"`

	// Null until reviews exist.
	Rating *float64 `json:"rating"`
}

type DashboardResponse struct {
	UserName       string           `json:"user_name"`
	Stats          DashboardStats   `json:"stats"`
	RecentActivity []models.Request `json:"recent_activity"`
}

type LandingStatsResponse struct {
	UserCount  int64                          `json:"user_count"`
	TopMentors []repositories.MentorSummary `json:"top_mentors"`
}
