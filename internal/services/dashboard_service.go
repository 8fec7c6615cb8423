package services

import (
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/services/dto"
	"skillswap_backend/pkg/apperrors"
)

const recentActivityLimit = 3

type DashboardService interface {
	GetDashboard(userID string) (*dto.DashboardResponse, error)
	GetLandingStats() *dto.LandingStatsResponse
}

type DashboardServiceImpl struct {
	userRepo    repositories.UserRepository
	skillRepo   repositories.SkillRepository
	requestRepo repositories.RequestRepository
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
	requestRepo repositories.RequestRepository,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:    userRepo,
		skillRepo:   skillRepo,
		requestRepo: requestRepo,
	}
}

func (s *DashboardServiceImpl) GetDashboard(userID string) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	activeSkills, err := s.skillRepo.CountByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	pendingIncoming, err := s.requestRepo.CountPendingByMentor(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	acceptedTotal, err := s.requestRepo.CountAcceptedInvolving(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recent, err := s.requestRepo.FindRecentByMentor(userID, recentActivityLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if recent == nil {
		recent = []models.Request{}
	}

	return &dto.DashboardResponse{
		UserName: user.FullName,
		Stats: dto.DashboardStats{
			ActiveSkills:    activeSkills,
			PendingIncoming: pendingIncoming,
			AcceptedTotal:   acceptedTotal,
			Rating:          nil,
		},
		RecentActivity: recent,
	}, nil
}

// GetLandingStats never fails: on storage errors the landing page degrades
// to zero counts instead of erroring out.
func (s *DashboardServiceImpl) GetLandingStats() *dto.LandingStatsResponse {
	stats := &dto.LandingStatsResponse{
		TopMentors: []repositories.MentorSummary{},
	}

	count, err := s.userRepo.CountAll()
	if err != nil {
		return stats
	}
	stats.UserCount = count

	mentors, err := s.userRepo.FindTopMentors(recentActivityLimit)
	if err != nil {
		return stats
	}
	if mentors != nil {
		stats.TopMentors = mentors
	}

	return stats
}
