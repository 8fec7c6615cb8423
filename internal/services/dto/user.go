package dto

import (
	"time"

	"skillswap_backend/internal/models"
)

type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

type ProfileResponse struct {
	ID        string          `json:"id"`
	FullName  string          `json:"full_name"`
	Email     string          `json:"email"`
	Bio       string          `json:"bio"`
	Location  string          `json:"location"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	Skills    []models.Skill  `json:"skills"`
}
