package dto

import (
	"skillswap_backend/internal/models"
	"skillswap_backend/internal/repositories"
)

type AddSkillRequest struct {
	Name     string            `json:"name" binding:"required"`
	Category string            `json:"category" binding:"required"`
	Level    models.SkillLevel `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
}

type AddSkillResponse struct {
	SkillID string `json:"skill_id"`
}

// CatalogListing is a catalog row plus the rating slot. Rating stays null
// until a review system exists; it is never a fabricated literal.
type CatalogListing struct {
	repositories.SkillListing
	Rating *float64 `json:"rating"`
}

type CatalogDetail struct {
	repositories.SkillDetail
	Rating *float64 `json:"rating"`
}
