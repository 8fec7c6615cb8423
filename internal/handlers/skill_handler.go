package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{
		BaseHandler:  base,
		skillService: skillService,
	}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	skills := r.Group("/skills")
	{
		// Public catalog
		skills.GET("", h.ListCatalog)
		skills.GET("/:skillId", h.GetSkillDetail)

		// Owner routes
		skills.GET("/my", middleware.AuthMiddleware(), h.GetMySkills)
		skills.POST("", middleware.AuthMiddleware(), h.AddSkill)
		skills.DELETE("/:skillId", middleware.AuthMiddleware(), h.DeleteSkill)
	}
}

// --- Owner handlers ---

func (h *SkillHandler) GetMySkills(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	skills, err := h.skillService.GetUserSkills(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skills": skills,
		"total":  len(skills),
	})
}

func (h *SkillHandler) AddSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.AddSkillRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.skillService.AddSkill(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	skillID := c.Param("skillId")

	if err := h.skillService.DeleteSkill(userID, skillID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

// --- Catalog handlers ---

func (h *SkillHandler) ListCatalog(c *gin.Context) {
	category := c.Query("category")

	listings, err := h.skillService.ListCatalog(category)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skills": listings,
		"total":  len(listings),
	})
}

func (h *SkillHandler) GetSkillDetail(c *gin.Context) {
	skillID := c.Param("skillId")

	detail, err := h.skillService.GetSkillDetail(skillID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
