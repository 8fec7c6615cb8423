package handlers

import (
	"net/http"

	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", middleware.AuthMiddleware(), h.GetDashboard)

	// Public landing page stats
	r.GET("/stats/landing", h.GetLandingStats)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *DashboardHandler) GetLandingStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.GetLandingStats())
}
