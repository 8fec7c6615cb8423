package routes

import (
	"skillswap_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all HTTP routes under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.SkillHandler.RegisterRoutes(api)
		appHandlers.RequestHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
	}
}
