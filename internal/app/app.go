package app

import (
	"fmt"

	"skillswap_backend/database"
	"skillswap_backend/internal/config"
	"skillswap_backend/internal/handlers"
	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/middleware"
	"skillswap_backend/internal/repositories"
	"skillswap_backend/internal/routes"
	"skillswap_backend/internal/services"
	"skillswap_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full handler chain. Shared with the integration
// test harness.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	skillRepo := repositories.NewSkillRepository(gormDB)
	requestRepo := repositories.NewRequestRepository(gormDB)

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo, refreshTokenRepo),
		UserService:      services.NewUserService(userRepo),
		SkillService:     services.NewSkillService(skillRepo, userRepo),
		RequestService:   services.NewRequestService(requestRepo, skillRepo, userRepo),
		DashboardService: services.NewDashboardService(userRepo, skillRepo, requestRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:      handlers.NewUserHandler(baseHandler, services.UserService),
		SkillHandler:     handlers.NewSkillHandler(baseHandler, services.SkillService),
		RequestHandler:   handlers.NewRequestHandler(baseHandler, services.RequestService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, services.DashboardService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
