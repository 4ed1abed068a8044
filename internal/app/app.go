package app

import (
	"fmt"

	"linkup_backend/internal/config"
	"linkup_backend/internal/database"
	"linkup_backend/internal/handlers"
	"linkup_backend/internal/logger"
	"linkup_backend/internal/middleware"
	"linkup_backend/internal/repositories"
	"linkup_backend/internal/routes"
	"linkup_backend/internal/services"
	"linkup_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func Run() {
	// .env опционален: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment as-is")
	}

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
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
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает весь граф зависимостей и возвращает готовый *gin.Engine.
// Используется и при старте приложения, и в интеграционных тестах.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer, userRepo := initializeServices(gormDB)
	appHandlers := initializeHandlers(serviceContainer, userRepo)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) (*services.ServiceContainer, repositories.UserRepository) {
	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	connectionRepo := repositories.NewConnectionRequestRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	connectionService := services.NewConnectionService(connectionRepo, userRepo, notificationRepo)
	feedService := services.NewFeedService(userRepo, connectionRepo)
	notificationService := services.NewNotificationService(notificationRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		UserService:         userService,
		ConnectionService:   connectionService,
		FeedService:         feedService,
		NotificationService: notificationService,
	}, userRepo
}

func initializeHandlers(container *services.ServiceContainer, userRepo repositories.UserRepository) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, container.UserService),
		ConnectionHandler:   handlers.NewConnectionHandler(baseHandler, container.ConnectionService, userRepo),
		FeedHandler:         handlers.NewFeedHandler(baseHandler, container.FeedService, userRepo),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, container.NotificationService),
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
