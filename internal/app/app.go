package app

import (
	"fmt"

	"gigflow_backend/database"
	"gigflow_backend/internal/config"
	"gigflow_backend/internal/email"
	"gigflow_backend/internal/handlers"
	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/middleware"
	"gigflow_backend/internal/routes"
	"gigflow_backend/internal/services"
	"gigflow_backend/internal/validator"
	"gigflow_backend/internal/workers"
	"gigflow_backend/ws"

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
		logger.Fatal("Migration failed", "error", err)
	}

	dispatcher := workers.NewDispatcher(256)
	dispatcher.Start()
	defer dispatcher.Stop()

	ginRouter := SetupRouter(cfg, gormDB, dispatcher)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, dispatcher *workers.Dispatcher) *gin.Engine {
	emailProvider := initializeEmailProvider(cfg)

	wsManager := ws.NewWebSocketManager()
	go wsManager.Run()
	wsHandler := ws.NewWebSocketHandler(wsManager)

	serviceContainer := services.NewServiceContainer(gormDB, emailProvider, wsManager, dispatcher)

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func initializeEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host not configured, using noop email provider")
		return &NoopEmailProvider{}
	}

	renderer, err := email.NewTemplateManager()
	if err != nil {
		logger.Fatal("Failed to load email templates", "error", err)
	}

	return email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	}, renderer)
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		GigHandler:          handlers.NewGigHandler(baseHandler, services.GigService),
		BidHandler:          handlers.NewBidHandler(baseHandler, services.BidService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
