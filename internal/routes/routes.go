package routes

import (
	"gigflow_backend/internal/handlers"
	"gigflow_backend/internal/logger"
	"gigflow_backend/internal/middleware"
	"gigflow_backend/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP and WebSocket route.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.GigHandler.RegisterRoutes(api)
		appHandlers.BidHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
	}

	wsGroup := ginRouter.Group("/ws")
	wsGroup.Use(middleware.AuthMiddleware())
	{
		wsGroup.GET("", wsHandler.ServeWS)
	}
	logger.Info("WebSocket route /ws registered")
}
