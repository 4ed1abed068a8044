package routes

import (
	"linkup_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты под /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.ConnectionHandler.RegisterRoutes(api)
		appHandlers.FeedHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		// UserHandler последним: внутри его группы /users/:userId
		// не должен перехватывать статические маршруты
		appHandlers.UserHandler.RegisterRoutes(api)
	}
}
