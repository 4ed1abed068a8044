package handlers

import (
	"net/http"

	"linkup_backend/internal/middleware"
	"linkup_backend/internal/repositories"
	"linkup_backend/internal/services"
	"linkup_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	*BaseHandler
	connectionService services.ConnectionService
	userRepo          repositories.UserRepository
}

func NewConnectionHandler(base *BaseHandler, connectionService services.ConnectionService, userRepo repositories.UserRepository) *ConnectionHandler {
	return &ConnectionHandler{
		BaseHandler:       base,
		connectionService: connectionService,
		userRepo:          userRepo,
	}
}

func (h *ConnectionHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		// Свайпы и связи требуют заполненного профиля
		gated := users.Group("")
		gated.Use(middleware.CompleteProfileMiddleware(h.userRepo))
		{
			gated.POST("/swipe-left", h.SwipeLeft)
			gated.POST("/swipe-right", h.SwipeRight)
			gated.GET("/connections", h.GetConnections)
		}

		users.GET("/requests/received", h.GetReceivedRequests)
		users.GET("/requests/sent", h.GetSentRequests)
	}
}

func (h *ConnectionHandler) SwipeLeft(c *gin.Context) {
	h.swipe(c, services.SwipeLeft)
}

func (h *ConnectionHandler) SwipeRight(c *gin.Context) {
	h.swipe(c, services.SwipeRight)
}

func (h *ConnectionHandler) swipe(c *gin.Context, intent services.SwipeIntent) {
	actorID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SwipeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	result, err := h.connectionService.RegisterSignal(c.Request.Context(), actorID, req.ToUserID, intent)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	message := swipeMessage(intent, result)

	if intent == services.SwipeRight {
		c.JSON(http.StatusOK, gin.H{
			"message": message,
			"data":    result.Request,
			"matched": result.Matched,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    result.Request,
	})
}

func swipeMessage(intent services.SwipeIntent, result *dto.SwipeResult) string {
	switch {
	case result.Matched && intent == services.SwipeRight && !result.AlreadySwiped:
		return "It's a match!"
	case result.AlreadySwiped:
		return "Swipe already recorded"
	case intent == services.SwipeLeft:
		return "User skipped"
	default:
		return "Interest recorded"
	}
}

func (h *ConnectionHandler) GetReceivedRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requests, err := h.connectionService.GetReceivedRequests(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

func (h *ConnectionHandler) GetSentRequests(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	requests, err := h.connectionService.GetSentRequests(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    len(requests),
	})
}

func (h *ConnectionHandler) GetConnections(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	connections, err := h.connectionService.GetConnections(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connections": connections,
		"total":       len(connections),
	})
}
