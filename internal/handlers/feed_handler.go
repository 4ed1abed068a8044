package handlers

import (
	"net/http"

	"linkup_backend/internal/middleware"
	"linkup_backend/internal/repositories"
	"linkup_backend/internal/services"
	"linkup_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	*BaseHandler
	feedService services.FeedService
	userRepo    repositories.UserRepository
}

func NewFeedHandler(base *BaseHandler, feedService services.FeedService, userRepo repositories.UserRepository) *FeedHandler {
	return &FeedHandler{
		BaseHandler: base,
		feedService: feedService,
		userRepo:    userRepo,
	}
}

func (h *FeedHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.CompleteProfileMiddleware(h.userRepo))
	{
		users.GET("/feed", h.GetFeed)
	}
}

func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.FeedQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	result, err := h.feedService.Feed(userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
