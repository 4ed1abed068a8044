package handlers

import (
	"net/http"

	"linkup_backend/internal/apperrors"
	"linkup_backend/internal/middleware"
	"linkup_backend/internal/services"
	"linkup_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.GetMe)
		users.PUT("/me", h.UpdateMe)

		// Регистрируется последним: статические маршруты группы
		// имеют приоритет над :userId
		users.GET("/:userId", h.GetUser)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// GetUser - публичный профиль: 400 на невалидный идентификатор,
// 404 если пользователя нет
func (h *UserHandler) GetUser(c *gin.Context) {
	targetID := c.Param("userId")
	if _, err := uuid.Parse(targetID); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid user ID format"))
		return
	}

	profile, err := h.userService.GetProfile(targetID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
