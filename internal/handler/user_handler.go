package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/internal/middleware"
	"github.com/ecolake/ecolake-backend-go/internal/service"
	"github.com/ecolake/ecolake-backend-go/pkg/response"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	service *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.service.Profile(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "Failed to get profile", err)
		return
	}
	if profile == nil {
		response.NotFound(c, "Profile not found")
		return
	}

	response.Success(c, profile)
}

type syncProfileRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name"`
}

// SyncMe handles PUT /api/v1/users/me
func (h *UserHandler) SyncMe(c *gin.Context) {
	var req syncProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid profile payload", err)
		return
	}

	if err := h.service.SyncProfile(middleware.CurrentUserID(c), req.Email, req.DisplayName); err != nil {
		response.InternalError(c, "Failed to sync profile", err)
		return
	}

	response.Success(c, nil)
}
