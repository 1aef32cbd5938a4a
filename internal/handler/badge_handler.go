package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/internal/middleware"
	"github.com/ecolake/ecolake-backend-go/internal/service"
	"github.com/ecolake/ecolake-backend-go/pkg/response"
)

// BadgeHandler handles HTTP requests for badges
type BadgeHandler struct {
	service *service.BadgeService
}

// NewBadgeHandler creates a new badge handler
func NewBadgeHandler(service *service.BadgeService) *BadgeHandler {
	return &BadgeHandler{service: service}
}

// Catalog handles GET /api/v1/badges
func (h *BadgeHandler) Catalog(c *gin.Context) {
	badges, err := h.service.Catalog()
	if err != nil {
		response.InternalError(c, "Failed to list badges", err)
		return
	}

	response.Success(c, badges)
}

// MyBadges handles GET /api/v1/users/me/badges
func (h *BadgeHandler) MyBadges(c *gin.Context) {
	badges, err := h.service.UserBadges(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, "Failed to list earned badges", err)
		return
	}

	response.Success(c, badges)
}
