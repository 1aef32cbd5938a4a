package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/internal/middleware"
	"github.com/ecolake/ecolake-backend-go/internal/repository"
	"github.com/ecolake/ecolake-backend-go/internal/service"
	"github.com/ecolake/ecolake-backend-go/pkg/response"
)

// RewardHandler handles HTTP requests for the rewards marketplace
type RewardHandler struct {
	service *service.RewardService
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(service *service.RewardService) *RewardHandler {
	return &RewardHandler{service: service}
}

// Catalog handles GET /api/v1/rewards
func (h *RewardHandler) Catalog(c *gin.Context) {
	rewards, err := h.service.Catalog()
	if err != nil {
		response.InternalError(c, "Failed to list rewards", err)
		return
	}

	response.Success(c, rewards)
}

// Redeem handles POST /api/v1/rewards/:id/redeem
func (h *RewardHandler) Redeem(c *gin.Context) {
	redemption, err := h.service.Redeem(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			response.NotFound(c, "Reward not found")
		case errors.Is(err, repository.ErrOutOfStock):
			response.Error(c, http.StatusConflict, "Reward is out of stock", err)
		case errors.Is(err, repository.ErrInsufficientPoints):
			response.Error(c, http.StatusConflict, "Not enough points", err)
		default:
			response.InternalError(c, "Failed to redeem reward", err)
		}
		return
	}

	c.JSON(http.StatusCreated, response.Response{
		Code:    0,
		Message: "success",
		Data:    redemption,
	})
}
