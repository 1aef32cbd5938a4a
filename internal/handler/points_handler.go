package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/internal/middleware"
	"github.com/ecolake/ecolake-backend-go/internal/service"
	"github.com/ecolake/ecolake-backend-go/pkg/response"
)

// PointsHandler handles HTTP requests for the points ledger
type PointsHandler struct {
	service *service.PointsService
}

// NewPointsHandler creates a new points handler
func NewPointsHandler(service *service.PointsService) *PointsHandler {
	return &PointsHandler{service: service}
}

// MyPoints handles GET /api/v1/points/me
func (h *PointsHandler) MyPoints(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	balance, err := h.service.Balance(userID)
	if err != nil {
		response.InternalError(c, "Failed to get point balance", err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	history, err := h.service.History(userID, limit)
	if err != nil {
		response.InternalError(c, "Failed to get points history", err)
		return
	}

	response.Success(c, gin.H{
		"balance": balance,
		"history": history,
	})
}

// Leaderboard handles GET /api/v1/points/leaderboard
func (h *PointsHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	entries, err := h.service.Leaderboard(limit)
	if err != nil {
		response.InternalError(c, "Failed to get leaderboard", err)
		return
	}

	response.Success(c, entries)
}
