package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/internal/geo"
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/internal/service"
	"github.com/ecolake/ecolake-backend-go/pkg/response"
)

// LakeHandler handles HTTP requests for nearby-lake discovery
type LakeHandler struct {
	service *service.LakeService
}

// NewLakeHandler creates a new lake handler
func NewLakeHandler(service *service.LakeService) *LakeHandler {
	return &LakeHandler{service: service}
}

// NearbyLakes handles GET /api/v1/lakes/nearby
func (h *LakeHandler) NearbyLakes(c *gin.Context) {
	var query models.NearbyLakesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	coord := models.Coordinate{
		Latitude:  *query.Latitude,
		Longitude: *query.Longitude,
	}

	lakes, err := h.service.NearbyLakes(c.Request.Context(), coord, query.RadiusKm)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidArgument) {
			response.BadRequest(c, "Invalid coordinate or radius", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to resolve nearby lakes", err)
		return
	}

	response.Success(c, gin.H{
		"lakes": lakes,
		"count": len(lakes),
	})
}
