package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/internal/geo"
	"github.com/ecolake/ecolake-backend-go/internal/middleware"
	"github.com/ecolake/ecolake-backend-go/internal/models"
	"github.com/ecolake/ecolake-backend-go/internal/service"
	"github.com/ecolake/ecolake-backend-go/pkg/response"
)

// ReportHandler handles HTTP requests for incident reports
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// SubmitReport handles POST /api/v1/reports
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req models.SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid report payload", err)
		return
	}

	result, err := h.service.SubmitReport(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidArgument) {
			response.BadRequest(c, "Invalid report data", err)
			return
		}
		response.InternalError(c, "Failed to submit report", err)
		return
	}

	c.JSON(http.StatusCreated, response.Response{
		Code:    0,
		Message: "success",
		Data:    result,
	})
}

// ListReports handles GET /api/v1/reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	if c.Query("mine") == "true" {
		filter.UserID = middleware.CurrentUserID(c)
	}

	reports, total, err := h.service.ListReports(filter)
	if err != nil {
		response.InternalError(c, "Failed to list reports", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	response.Success(c, gin.H{
		"data":       reports,
		"total":      total,
		"page":       filter.Page,
		"pageSize":   filter.PageSize,
		"totalPages": totalPages,
	})
}

// GetReport handles GET /api/v1/reports/:id
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, err := h.service.GetReport(c.Param("id"))
	if err != nil {
		response.InternalError(c, "Failed to get report", err)
		return
	}
	if report == nil {
		response.NotFound(c, "Report not found")
		return
	}

	response.Success(c, report)
}

// UpdateStatus handles PATCH /api/v1/reports/:id/status
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid status payload", err)
		return
	}

	if err := h.service.UpdateStatus(c.Param("id"), req.Status); err != nil {
		if errors.Is(err, geo.ErrInvalidArgument) {
			response.BadRequest(c, "Invalid status transition", err)
			return
		}
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalError(c, "Failed to update report status", err)
		return
	}

	response.Success(c, nil)
}

// CompleteCleanup handles POST /api/v1/reports/:id/cleanup
func (h *ReportHandler) CompleteCleanup(c *gin.Context) {
	result, err := h.service.CompleteCleanup(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.NotFound(c, "Report not found or cleanup already completed")
			return
		}
		response.InternalError(c, "Failed to complete cleanup", err)
		return
	}

	response.Success(c, result)
}
