package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/services"
	"github.com/meridian/campusops/internal/middleware"
	"github.com/meridian/campusops/internal/pkg/helpers"
)

// AuditController exposes the audit trail
type AuditController struct {
	auditService *services.AuditService
}

// NewAuditController creates a new AuditController
func NewAuditController(auditService *services.AuditService) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// ListAuditLog lists audit trail entries with pagination
// @Summary List audit log entries
// @Description Retrieves audit trail entries, most recent first, with optional action and student filters
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param action query string false "Filter by action"
// @Param studentId query int false "Filter by student ID"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Audit log retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /audit-log [get]
func (c *AuditController) ListAuditLog(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	action := ctx.Query("action")

	var studentID *int64
	if id := queryID(ctx, "studentId"); id > 0 {
		studentID = &id
	}

	entries, total, err := c.auditService.List(ctx, action, studentID, int(offset), limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      entries,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}
