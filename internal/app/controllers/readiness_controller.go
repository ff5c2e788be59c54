package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/services"
	"github.com/meridian/campusops/internal/middleware"
)

// ReadinessController handles audit-readiness scoring
type ReadinessController struct {
	readinessService *services.ReadinessService
}

// NewReadinessController creates a new ReadinessController
func NewReadinessController(readinessService *services.ReadinessService) *ReadinessController {
	return &ReadinessController{
		readinessService: readinessService,
	}
}

// GetStudentReadiness scores one student
// @Summary Score a student's audit readiness
// @Description Computes the weighted composite readiness score for one student: documents, attendance pace, SAP standing and aid verification
// @Tags readiness
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentReadinessResponse} "Score computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /readiness/students/{studentId} [get]
func (c *ReadinessController) GetStudentReadiness(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	score, err := c.readinessService.ScoreStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      score,
		Timestamp: time.Now(),
	})
}

// GetCohortReadiness scores the active cohort
// @Summary Score the cohort's audit readiness
// @Description Scores every active student, optionally filtered by campus and program, and buckets the results
// @Tags readiness
// @Produce json
// @Security BearerAuth
// @Param campusId query int false "Filter by campus ID"
// @Param programId query int false "Filter by program ID"
// @Success 200 {object} dto.APIResponse{data=dto.CohortReadinessResponse} "Cohort scored"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /readiness/cohort [get]
func (c *ReadinessController) GetCohortReadiness(ctx *gin.Context) {
	campusID := queryID(ctx, "campusId")
	programID := queryID(ctx, "programId")

	result, err := c.readinessService.ScoreCohort(ctx, campusID, programID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
