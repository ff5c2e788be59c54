package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/services"
	"github.com/meridian/campusops/internal/middleware"
)

// SapController handles satisfactory academic progress evaluations
type SapController struct {
	sapService *services.SapService
}

// NewSapController creates a new SapController
func NewSapController(sapService *services.SapService) *SapController {
	return &SapController{
		sapService: sapService,
	}
}

// Evaluate appends a SAP checkpoint for a student
// @Summary Record a SAP evaluation
// @Description Appends an immutable SAP checkpoint and updates the student's current SAP status. Non-satisfactory statuses trigger an alert email.
// @Tags sap
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SapEvaluationRequest true "Evaluation details"
// @Success 201 {object} dto.APIResponse{data=models.SapEvaluation} "Evaluation recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sap/evaluations [post]
func (c *SapController) Evaluate(ctx *gin.Context) {
	var req dto.SapEvaluationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid evaluation data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	eval := &models.SapEvaluation{
		StudentID:      req.StudentID,
		Status:         models.SapStatus(req.Status),
		CompletionRate: req.CompletionRate,
		HoursAttempted: req.HoursAttempted,
		HoursCompleted: req.HoursCompleted,
		Notes:          req.Notes,
		EvaluatedBy:    userID,
	}

	if err := c.sapService.Evaluate(ctx, eval); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      eval,
		Timestamp: time.Now(),
	})
}

// GetHistory lists a student's SAP evaluations
// @Summary Get SAP history
// @Description Retrieves all SAP checkpoints for a student, most recent first
// @Tags sap
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.SapEvaluation} "History retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sap/students/{studentId} [get]
func (c *SapController) GetHistory(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	evals, err := c.sapService.GetHistory(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      evals,
		Timestamp: time.Now(),
	})
}

// GetLatest retrieves a student's most recent SAP evaluation
// @Summary Get latest SAP evaluation
// @Description Retrieves the most recent SAP checkpoint for a student
// @Tags sap
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.SapEvaluation} "Evaluation retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "No evaluation found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sap/students/{studentId}/latest [get]
func (c *SapController) GetLatest(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	eval, err := c.sapService.GetLatest(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      eval,
		Timestamp: time.Now(),
	})
}
