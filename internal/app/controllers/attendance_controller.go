package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/services"
	"github.com/meridian/campusops/internal/middleware"
)

// AttendanceController handles clock-in/clock-out and correction operations
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// ClockIn opens an attendance session
// @Summary Clock a student in
// @Description Opens an attendance session for a student. A student can have at most one open session.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ClockInRequest true "Student to clock in"
// @Success 201 {object} dto.APIResponse{data=models.AttendanceSession} "Session opened"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Student already has an open session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/clock-in [post]
func (c *AttendanceController) ClockIn(ctx *gin.Context) {
	var req dto.ClockInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid clock-in data", err)
		return
	}

	session, err := c.attendanceService.ClockIn(ctx, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// ClockOut completes the student's open session
// @Summary Clock a student out
// @Description Completes the open session, splitting elapsed hours between theory and practical by the supplied percentage, and posts the hours to the student's totals
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param request body dto.ClockOutRequest true "Theory percentage (0-100, steps of 5)"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceSession} "Session completed"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or theory split"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "No open session"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/clock-out/{studentId} [post]
func (c *AttendanceController) ClockOut(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	var req dto.ClockOutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid clock-out data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	session, err := c.attendanceService.ClockOut(ctx, studentID, req.TheoryPercent, &userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// RequestCorrection records a manual attendance correction
// @Summary Request an attendance correction
// @Description Records a completed session as a correction pending approval. Hours are not posted until a different staff member approves.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CorrectionRequest true "Correction details"
// @Success 201 {object} dto.APIResponse{data=models.AttendanceSession} "Correction recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/corrections [post]
func (c *AttendanceController) RequestCorrection(ctx *gin.Context) {
	var req dto.CorrectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid correction data", err)
		return
	}

	clockIn, err := time.Parse(time.RFC3339, req.ClockIn)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid clock-in time")
		errorDetail = errorDetail.WithDetails("clockIn must be RFC3339")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	clockOut, err := time.Parse(time.RFC3339, req.ClockOut)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid clock-out time")
		errorDetail = errorDetail.WithDetails("clockOut must be RFC3339")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.attendanceService.RequestCorrection(ctx, req.StudentID, clockIn, clockOut, req.TheoryPercent, req.Note)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// ApproveCorrection approves a pending correction and posts its hours
// @Summary Approve an attendance correction
// @Description Approves a pending correction and posts its hours to the student's totals
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Correction session ID"
// @Success 200 {object} dto.APIResponse{data=models.AttendanceSession} "Correction approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid correction ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Correction not found"
// @Failure 409 {object} dto.ErrorResponse "Correction is not pending"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/corrections/{id}/approve [post]
func (c *AttendanceController) ApproveCorrection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	session, err := c.attendanceService.ApproveCorrection(ctx, id, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      session,
		Timestamp: time.Now(),
	})
}

// GetStudentSessions lists a student's attendance sessions
// @Summary List student attendance sessions
// @Description Retrieves a student's attendance sessions, most recent first
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceSession} "Sessions retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/students/{studentId} [get]
func (c *AttendanceController) GetStudentSessions(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	sessions, err := c.attendanceService.GetStudentSessions(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}

// GetPendingCorrections lists corrections awaiting approval
// @Summary List pending corrections
// @Description Retrieves attendance corrections that have not been approved yet
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceSession} "Corrections retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/corrections [get]
func (c *AttendanceController) GetPendingCorrections(ctx *gin.Context) {
	sessions, err := c.attendanceService.GetPendingCorrections(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sessions,
		Timestamp: time.Now(),
	})
}
