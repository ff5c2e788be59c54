package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/services"
	"github.com/meridian/campusops/internal/middleware"
	"github.com/meridian/campusops/internal/pkg/helpers"
)

// ApplicationController handles admissions application operations
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// CreateApplication records an incoming admissions application
// @Summary Create an application
// @Description Records a new admissions application in pending state
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application information"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Campus or program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid application data", err)
		return
	}

	desiredStart, err := helpers.ParseDate(req.DesiredStart)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid desired start date")
		errorDetail = errorDetail.WithDetails("desiredStart must be formatted YYYY-MM-DD")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	app := &models.Application{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		CampusID:     req.CampusID,
		ProgramID:    req.ProgramID,
		ScheduleID:   req.ScheduleID,
		DesiredStart: desiredStart,
	}

	if err := c.applicationService.Create(ctx, app); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      app,
		Timestamp: time.Now(),
	})
}

// GetApplicationByID retrieves an application by ID
// @Summary Get application by ID
// @Description Retrieves a specific admissions application
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplicationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	app, err := c.applicationService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      app,
		Timestamp: time.Now(),
	})
}

// GetAllApplications lists applications with optional status filter
// @Summary List applications
// @Description Retrieves applications, optionally filtered by decision status
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (PENDING, ACCEPTED, DENIED)"
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) GetAllApplications(ctx *gin.Context) {
	status := models.ApplicationStatus(ctx.Query("status"))

	apps, err := c.applicationService.List(ctx, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      apps,
		Timestamp: time.Now(),
	})
}

// ReviewApplication accepts or denies a pending application
// @Summary Review an application
// @Description Accepts or denies a pending application. Accepting enrolls the applicant as an active student; denying requires a reason.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param request body dto.ReviewApplicationRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Application accepted, student enrolled"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Application denied"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing denial reason"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/review [post]
func (c *ApplicationController) ReviewApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid review data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	if req.Decision == "accept" {
		student, err := c.applicationService.Accept(ctx, id, userID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.APIResponse{
			Data:      student,
			Timestamp: time.Now(),
		})
		return
	}

	if err := c.applicationService.Deny(ctx, id, userID, req.Reason); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Application denied"},
		Timestamp: time.Now(),
	})
}

// SendNurtureStep sends a nurture email for a pending application
// @Summary Send a nurture email
// @Description Sends the numbered nurture-sequence email to a pending applicant
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param step query int true "Nurture step number"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Nurture email sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 409 {object} dto.ErrorResponse "Application already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id}/nurture [post]
func (c *ApplicationController) SendNurtureStep(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	step, err := strconv.Atoi(ctx.DefaultQuery("step", "1"))
	if err != nil || step < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid nurture step")
		errorDetail = errorDetail.WithDetails("step must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.applicationService.SendNurtureStep(ctx, id, step); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Nurture email sent"},
		Timestamp: time.Now(),
	})
}
