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

// SettingsController handles campus, program, schedule and document type
// administration
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// --- Campuses ---

// CreateCampus creates a campus
// @Summary Create a campus
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Campus true "Campus information"
// @Success 201 {object} dto.APIResponse{data=models.Campus} "Campus created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Campus code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/campuses [post]
func (c *SettingsController) CreateCampus(ctx *gin.Context) {
	var campus models.Campus
	if err := ctx.ShouldBindJSON(&campus); err != nil {
		bindingError(ctx, "Invalid campus data", err)
		return
	}

	if err := c.settingsService.CreateCampus(ctx, &campus); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      campus,
		Timestamp: time.Now(),
	})
}

// GetAllCampuses lists all campuses
// @Summary List campuses
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Campus} "Campuses retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/campuses [get]
func (c *SettingsController) GetAllCampuses(ctx *gin.Context) {
	campuses, err := c.settingsService.GetAllCampuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campuses,
		Timestamp: time.Now(),
	})
}

// UpdateCampus updates a campus
// @Summary Update a campus
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campus ID"
// @Param request body models.Campus true "Updated campus information"
// @Success 200 {object} dto.APIResponse{data=models.Campus} "Campus updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Campus not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/campuses/{id} [put]
func (c *SettingsController) UpdateCampus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var campus models.Campus
	if err := ctx.ShouldBindJSON(&campus); err != nil {
		bindingError(ctx, "Invalid campus data", err)
		return
	}
	campus.ID = id

	if err := c.settingsService.UpdateCampus(ctx, &campus); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      campus,
		Timestamp: time.Now(),
	})
}

// DeleteCampus deletes a campus with no enrolled students
// @Summary Delete a campus
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campus ID"
// @Success 204 "Campus deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid campus ID"
// @Failure 404 {object} dto.ErrorResponse "Campus not found"
// @Failure 409 {object} dto.ErrorResponse "Campus has enrolled students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/campuses/{id} [delete]
func (c *SettingsController) DeleteCampus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.settingsService.DeleteCampus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// --- Programs ---

// CreateProgram creates a clock-hour program
// @Summary Create a program
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Program true "Program information"
// @Success 201 {object} dto.APIResponse{data=models.Program} "Program created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Program code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/programs [post]
func (c *SettingsController) CreateProgram(ctx *gin.Context) {
	var program models.Program
	if err := ctx.ShouldBindJSON(&program); err != nil {
		bindingError(ctx, "Invalid program data", err)
		return
	}

	if err := c.settingsService.CreateProgram(ctx, &program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// GetAllPrograms lists all programs
// @Summary List programs
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/programs [get]
func (c *SettingsController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.settingsService.GetAllPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      programs,
		Timestamp: time.Now(),
	})
}

// UpdateProgram updates a program
// @Summary Update a program
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Param request body models.Program true "Updated program information"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/programs/{id} [put]
func (c *SettingsController) UpdateProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var program models.Program
	if err := ctx.ShouldBindJSON(&program); err != nil {
		bindingError(ctx, "Invalid program data", err)
		return
	}
	program.ID = id

	if err := c.settingsService.UpdateProgram(ctx, &program); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      program,
		Timestamp: time.Now(),
	})
}

// DeleteProgram deletes a program with no enrolled students
// @Summary Delete a program
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Program ID"
// @Success 204 "Program deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 409 {object} dto.ErrorResponse "Program has enrolled students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/programs/{id} [delete]
func (c *SettingsController) DeleteProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.settingsService.DeleteProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// --- Schedules ---

// CreateSchedule creates a schedule template
// @Summary Create a schedule
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Schedule true "Schedule information"
// @Success 201 {object} dto.APIResponse{data=models.Schedule} "Schedule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/schedules [post]
func (c *SettingsController) CreateSchedule(ctx *gin.Context) {
	var schedule models.Schedule
	if err := ctx.ShouldBindJSON(&schedule); err != nil {
		bindingError(ctx, "Invalid schedule data", err)
		return
	}

	if err := c.settingsService.CreateSchedule(ctx, &schedule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// GetAllSchedules lists all schedules
// @Summary List schedules
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Schedule} "Schedules retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/schedules [get]
func (c *SettingsController) GetAllSchedules(ctx *gin.Context) {
	schedules, err := c.settingsService.GetAllSchedules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedules,
		Timestamp: time.Now(),
	})
}

// UpdateSchedule updates a schedule
// @Summary Update a schedule
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Param request body models.Schedule true "Updated schedule information"
// @Success 200 {object} dto.APIResponse{data=models.Schedule} "Schedule updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/schedules/{id} [put]
func (c *SettingsController) UpdateSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var schedule models.Schedule
	if err := ctx.ShouldBindJSON(&schedule); err != nil {
		bindingError(ctx, "Invalid schedule data", err)
		return
	}
	schedule.ID = id

	if err := c.settingsService.UpdateSchedule(ctx, &schedule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// DeleteSchedule deletes a schedule
// @Summary Delete a schedule
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID"
// @Success 204 "Schedule deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid schedule ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/schedules/{id} [delete]
func (c *SettingsController) DeleteSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.settingsService.DeleteSchedule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}

// --- Document types ---

// CreateDocumentType creates a compliance document type
// @Summary Create a document type
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DocumentType true "Document type information"
// @Success 201 {object} dto.APIResponse{data=models.DocumentType} "Document type created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/document-types [post]
func (c *SettingsController) CreateDocumentType(ctx *gin.Context) {
	var docType models.DocumentType
	if err := ctx.ShouldBindJSON(&docType); err != nil {
		bindingError(ctx, "Invalid document type data", err)
		return
	}

	if err := c.settingsService.CreateDocumentType(ctx, &docType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      docType,
		Timestamp: time.Now(),
	})
}

// GetAllDocumentTypes lists all document types
// @Summary List document types
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.DocumentType} "Document types retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/document-types [get]
func (c *SettingsController) GetAllDocumentTypes(ctx *gin.Context) {
	docTypes, err := c.settingsService.GetAllDocumentTypes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      docTypes,
		Timestamp: time.Now(),
	})
}

// UpdateDocumentType updates a document type
// @Summary Update a document type
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document type ID"
// @Param request body models.DocumentType true "Updated document type information"
// @Success 200 {object} dto.APIResponse{data=models.DocumentType} "Document type updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Document type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/document-types/{id} [put]
func (c *SettingsController) UpdateDocumentType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var docType models.DocumentType
	if err := ctx.ShouldBindJSON(&docType); err != nil {
		bindingError(ctx, "Invalid document type data", err)
		return
	}
	docType.ID = id

	if err := c.settingsService.UpdateDocumentType(ctx, &docType); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      docType,
		Timestamp: time.Now(),
	})
}

// DeleteDocumentType deletes a document type with no records
// @Summary Delete a document type
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document type ID"
// @Success 204 "Document type deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid document type ID"
// @Failure 404 {object} dto.ErrorResponse "Document type not found"
// @Failure 409 {object} dto.ErrorResponse "Document type has records"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/document-types/{id} [delete]
func (c *SettingsController) DeleteDocumentType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.settingsService.DeleteDocumentType(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusNoContent, dto.APIResponse{
		Timestamp: time.Now(),
	})
}
