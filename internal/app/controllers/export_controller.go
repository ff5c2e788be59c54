package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/services"
	"github.com/meridian/campusops/internal/middleware"
)

// ExportController handles audit packet exports
type ExportController struct {
	exportService *services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService *services.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportStudentPacket exports a single-student audit packet
// @Summary Export a student audit packet
// @Description Assembles the student's records into CSV extracts and streams them as a zip archive. Falls back to a JSON file list when zipping fails.
// @Tags exports
// @Produce application/zip
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {file} binary "Zip archive of CSV files"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exports/students/{studentId} [get]
func (c *ExportController) ExportStudentPacket(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	packet, err := c.exportService.StudentPacket(ctx, studentID, &userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	writePacket(ctx, packet)
}

// ExportCohortPacket exports the school- or filter-wide audit packet
// @Summary Export a cohort audit packet
// @Description Assembles records of every active student, optionally filtered by campus and program, into CSV extracts streamed as a zip archive
// @Tags exports
// @Produce application/zip
// @Security BearerAuth
// @Param campusId query int false "Filter by campus ID"
// @Param programId query int false "Filter by program ID"
// @Success 200 {file} binary "Zip archive of CSV files"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exports/cohort [get]
func (c *ExportController) ExportCohortPacket(ctx *gin.Context) {
	campusID := queryID(ctx, "campusId")
	programID := queryID(ctx, "programId")

	userID, _ := middleware.CurrentUserID(ctx)

	packet, err := c.exportService.CohortPacket(ctx, campusID, programID, &userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	writePacket(ctx, packet)
}

// writePacket streams the packet: the zip when bundling succeeded, the lone
// CSV when there is only one file, otherwise the files as JSON.
func writePacket(ctx *gin.Context, packet *services.Packet) {
	if packet.Zipped != nil {
		ctx.Header("Content-Disposition", `attachment; filename="`+packet.ZipName+`"`)
		ctx.Data(http.StatusOK, "application/zip", packet.Zipped)
		return
	}

	if len(packet.Files) == 1 {
		f := packet.Files[0]
		ctx.Header("Content-Disposition", `attachment; filename="`+f.Name+`"`)
		ctx.Data(http.StatusOK, "text/csv", []byte(f.Content))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      packet.Files,
		Timestamp: time.Now(),
	})
}
