package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/services"
	"github.com/meridian/campusops/internal/middleware"
	"github.com/meridian/campusops/internal/pkg/helpers"
)

// DocumentController handles compliance document operations
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

// UploadDocument records an uploaded compliance document
// @Summary Upload a document record
// @Description Records a newly uploaded compliance document. The expiry date defaults from the document type when omitted.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UploadDocumentRequest true "Document information"
// @Success 201 {object} dto.APIResponse{data=models.DocumentRecord} "Document recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or document type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	var req dto.UploadDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid document data", err)
		return
	}

	doc := &models.DocumentRecord{
		StudentID:      req.StudentID,
		DocumentTypeID: req.DocumentTypeID,
		FileName:       req.FileName,
	}

	if req.ExpiresAt != nil {
		expires, err := helpers.ParseDate(*req.ExpiresAt)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid expiry date")
			errorDetail = errorDetail.WithDetails("expiresAt must be formatted YYYY-MM-DD")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		doc.ExpiresAt = &expires
	}

	if err := c.documentService.Upload(ctx, doc); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      doc,
		Timestamp: time.Now(),
	})
}

// GetStudentDocuments lists a student's document records
// @Summary List student documents
// @Description Retrieves a student's compliance document records with type references resolved
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.DocumentRecord} "Documents retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/students/{studentId} [get]
func (c *DocumentController) GetStudentDocuments(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	docs, err := c.documentService.GetStudentDocuments(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      docs,
		Timestamp: time.Now(),
	})
}

// ReviewDocument approves or rejects a document record
// @Summary Review a document
// @Description Approves or rejects a document record. Rejections require a reason and trigger a notification email.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document record ID"
// @Param request body dto.ReviewDocumentRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Review recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or missing rejection reason"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/{id}/review [post]
func (c *DocumentController) ReviewDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewDocumentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid review data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	var err error
	if req.Decision == "approve" {
		err = c.documentService.Approve(ctx, id, userID)
	} else {
		err = c.documentService.Reject(ctx, id, userID, req.Reason)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Review recorded"},
		Timestamp: time.Now(),
	})
}

// BulkUpdateStatus moves a set of document records to a status
// @Summary Bulk-update document status
// @Description Moves the given document records to a status, best-effort: each ID succeeds or fails independently and the tally is returned
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkDocumentStatusRequest true "Document IDs and target status"
// @Success 200 {object} dto.APIResponse{data=dto.BulkResultResponse} "Bulk result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/bulk-status [post]
func (c *DocumentController) BulkUpdateStatus(ctx *gin.Context) {
	var req dto.BulkDocumentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid bulk update data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	result, err := c.documentService.BulkUpdateStatus(ctx, req.DocumentIDs, models.DocumentStatus(req.Status), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// RequestDocument emails a student asking for a document
// @Summary Request a document from a student
// @Description Sends the student an email asking for the named document type
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param typeId path int true "Document type ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Request sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid IDs"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or document type not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /documents/students/{studentId}/request/{typeId} [post]
func (c *DocumentController) RequestDocument(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}
	typeID, ok := parseIDParam(ctx, "typeId")
	if !ok {
		return
	}

	if err := c.documentService.RequestDocument(ctx, studentID, typeID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Document request sent"},
		Timestamp: time.Now(),
	})
}
