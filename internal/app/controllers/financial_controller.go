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

// FinancialController handles aid, disbursement and ledger operations
type FinancialController struct {
	financialService *services.FinancialService
}

// NewFinancialController creates a new FinancialController
func NewFinancialController(financialService *services.FinancialService) *FinancialController {
	return &FinancialController{
		financialService: financialService,
	}
}

// UpsertVerification records or updates a verification record
// @Summary Upsert aid verification
// @Description Records or updates the financial aid verification record for a student and academic year
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VerificationRequest true "Verification information"
// @Success 200 {object} dto.APIResponse{data=models.FinancialAidRecord} "Verification recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/verifications [put]
func (c *FinancialController) UpsertVerification(ctx *gin.Context) {
	var req dto.VerificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid verification data", err)
		return
	}

	rec := &models.FinancialAidRecord{
		StudentID:            req.StudentID,
		AcademicYear:         req.AcademicYear,
		VerificationRequired: req.VerificationRequired,
		VerificationStatus:   req.VerificationStatus,
		IsirReceived:         req.IsirReceived,
	}

	if err := c.financialService.UpsertVerification(ctx, rec); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rec,
		Timestamp: time.Now(),
	})
}

// GetLatestVerification retrieves the latest verification record
// @Summary Get latest aid verification
// @Description Retrieves the most recent academic year's verification record for a student
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.FinancialAidRecord} "Verification retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/verifications/{studentId} [get]
func (c *FinancialController) GetLatestVerification(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	rec, err := c.financialService.GetLatestVerification(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rec,
		Timestamp: time.Now(),
	})
}

// CreateAward records a financial aid award
// @Summary Create an aid award
// @Description Records a financial aid award for a student
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAwardRequest true "Award information"
// @Success 201 {object} dto.APIResponse{data=models.FinancialAidAward} "Award created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/awards [post]
func (c *FinancialController) CreateAward(ctx *gin.Context) {
	var req dto.CreateAwardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid award data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	award := &models.FinancialAidAward{
		StudentID:    req.StudentID,
		AcademicYear: req.AcademicYear,
		Source:       req.Source,
		Amount:       req.Amount,
		CreatedBy:    userID,
	}

	if err := c.financialService.CreateAward(ctx, award); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      award,
		Timestamp: time.Now(),
	})
}

// ScheduleDisbursement schedules an aid release
// @Summary Schedule a disbursement
// @Description Schedules an aid disbursement against an existing award
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ScheduleDisbursementRequest true "Disbursement information"
// @Success 201 {object} dto.APIResponse{data=models.Disbursement} "Disbursement scheduled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Award not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/disbursements [post]
func (c *FinancialController) ScheduleDisbursement(ctx *gin.Context) {
	var req dto.ScheduleDisbursementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid disbursement data", err)
		return
	}

	scheduledDate, err := helpers.ParseDate(req.ScheduledDate)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scheduled date")
		errorDetail = errorDetail.WithDetails("scheduledDate must be formatted YYYY-MM-DD")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	d := &models.Disbursement{
		AwardID:       req.AwardID,
		Amount:        req.Amount,
		ScheduledDate: scheduledDate,
	}

	if err := c.financialService.ScheduleDisbursement(ctx, d); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      d,
		Timestamp: time.Now(),
	})
}

// ReleaseDisbursement releases a scheduled disbursement
// @Summary Release a disbursement
// @Description Releases a scheduled disbursement, posting the aid to the student account and sending a notification email
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Param id path int true "Disbursement ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Disbursement released"
// @Failure 400 {object} dto.ErrorResponse "Invalid disbursement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Disbursement not found"
// @Failure 409 {object} dto.ErrorResponse "Disbursement is not scheduled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/disbursements/{id}/release [post]
func (c *FinancialController) ReleaseDisbursement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	if err := c.financialService.ReleaseDisbursement(ctx, id, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Disbursement released"},
		Timestamp: time.Now(),
	})
}

// BatchRelease releases a set of scheduled disbursements
// @Summary Batch-release disbursements
// @Description Releases the given disbursements, best-effort: each ID succeeds or fails independently and the tally is returned
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchReleaseRequest true "Disbursement IDs"
// @Success 200 {object} dto.APIResponse{data=dto.BulkResultResponse} "Batch result"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/disbursements/batch-release [post]
func (c *FinancialController) BatchRelease(ctx *gin.Context) {
	var req dto.BatchReleaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid batch release data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	result, err := c.financialService.BatchRelease(ctx, req.DisbursementIDs, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// PostCharge posts a charge to the student account
// @Summary Post a charge
// @Description Posts a charge row to the student's ledger
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LedgerEntryRequest true "Charge information"
// @Success 201 {object} dto.APIResponse{data=models.LedgerEntry} "Charge posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/ledger/charges [post]
func (c *FinancialController) PostCharge(ctx *gin.Context) {
	c.postLedgerEntry(ctx, models.LedgerCharge)
}

// PostPayment posts a payment to the student account
// @Summary Post a payment
// @Description Posts a payment row to the student's ledger and sends a confirmation email
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LedgerEntryRequest true "Payment information"
// @Success 201 {object} dto.APIResponse{data=models.LedgerEntry} "Payment posted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/ledger/payments [post]
func (c *FinancialController) PostPayment(ctx *gin.Context) {
	c.postLedgerEntry(ctx, models.LedgerPayment)
}

func (c *FinancialController) postLedgerEntry(ctx *gin.Context, kind string) {
	var req dto.LedgerEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid ledger entry data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	entry := &models.LedgerEntry{
		StudentID:   req.StudentID,
		Description: req.Description,
		Amount:      req.Amount,
		Method:      req.Method,
		CreatedBy:   userID,
	}

	var err error
	if kind == models.LedgerCharge {
		err = c.financialService.PostCharge(ctx, entry)
	} else {
		err = c.financialService.PostPayment(ctx, entry)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      entry,
		Timestamp: time.Now(),
	})
}

// VoidLedgerEntry soft-voids a ledger entry
// @Summary Void a ledger entry
// @Description Soft-voids a ledger entry. The row stays in the ledger for audit purposes but drops out of balance recomputation.
// @Tags financial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ledger entry ID"
// @Param request body dto.VoidLedgerEntryRequest true "Void reason"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Entry voided"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Ledger entry not found"
// @Failure 409 {object} dto.ErrorResponse "Entry already voided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/ledger/{id}/void [post]
func (c *FinancialController) VoidLedgerEntry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.VoidLedgerEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid void data", err)
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)

	if err := c.financialService.VoidLedgerEntry(ctx, id, req.Reason, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Ledger entry voided"},
		Timestamp: time.Now(),
	})
}

// GetLedger retrieves a student's full ledger
// @Summary Get student ledger
// @Description Retrieves every ledger row for a student, voided rows included, oldest first
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.LedgerEntry} "Ledger retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/ledger/students/{studentId} [get]
func (c *FinancialController) GetLedger(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	entries, err := c.financialService.GetLedger(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}

// GetBalance recomputes a student's account balance
// @Summary Get account balance
// @Description Recomputes the student's balance from non-voided ledger rows and released disbursements
// @Tags financial
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.AccountBalance} "Balance computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /financial/balance/{studentId} [get]
func (c *FinancialController) GetBalance(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	balance, err := c.financialService.GetBalance(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      balance,
		Timestamp: time.Now(),
	})
}
