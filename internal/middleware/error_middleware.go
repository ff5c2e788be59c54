package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/pkg/apperrors"
)

// HandleAPIError maps service-layer errors to HTTP responses. Controllers
// delegate every non-binding error here so status codes and error codes
// stay consistent across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Not found
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrSessionNotFound),
		errors.Is(err, apperrors.ErrCorrectionNotFound),
		errors.Is(err, apperrors.ErrDocumentNotFound),
		errors.Is(err, apperrors.ErrDocumentTypeNotFound),
		errors.Is(err, apperrors.ErrAwardNotFound),
		errors.Is(err, apperrors.ErrDisbursementNotFound),
		errors.Is(err, apperrors.ErrLedgerEntryNotFound),
		errors.Is(err, apperrors.ErrSapEvaluationNotFound),
		errors.Is(err, apperrors.ErrCampusNotFound),
		errors.Is(err, apperrors.ErrProgramNotFound),
		errors.Is(err, apperrors.ErrScheduleNotFound):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		})

	// Authentication
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Account is disabled"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		})

	// Authorization
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})

	// Conflicts
	case errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrStudentNumberAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()),
		})
	case errors.Is(err, apperrors.ErrApplicationAlreadyDecided),
		errors.Is(err, apperrors.ErrSessionAlreadyOpen),
		errors.Is(err, apperrors.ErrSessionNotOpen),
		errors.Is(err, apperrors.ErrCorrectionNotPending),
		errors.Is(err, apperrors.ErrLedgerEntryVoided),
		errors.Is(err, apperrors.ErrInvalidStudentStatus),
		errors.Is(err, apperrors.ErrCampusHasStudents),
		errors.Is(err, apperrors.ErrProgramHasStudents),
		errors.Is(err, apperrors.ErrDocumentTypeInUse),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error()),
		})

	// Validation
	case errors.Is(err, apperrors.ErrDenialReasonRequired),
		errors.Is(err, apperrors.ErrRejectionReasonRequired),
		errors.Is(err, apperrors.ErrInvalidTheorySplit),
		errors.Is(err, apperrors.ErrInvalidDocumentStatus),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})

	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
