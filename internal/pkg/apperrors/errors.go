package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound            = errors.New("student not found")
	ErrStudentNumberAlreadyExists = errors.New("student number already exists")
	ErrInvalidStudentStatus       = errors.New("invalid student status transition")
)

// Admissions errors
var (
	ErrApplicationNotFound       = errors.New("application not found")
	ErrApplicationAlreadyDecided = errors.New("application has already been decided")
	ErrDenialReasonRequired      = errors.New("reason required for denial")
)

// Attendance errors
var (
	ErrSessionNotFound      = errors.New("attendance session not found")
	ErrSessionAlreadyOpen   = errors.New("student already has an open attendance session")
	ErrSessionNotOpen       = errors.New("attendance session is not open")
	ErrInvalidTheorySplit   = errors.New("theory percentage must be between 0 and 100 in steps of 5")
	ErrCorrectionNotFound   = errors.New("attendance correction not found")
	ErrCorrectionNotPending = errors.New("attendance correction is not pending")
)

// Document errors
var (
	ErrDocumentNotFound        = errors.New("document record not found")
	ErrDocumentTypeNotFound    = errors.New("document type not found")
	ErrRejectionReasonRequired = errors.New("reason required for rejection")
	ErrInvalidDocumentStatus   = errors.New("invalid document status")
)

// Financial errors
var (
	ErrAwardNotFound        = errors.New("financial aid award not found")
	ErrDisbursementNotFound = errors.New("disbursement not found")
	ErrLedgerEntryNotFound  = errors.New("ledger entry not found")
	ErrLedgerEntryVoided    = errors.New("ledger entry is already voided")
	ErrInvalidAmount        = errors.New("amount must be positive")
)

// SAP errors
var (
	ErrSapEvaluationNotFound = errors.New("SAP evaluation not found")
)

// Settings errors
var (
	ErrCampusNotFound     = errors.New("campus not found")
	ErrProgramNotFound    = errors.New("program not found")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrCampusHasStudents  = errors.New("campus has enrolled students and cannot be deleted")
	ErrProgramHasStudents = errors.New("program has enrolled students and cannot be deleted")
	ErrDocumentTypeInUse  = errors.New("document type has records and cannot be deleted")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
