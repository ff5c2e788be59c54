package dto

// CreateAwardRequest records a financial aid award
type CreateAwardRequest struct {
	StudentID    int64   `json:"studentId" binding:"required,min=1"`
	AcademicYear string  `json:"academicYear" binding:"required"`
	Source       string  `json:"source" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
}

// ScheduleDisbursementRequest schedules an aid release against an award
type ScheduleDisbursementRequest struct {
	AwardID       int64   `json:"awardId" binding:"required,min=1"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	ScheduledDate string  `json:"scheduledDate" binding:"required"` // YYYY-MM-DD
}

// BatchReleaseRequest releases a set of scheduled disbursements.
// Best-effort: each id succeeds or fails independently.
type BatchReleaseRequest struct {
	DisbursementIDs []int64 `json:"disbursementIds" binding:"required,min=1"`
}

// LedgerEntryRequest posts a charge or payment to the student account
type LedgerEntryRequest struct {
	StudentID   int64   `json:"studentId" binding:"required,min=1"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Method      string  `json:"method"`
}

// VoidLedgerEntryRequest soft-voids a ledger entry; the row stays for the
// audit trail and drops out of balance recomputation.
type VoidLedgerEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// VerificationRequest upserts a financial aid verification record
type VerificationRequest struct {
	StudentID            int64  `json:"studentId" binding:"required,min=1"`
	AcademicYear         string `json:"academicYear" binding:"required"`
	VerificationRequired bool   `json:"verificationRequired"`
	VerificationStatus   string `json:"verificationStatus"`
	IsirReceived         bool   `json:"isirReceived"`
}

// SapEvaluationRequest appends a SAP checkpoint for a student
type SapEvaluationRequest struct {
	StudentID      int64   `json:"studentId" binding:"required,min=1"`
	Status         string  `json:"status" binding:"required"`
	CompletionRate float64 `json:"completionRate" binding:"min=0,max=100"`
	HoursAttempted float64 `json:"hoursAttempted" binding:"min=0"`
	HoursCompleted float64 `json:"hoursCompleted" binding:"min=0"`
	Notes          string  `json:"notes"`
}
