package models

import "time"

// FinancialAidRecord defines a per-academic-year verification record based
// on the 'financial_aid_records' table. Only the most recent academic year
// feeds the readiness scorer.
type FinancialAidRecord struct {
	ID                   int64     `json:"id" db:"id" example:"1"`
	StudentID            int64     `json:"studentId" db:"student_id"`
	AcademicYear         string    `json:"academicYear" db:"academic_year" example:"2025-2026"`
	VerificationRequired bool      `json:"verificationRequired" db:"verification_required"`
	VerificationStatus   string    `json:"verificationStatus" db:"verification_status" example:"complete"`
	IsirReceived         bool      `json:"isirReceived" db:"isir_received"`
	CreatedAt            time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" db:"updated_at"`
}

// FinancialAidAward defines an awarded aid package based on the
// 'financial_aid_awards' table
type FinancialAidAward struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	AcademicYear string    `json:"academicYear" db:"academic_year"`
	Source       string    `json:"source" db:"source" example:"PELL"`
	Amount       float64   `json:"amount" db:"amount" example:"3698.00"`
	CreatedBy    int64     `json:"createdBy" db:"created_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Disbursement defines a scheduled aid release based on the 'disbursements' table
type Disbursement struct {
	ID            int64              `json:"id" db:"id" example:"1"`
	AwardID       int64              `json:"awardId" db:"award_id"`
	StudentID     int64              `json:"studentId" db:"student_id"`
	Amount        float64            `json:"amount" db:"amount"`
	ScheduledDate time.Time          `json:"scheduledDate" db:"scheduled_date"`
	Status        DisbursementStatus `json:"status" db:"status" example:"SCHEDULED"`
	ReleasedAt    *time.Time         `json:"releasedAt,omitempty" db:"released_at"`
	ReleasedBy    *int64             `json:"releasedBy,omitempty" db:"released_by"`
}

// LedgerEntry defines a charge or payment row on the student account.
// Entries are soft-voided, never deleted; voided rows stay for the audit
// trail and contribute zero to balance recomputation.
type LedgerEntry struct {
	ID          int64      `json:"id" db:"id" example:"1"`
	StudentID   int64      `json:"studentId" db:"student_id"`
	Kind        string     `json:"kind" db:"kind" example:"CHARGE"` // CHARGE or PAYMENT
	Description string     `json:"description" db:"description"`
	Amount      float64    `json:"amount" db:"amount" example:"250.00"`
	Method      string     `json:"method,omitempty" db:"method"`
	Voided      bool       `json:"voided" db:"voided"`
	VoidReason  *string    `json:"voidReason,omitempty" db:"void_reason"`
	VoidedBy    *int64     `json:"voidedBy,omitempty" db:"voided_by"`
	VoidedAt    *time.Time `json:"voidedAt,omitempty" db:"voided_at"`
	CreatedBy   int64      `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// Ledger entry kinds
const (
	LedgerCharge  = "CHARGE"
	LedgerPayment = "PAYMENT"
)

// AccountBalance is the recomputed running balance of a student account:
// charges minus payments minus aid posted, voided rows excluded.
type AccountBalance struct {
	StudentID      int64   `json:"studentId"`
	TotalCharges   float64 `json:"totalCharges"`
	TotalPayments  float64 `json:"totalPayments"`
	TotalAidPosted float64 `json:"totalAidPosted"`
	CurrentBalance float64 `json:"currentBalance"`
}
