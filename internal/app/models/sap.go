package models

import "time"

// SapEvaluation defines an append-only SAP checkpoint record based on the
// 'sap_evaluations' table. Rows are immutable once written; only the most
// recent evaluation (by date) feeds the readiness scorer.
type SapEvaluation struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	StudentID      int64     `json:"studentId" db:"student_id"`
	Status         SapStatus `json:"status" db:"status" example:"SATISFACTORY"`
	CompletionRate float64   `json:"completionRate" db:"completion_rate" example:"93.5"`
	HoursAttempted float64   `json:"hoursAttempted" db:"hours_attempted"`
	HoursCompleted float64   `json:"hoursCompleted" db:"hours_completed"`
	Notes          string    `json:"notes" db:"notes"`
	EvaluatedBy    int64     `json:"evaluatedBy" db:"evaluated_by"`
	EvaluatedAt    time.Time `json:"evaluatedAt" db:"evaluated_at"`
}
