package models

import (
	"encoding/json"
	"time"
)

// AuditLogEntry defines an audit trail row based on the 'audit_log' table.
// Writes are best-effort; the primary operation never waits on them.
type AuditLogEntry struct {
	ID        int64           `json:"id" db:"id" example:"1"`
	UserID    *int64          `json:"userId,omitempty" db:"user_id"`
	Action    string          `json:"action" db:"action" example:"EXPORT_AUDIT_PACKET"`
	StudentID *int64          `json:"studentId,omitempty" db:"student_id"`
	Target    string          `json:"target" db:"target" example:"school-wide"`
	Metadata  json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// Audit actions recorded by the workflows
const (
	AuditActionExportPacket      = "EXPORT_AUDIT_PACKET"
	AuditActionApplicationReview = "APPLICATION_REVIEW"
	AuditActionEnrollment        = "ENROLLMENT"
	AuditActionDocumentReview    = "DOCUMENT_REVIEW"
	AuditActionAttendancePost    = "ATTENDANCE_POST"
	AuditActionSapEvaluation     = "SAP_EVALUATION"
	AuditActionLedgerPost        = "LEDGER_POST"
	AuditActionLedgerVoid        = "LEDGER_VOID"
	AuditActionDisbursement      = "DISBURSEMENT_RELEASE"
)

// SchoolWideTarget is the sentinel used when an action covers the whole
// school instead of one student.
const SchoolWideTarget = "school-wide"
