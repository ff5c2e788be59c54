package models

import "time"

// DocumentRecord defines a student compliance document based on the
// 'document_records' table. Records are never physically deleted; review
// actions only move the status.
type DocumentRecord struct {
	ID              int64          `json:"id" db:"id" example:"1"`
	StudentID       int64          `json:"studentId" db:"student_id"`
	DocumentTypeID  int64          `json:"documentTypeId" db:"document_type_id"`
	Status          DocumentStatus `json:"status" db:"status" example:"APPROVED"`
	FileName        string         `json:"fileName" db:"file_name"`
	ExpiresAt       *time.Time     `json:"expiresAt,omitempty" db:"expires_at"`
	RejectionReason *string        `json:"rejectionReason,omitempty" db:"rejection_reason"`
	ReviewedBy      *int64         `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt      *time.Time     `json:"reviewedAt,omitempty" db:"reviewed_at"`
	UploadedAt      time.Time      `json:"uploadedAt" db:"uploaded_at"`

	// Relations (populated when needed)
	DocumentType *DocumentType `json:"documentType,omitempty"`
}

// IsApprovedNonExpired reports whether the record counts toward the
// document sub-score at the given evaluation time: approved, and either
// without an expiry date or expiring strictly after now.
func (d *DocumentRecord) IsApprovedNonExpired(now time.Time) bool {
	if d.Status != DocumentApproved {
		return false
	}
	if d.ExpiresAt == nil {
		return true
	}
	return d.ExpiresAt.After(now)
}
