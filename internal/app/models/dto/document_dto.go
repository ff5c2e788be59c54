package dto

// UploadDocumentRequest records a newly uploaded compliance document
type UploadDocumentRequest struct {
	StudentID      int64   `json:"studentId" binding:"required,min=1"`
	DocumentTypeID int64   `json:"documentTypeId" binding:"required,min=1"`
	FileName       string  `json:"fileName" binding:"required"`
	ExpiresAt      *string `json:"expiresAt,omitempty"` // YYYY-MM-DD
}

// ReviewDocumentRequest approves or rejects a document record.
// Reason is mandatory for rejections.
type ReviewDocumentRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Reason   string `json:"reason"`
}

// BulkDocumentStatusRequest moves a set of document records to a status.
// Best-effort: each id succeeds or fails independently.
type BulkDocumentStatusRequest struct {
	DocumentIDs []int64 `json:"documentIds" binding:"required,min=1"`
	Status      string  `json:"status" binding:"required"`
}
