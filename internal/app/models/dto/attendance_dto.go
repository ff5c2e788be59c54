package dto

// ClockInRequest opens an attendance session for a student
type ClockInRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1"`
}

// ClockOutRequest completes an open attendance session. TheoryPercent is
// the slider value: 0-100 in steps of 5.
type ClockOutRequest struct {
	TheoryPercent int `json:"theoryPercent" binding:"min=0,max=100"`
}

// CorrectionRequest records a manual attendance correction pending approval
type CorrectionRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,min=1"`
	ClockIn       string  `json:"clockIn" binding:"required"`  // RFC3339
	ClockOut      string  `json:"clockOut" binding:"required"` // RFC3339
	TheoryPercent int     `json:"theoryPercent" binding:"min=0,max=100"`
	Note          *string `json:"note,omitempty"`
}
