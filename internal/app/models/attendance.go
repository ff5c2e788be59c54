package models

import "time"

// AttendanceSession defines a clock-in/clock-out pair based on the
// 'attendance_sessions' table. Created at clock-in and completed at
// clock-out; the theory/practical split is derived from a user-supplied
// percentage at clock-out time.
type AttendanceSession struct {
	ID             int64      `json:"id" db:"id" example:"1"`
	StudentID      int64      `json:"studentId" db:"student_id"`
	ClockIn        time.Time  `json:"clockIn" db:"clock_in"`
	ClockOut       *time.Time `json:"clockOut,omitempty" db:"clock_out"`
	TotalHours     float64    `json:"totalHours" db:"total_hours"`
	TheoryHours    float64    `json:"theoryHours" db:"theory_hours"`
	PracticalHours float64    `json:"practicalHours" db:"practical_hours"`
	TheoryPercent  int        `json:"theoryPercent" db:"theory_percent"`
	IsCorrection   bool       `json:"isCorrection" db:"is_correction"`
	CorrectionNote *string    `json:"correctionNote,omitempty" db:"correction_note"`
	ApprovedBy     *int64     `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovedAt     *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

// IsOpen reports whether the session is still waiting for a clock-out
func (s *AttendanceSession) IsOpen() bool {
	return s.ClockOut == nil
}
