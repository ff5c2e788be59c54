package dto

// CreateApplicationRequest represents an incoming admissions application
type CreateApplicationRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone"`
	CampusID     int64  `json:"campusId" binding:"required,min=1"`
	ProgramID    int64  `json:"programId" binding:"required,min=1"`
	ScheduleID   *int64 `json:"scheduleId,omitempty"`
	DesiredStart string `json:"desiredStart" binding:"required"` // YYYY-MM-DD
}

// ReviewApplicationRequest carries an accept/deny decision.
// Reason is mandatory for denials.
type ReviewApplicationRequest struct {
	Decision string `json:"decision" binding:"required,oneof=accept deny"`
	Reason   string `json:"reason"`
}
