package dto

// UpdateStudentStatusRequest moves a student to a new enrollment status
type UpdateStudentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetUserActiveRequest enables or disables a staff account
type SetUserActiveRequest struct {
	Active bool `json:"active"`
}
