package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64         `json:"id" db:"id" example:"1"`
	StudentNumber  string        `json:"studentNumber" db:"student_number" example:"2026-0042"`
	FirstName      string        `json:"firstName" db:"first_name" example:"Maya"`
	LastName       string        `json:"lastName" db:"last_name" example:"Okafor"`
	Email          string        `json:"email" db:"email" example:"maya@example.com"`
	Phone          string        `json:"phone" db:"phone"`
	Status         StudentStatus `json:"status" db:"status" example:"ACTIVE"`
	CampusID       *int64        `json:"campusId,omitempty" db:"campus_id"`
	ProgramID      *int64        `json:"programId,omitempty" db:"program_id"`
	ScheduleID     *int64        `json:"scheduleId,omitempty" db:"schedule_id"`
	StartDate      time.Time     `json:"startDate" db:"start_date"`
	TotalHours     float64       `json:"totalHours" db:"total_hours" example:"1200"`
	TheoryHours    float64       `json:"theoryHours" db:"theory_hours"`
	PracticalHours float64       `json:"practicalHours" db:"practical_hours"`
	SapStatus      SapStatus     `json:"sapStatus" db:"sap_status" example:"SATISFACTORY"`
	CreatedAt      time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Campus   *Campus   `json:"campus,omitempty"`
	Program  *Program  `json:"program,omitempty"`
	Schedule *Schedule `json:"schedule,omitempty"`
}

// Application defines an admissions application based on the 'applications' table
type Application struct {
	ID             int64             `json:"id" db:"id" example:"1"`
	FirstName      string            `json:"firstName" db:"first_name"`
	LastName       string            `json:"lastName" db:"last_name"`
	Email          string            `json:"email" db:"email"`
	Phone          string            `json:"phone" db:"phone"`
	CampusID       int64             `json:"campusId" db:"campus_id"`
	ProgramID      int64             `json:"programId" db:"program_id"`
	ScheduleID     *int64            `json:"scheduleId,omitempty" db:"schedule_id"`
	DesiredStart   time.Time         `json:"desiredStart" db:"desired_start"`
	Status         ApplicationStatus `json:"status" db:"status" example:"PENDING"`
	DecisionReason *string           `json:"decisionReason,omitempty" db:"decision_reason"`
	DecidedBy      *int64            `json:"decidedBy,omitempty" db:"decided_by"`
	DecidedAt      *time.Time        `json:"decidedAt,omitempty" db:"decided_at"`
	StudentID      *int64            `json:"studentId,omitempty" db:"student_id"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
}
