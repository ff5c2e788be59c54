package models

import "time"

// Campus defines a school location based on the 'campuses' table
type Campus struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Downtown Campus"`
	Code      string    `json:"code" db:"code" example:"DTN"`
	Address   string    `json:"address" db:"address"`
	Phone     string    `json:"phone" db:"phone"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Program defines a clock-hour program based on the 'programs' table.
// TotalHours and DurationWeeks feed the expected-hours projection;
// SapEvaluationInterval is the hours between SAP checkpoints.
type Program struct {
	ID                    int64     `json:"id" db:"id" example:"1"`
	Name                  string    `json:"name" db:"name" example:"Cosmetology"`
	Code                  string    `json:"code" db:"code" example:"COS"`
	TotalHours            int       `json:"totalHours" db:"total_hours" example:"1500"`
	DurationWeeks         int       `json:"durationWeeks" db:"duration_weeks" example:"52"`
	SapEvaluationInterval int       `json:"sapEvaluationInterval" db:"sap_evaluation_interval" example:"450"`
	IsActive              bool      `json:"isActive" db:"is_active"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
}

// Schedule defines a class schedule template based on the 'schedules' table
type Schedule struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Day Full-Time"`
	StartTime string    `json:"startTime" db:"start_time" example:"09:00"`
	EndTime   string    `json:"endTime" db:"end_time" example:"17:00"`
	Days      string    `json:"days" db:"days" example:"Mon-Fri"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// DocumentType defines a compliance document definition based on the
// 'document_types' table. Required types drive the document sub-score.
type DocumentType struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Name        string    `json:"name" db:"name" example:"Government ID"`
	Description string    `json:"description" db:"description"`
	Required    bool      `json:"required" db:"required" example:"true"`
	ExpiryDays  *int      `json:"expiryDays,omitempty" db:"expiry_days"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
