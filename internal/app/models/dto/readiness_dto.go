package dto

import "github.com/meridian/campusops/internal/app/models"

// StudentReadinessResponse carries one student's composite readiness score.
// Each sub-score is already weighted; OverallScore is their sum.
type StudentReadinessResponse struct {
	StudentID       int64                  `json:"studentId" example:"1"`
	StudentNumber   string                 `json:"studentNumber" example:"2026-0042"`
	FirstName       string                 `json:"firstName"`
	LastName        string                 `json:"lastName"`
	DocumentScore   int                    `json:"documentScore" example:"32"`
	AttendanceScore int                    `json:"attendanceScore" example:"20"`
	SapScore        int                    `json:"sapScore" example:"20"`
	FinancialScore  int                    `json:"financialScore" example:"20"`
	OverallScore    int                    `json:"overallScore" example:"92"`
	Bucket          models.ReadinessBucket `json:"bucket" example:"ready"`
}

// ReadinessSummary buckets the cohort by overall score
type ReadinessSummary struct {
	Total     int `json:"total"`
	Ready     int `json:"ready"`     // overallScore >= 90
	Attention int `json:"attention"` // 70 <= overallScore < 90
	Critical  int `json:"critical"`  // overallScore < 70
}

// CohortReadinessResponse is the school- or filter-wide scoring result
type CohortReadinessResponse struct {
	Students []StudentReadinessResponse `json:"students"`
	Summary  ReadinessSummary           `json:"summary"`
}
