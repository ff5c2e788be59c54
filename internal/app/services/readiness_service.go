package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/config"
)

// Sub-score weights. Each sub-score is pre-multiplied by its weight so the
// overall score is a plain sum capped at 100.
const (
	documentWeight   = 0.4
	attendanceWeight = 0.2
	sapWeight        = 0.2
	financialWeight  = 0.2
)

const sapOverduePenalty = 15

// ReadinessService computes per-student audit readiness scores. Scoring is
// pure read/compute; it never writes.
type ReadinessService struct {
	studentRepo   *repositories.StudentRepository
	documentRepo  *repositories.DocumentRepository
	sapRepo       *repositories.SapRepository
	financialRepo *repositories.FinancialRepository
	settingsRepo  *repositories.SettingsRepository
	cfg           *config.Config
}

// NewReadinessService creates a new readiness service instance
func NewReadinessService(
	studentRepo *repositories.StudentRepository,
	documentRepo *repositories.DocumentRepository,
	sapRepo *repositories.SapRepository,
	financialRepo *repositories.FinancialRepository,
	settingsRepo *repositories.SettingsRepository,
	cfg *config.Config,
) *ReadinessService {
	return &ReadinessService{
		studentRepo:   studentRepo,
		documentRepo:  documentRepo,
		sapRepo:       sapRepo,
		financialRepo: financialRepo,
		settingsRepo:  settingsRepo,
		cfg:           cfg,
	}
}

// DocumentScore computes the weighted document sub-score: the share of
// required document types covered by an approved non-expired record.
// A school with no required types counts as fully covered.
func DocumentScore(approvedCount, requiredCount int) int {
	pct := 100.0
	if requiredCount > 0 {
		pct = float64(approvedCount) / float64(requiredCount) * 100
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct * documentWeight))
}

// ExpectedHours projects where a student's cumulative hours should be,
// linearly from calendar days elapsed assuming a five-day instructional
// week, capped at the program total.
func ExpectedHours(programTotalHours, durationWeeks int, startDate, now time.Time) float64 {
	daysSinceStart := math.Floor(now.Sub(startDate).Seconds() / 86400)
	if daysSinceStart < 1 {
		daysSinceStart = 1
	}

	avgHoursPerDay := float64(programTotalHours) / float64(durationWeeks*5)
	return math.Min(daysSinceStart*avgHoursPerDay, float64(programTotalHours))
}

// AttendanceScore computes the weighted attendance sub-score by comparing
// the student's posted hours against the linear calendar projection
func AttendanceScore(actualHours float64, programTotalHours, durationWeeks int, startDate, now time.Time) int {
	expectedHours := ExpectedHours(programTotalHours, durationWeeks, startDate, now)

	pct := 100.0
	if expectedHours > 0 {
		pct = actualHours / expectedHours * 100
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct * attendanceWeight))
}

// SapScore computes the weighted SAP sub-score from the current status,
// with a flat penalty when the next evaluation checkpoint is overdue.
func SapScore(status models.SapStatus, hoursSinceEvaluation float64, evaluationInterval int) int {
	var base float64
	switch status {
	case models.SapSatisfactory:
		base = 100
	case models.SapWarning:
		base = 75
	case models.SapProbation, models.SapAppealPending, models.SapAppealApproved:
		base = 50
	case models.SapSuspension, models.SapAppealDenied:
		base = 0
	}

	if hoursSinceEvaluation >= float64(evaluationInterval) {
		base -= sapOverduePenalty
		if base < 0 {
			base = 0
		}
	}

	return int(math.Round(base * sapWeight))
}

// FinancialScore computes the weighted financial verification sub-score.
// Students with no verification requirement score full marks.
func FinancialScore(verificationRequired bool, verificationStatus string) int {
	base := 0.0
	switch {
	case !verificationRequired:
		base = 100
	case verificationStatus == models.VerificationComplete:
		base = 100
	case verificationStatus == models.VerificationInProgress:
		base = 50
	}
	return int(math.Round(base * financialWeight))
}

// BucketFor classifies an overall score
func BucketFor(overallScore int) models.ReadinessBucket {
	switch {
	case overallScore >= 90:
		return models.BucketReady
	case overallScore >= 70:
		return models.BucketAttention
	default:
		return models.BucketCritical
	}
}

// studentInputs holds the per-student rows fetched before scoring
type studentInputs struct {
	approvedDocs int
	latestEval   *models.SapEvaluation
	verification *models.FinancialAidRecord
	program      *models.Program
}

// ScoreStudent computes the composite readiness score for one student
func (s *ReadinessService) ScoreStudent(ctx context.Context, studentID int64) (*dto.StudentReadinessResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, mapStudentNotFound(err)
	}

	requiredCount, err := s.settingsRepo.CountRequiredDocumentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading required document types: %w", err)
	}

	inputs, err := s.fetchInputs(ctx, student)
	if err != nil {
		return nil, err
	}

	result := s.score(student, inputs, requiredCount, time.Now())
	return result, nil
}

// ScoreCohort computes readiness for every active student, optionally
// filtered by campus and/or program, and buckets the results. A failed
// student query fails the whole operation; there are no partial results.
func (s *ReadinessService) ScoreCohort(ctx context.Context, campusID, programID int64) (*dto.CohortReadinessResponse, error) {
	students, err := s.studentRepo.GetActive(ctx, campusID, programID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving active students: %w", err)
	}

	requiredCount, err := s.settingsRepo.CountRequiredDocumentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading required document types: %w", err)
	}

	now := time.Now()
	results := make([]dto.StudentReadinessResponse, len(students))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, student := range students {
		g.Go(func() error {
			inputs, err := s.fetchInputs(gctx, student)
			if err != nil {
				return err
			}
			results[i] = *s.score(student, inputs, requiredCount, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := dto.ReadinessSummary{Total: len(results)}
	for _, r := range results {
		switch r.Bucket {
		case models.BucketReady:
			summary.Ready++
		case models.BucketAttention:
			summary.Attention++
		default:
			summary.Critical++
		}
	}

	return &dto.CohortReadinessResponse{
		Students: results,
		Summary:  summary,
	}, nil
}

// fetchInputs loads the student's scoring rows with a bounded fan-out
func (s *ReadinessService) fetchInputs(ctx context.Context, student *models.Student) (*studentInputs, error) {
	inputs := &studentInputs{}
	now := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.documentRepo.CountApprovedNonExpired(gctx, student.ID, now)
		if err != nil {
			return err
		}
		inputs.approvedDocs = count
		return nil
	})
	g.Go(func() error {
		eval, err := s.sapRepo.GetLatestByStudentID(gctx, student.ID)
		if err != nil {
			return err
		}
		inputs.latestEval = eval
		return nil
	})
	g.Go(func() error {
		rec, err := s.financialRepo.GetLatestVerification(gctx, student.ID)
		if err != nil {
			return err
		}
		inputs.verification = rec
		return nil
	})
	if student.ProgramID != nil {
		g.Go(func() error {
			program, err := s.settingsRepo.GetProgramByID(gctx, *student.ProgramID)
			if err != nil {
				return err
			}
			inputs.program = program
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}

// score combines the fetched inputs into the weighted composite
func (s *ReadinessService) score(student *models.Student, inputs *studentInputs, requiredCount int, now time.Time) *dto.StudentReadinessResponse {
	programHours := s.cfg.Scoring.DefaultProgramHours
	durationWeeks := s.cfg.Scoring.DefaultDurationWeeks
	sapInterval := s.cfg.Scoring.DefaultSapInterval
	if inputs.program != nil {
		programHours = inputs.program.TotalHours
		durationWeeks = inputs.program.DurationWeeks
		if inputs.program.SapEvaluationInterval > 0 {
			sapInterval = inputs.program.SapEvaluationInterval
		}
	}

	sapStatus := student.SapStatus
	hoursSinceEval := student.TotalHours
	if inputs.latestEval != nil {
		sapStatus = inputs.latestEval.Status
		hoursSinceEval = student.TotalHours - inputs.latestEval.HoursCompleted
	}

	verificationRequired := false
	verificationStatus := ""
	if inputs.verification != nil {
		verificationRequired = inputs.verification.VerificationRequired
		verificationStatus = inputs.verification.VerificationStatus
	}

	documentScore := DocumentScore(inputs.approvedDocs, requiredCount)
	attendanceScore := AttendanceScore(student.TotalHours, programHours, durationWeeks, student.StartDate, now)
	sapScore := SapScore(sapStatus, hoursSinceEval, sapInterval)
	financialScore := FinancialScore(verificationRequired, verificationStatus)
	overall := documentScore + attendanceScore + sapScore + financialScore

	return &dto.StudentReadinessResponse{
		StudentID:       student.ID,
		StudentNumber:   student.StudentNumber,
		FirstName:       student.FirstName,
		LastName:        student.LastName,
		DocumentScore:   documentScore,
		AttendanceScore: attendanceScore,
		SapScore:        sapScore,
		FinancialScore:  financialScore,
		OverallScore:    overall,
		Bucket:          BucketFor(overall),
	}
}
