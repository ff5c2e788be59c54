package services

import (
	"context"
	"errors"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/email"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// SapService handles Satisfactory Academic Progress evaluations.
// Evaluations are append-only checkpoints; the student's current status is
// kept in sync with the latest one.
type SapService struct {
	sapRepo      *repositories.SapRepository
	studentRepo  *repositories.StudentRepository
	emailService email.Service
	auditService *AuditService
}

// NewSapService creates a new SAP service instance
func NewSapService(
	sapRepo *repositories.SapRepository,
	studentRepo *repositories.StudentRepository,
	emailService email.Service,
	auditService *AuditService,
) *SapService {
	return &SapService{
		sapRepo:      sapRepo,
		studentRepo:  studentRepo,
		emailService: emailService,
		auditService: auditService,
	}
}

// Evaluate appends a SAP checkpoint, moves the student's current status,
// and alerts the student when the status is adverse
func (s *SapService) Evaluate(ctx context.Context, eval *models.SapEvaluation) error {
	if !validSapStatus(eval.Status) {
		return apperrors.NewBadRequestError("unknown SAP status")
	}

	student, err := s.studentRepo.GetByID(ctx, eval.StudentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}

	if err := s.sapRepo.Append(ctx, eval); err != nil {
		return err
	}

	if err := s.studentRepo.UpdateSapStatus(ctx, student.ID, eval.Status); err != nil {
		return err
	}

	if eval.Status != models.SapSatisfactory {
		msg := email.SapAlert(student.FirstName, string(eval.Status), eval.CompletionRate)
		if serr := s.emailService.Send(student.Email, msg.Subject, msg.HTML); serr != nil {
			logger.Warn().Err(serr).Int64("studentID", student.ID).Msg("Failed to send SAP alert email")
		}
	}

	s.auditService.RecordForStudent(models.AuditActionSapEvaluation, &eval.EvaluatedBy, student.ID, map[string]interface{}{
		"evaluationId": eval.ID,
		"status":       string(eval.Status),
	})

	return nil
}

// GetHistory retrieves a student's evaluation history, newest first
func (s *SapService) GetHistory(ctx context.Context, studentID int64) ([]*models.SapEvaluation, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return s.sapRepo.GetByStudentID(ctx, studentID)
}

// GetLatest retrieves a student's most recent evaluation, or nil when the
// student has never been evaluated
func (s *SapService) GetLatest(ctx context.Context, studentID int64) (*models.SapEvaluation, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return s.sapRepo.GetLatestByStudentID(ctx, studentID)
}

func validSapStatus(status models.SapStatus) bool {
	switch status {
	case models.SapSatisfactory, models.SapWarning, models.SapProbation,
		models.SapSuspension, models.SapAppealPending,
		models.SapAppealApproved, models.SapAppealDenied:
		return true
	}
	return false
}
