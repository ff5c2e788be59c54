package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/email"
	"github.com/meridian/campusops/internal/pkg/helpers"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// milestoneStep is the cumulative-hour interval at which students get a
// milestone email
const milestoneStep = 500

// AttendanceService handles clock-in/clock-out sessions, the theory/practical
// hour split, and attendance corrections
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	studentRepo    *repositories.StudentRepository
	emailService   email.Service
	auditService   *AuditService
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	studentRepo *repositories.StudentRepository,
	emailService email.Service,
	auditService *AuditService,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		emailService:   emailService,
		auditService:   auditService,
	}
}

// SplitHours derives the theory/practical split from total elapsed hours
// and the slider percentage. Both halves are rounded to two decimals and
// always sum back to the rounded total.
func SplitHours(totalHours float64, theoryPercent int) (theory, practical float64) {
	theory = helpers.Round2(totalHours * float64(theoryPercent) / 100)
	practical = helpers.Round2(totalHours - theory)
	return theory, practical
}

// ValidTheoryPercent reports whether the slider value is on the 0-100
// scale in steps of 5
func ValidTheoryPercent(p int) bool {
	return p >= 0 && p <= 100 && p%5 == 0
}

// ClockIn opens a new attendance session for a student. A student can have
// at most one open session.
func (s *AttendanceService) ClockIn(ctx context.Context, studentID int64) (*models.AttendanceSession, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	open, err := s.attendanceRepo.GetOpenByStudentID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, apperrors.ErrSessionAlreadyOpen
	}

	session := &models.AttendanceSession{
		StudentID: student.ID,
		ClockIn:   time.Now(),
	}
	if err := s.attendanceRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// ClockOut completes the student's open session, computes elapsed hours and
// the theory/practical split, and posts the hours onto the student record
func (s *AttendanceService) ClockOut(ctx context.Context, studentID int64, theoryPercent int, postedBy *int64) (*models.AttendanceSession, error) {
	if !ValidTheoryPercent(theoryPercent) {
		return nil, apperrors.ErrInvalidTheorySplit
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	session, err := s.attendanceRepo.GetOpenByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.ErrSessionNotOpen
	}

	now := time.Now()
	total := helpers.Round2(now.Sub(session.ClockIn).Hours())
	theory, practical := SplitHours(total, theoryPercent)

	session.ClockOut = &now
	session.TotalHours = total
	session.TheoryHours = theory
	session.PracticalHours = practical
	session.TheoryPercent = theoryPercent

	if err := s.attendanceRepo.Complete(ctx, session); err != nil {
		return nil, err
	}

	if err := s.studentRepo.AddHours(ctx, studentID, total, theory, practical); err != nil {
		return nil, fmt.Errorf("error posting hours to student: %w", err)
	}

	s.notifyMilestone(student, student.TotalHours, student.TotalHours+total)

	s.auditService.RecordForStudent(models.AuditActionAttendancePost, postedBy, studentID, map[string]interface{}{
		"sessionId":  session.ID,
		"totalHours": total,
	})

	return session, nil
}

// notifyMilestone sends the milestone email when the posted hours cross a
// milestone boundary
func (s *AttendanceService) notifyMilestone(student *models.Student, before, after float64) {
	crossed := int(after/milestoneStep) * milestoneStep
	if crossed <= int(before/milestoneStep)*milestoneStep || crossed == 0 {
		return
	}
	msg := email.Milestone(student.FirstName, crossed)
	if err := s.emailService.Send(student.Email, msg.Subject, msg.HTML); err != nil {
		logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Failed to send milestone email")
	}
}

// RequestCorrection records a manual attendance entry flagged as a
// correction. Hours are not posted until the correction is approved.
func (s *AttendanceService) RequestCorrection(ctx context.Context, studentID int64, clockIn, clockOut time.Time, theoryPercent int, note *string) (*models.AttendanceSession, error) {
	if !ValidTheoryPercent(theoryPercent) {
		return nil, apperrors.ErrInvalidTheorySplit
	}
	if !clockOut.After(clockIn) {
		return nil, apperrors.NewBadRequestError("clock-out must be after clock-in")
	}

	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	total := helpers.Round2(clockOut.Sub(clockIn).Hours())
	theory, practical := SplitHours(total, theoryPercent)

	session := &models.AttendanceSession{
		StudentID:      studentID,
		ClockIn:        clockIn,
		ClockOut:       &clockOut,
		TotalHours:     total,
		TheoryHours:    theory,
		PracticalHours: practical,
		TheoryPercent:  theoryPercent,
		IsCorrection:   true,
		CorrectionNote: note,
	}
	if err := s.attendanceRepo.CreateCompleted(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// ApproveCorrection approves a pending correction and posts its hours onto
// the student record
func (s *AttendanceService) ApproveCorrection(ctx context.Context, sessionID, approvedBy int64) (*models.AttendanceSession, error) {
	session, err := s.attendanceRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrCorrectionNotFound
		}
		return nil, err
	}

	if !session.IsCorrection || session.ApprovedBy != nil {
		return nil, apperrors.ErrCorrectionNotPending
	}

	if err := s.attendanceRepo.ApproveCorrection(ctx, sessionID, approvedBy); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, apperrors.ErrCorrectionNotPending
		}
		return nil, err
	}

	if err := s.studentRepo.AddHours(ctx, session.StudentID, session.TotalHours, session.TheoryHours, session.PracticalHours); err != nil {
		return nil, fmt.Errorf("error posting corrected hours to student: %w", err)
	}

	now := time.Now()
	session.ApprovedBy = &approvedBy
	session.ApprovedAt = &now

	s.auditService.RecordForStudent(models.AuditActionAttendancePost, &approvedBy, session.StudentID, map[string]interface{}{
		"sessionId":  session.ID,
		"correction": true,
		"totalHours": session.TotalHours,
	})

	return session, nil
}

// GetStudentSessions retrieves a student's attendance history
func (s *AttendanceService) GetStudentSessions(ctx context.Context, studentID int64) ([]*models.AttendanceSession, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return s.attendanceRepo.GetByStudentID(ctx, studentID)
}

// GetPendingCorrections retrieves corrections waiting for approval
func (s *AttendanceService) GetPendingCorrections(ctx context.Context) ([]*models.AttendanceSession, error) {
	return s.attendanceRepo.GetPendingCorrections(ctx)
}
