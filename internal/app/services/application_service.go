package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/email"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// ApplicationService handles admissions applications and their conversion
// into enrolled students
type ApplicationService struct {
	applicationRepo *repositories.ApplicationRepository
	studentRepo     *repositories.StudentRepository
	settingsRepo    *repositories.SettingsRepository
	emailService    email.Service
	auditService    *AuditService
}

// NewApplicationService creates a new application service instance
func NewApplicationService(
	applicationRepo *repositories.ApplicationRepository,
	studentRepo *repositories.StudentRepository,
	settingsRepo *repositories.SettingsRepository,
	emailService email.Service,
	auditService *AuditService,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		studentRepo:     studentRepo,
		settingsRepo:    settingsRepo,
		emailService:    emailService,
		auditService:    auditService,
	}
}

// Create registers a new pending application after checking the campus and
// program references exist
func (s *ApplicationService) Create(ctx context.Context, app *models.Application) error {
	if strings.TrimSpace(app.FirstName) == "" || strings.TrimSpace(app.LastName) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.settingsRepo.GetCampusByID(ctx, app.CampusID); err != nil {
		if errors.Is(err, repositories.ErrCampusNotFound) {
			return apperrors.ErrCampusNotFound
		}
		return fmt.Errorf("error checking campus: %w", err)
	}
	if _, err := s.settingsRepo.GetProgramByID(ctx, app.ProgramID); err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return fmt.Errorf("error checking program: %w", err)
	}

	return s.applicationRepo.Create(ctx, app)
}

// GetByID retrieves one application
func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

// List retrieves applications, optionally filtered by status
func (s *ApplicationService) List(ctx context.Context, status models.ApplicationStatus) ([]*models.Application, error) {
	return s.applicationRepo.GetByStatus(ctx, status)
}

// Accept converts a pending application into an enrolled student: allocates
// a student number, creates the student row, records the decision, and
// sends the confirmation email
func (s *ApplicationService) Accept(ctx context.Context, applicationID, decidedBy int64) (*models.Student, error) {
	app, err := s.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationPending {
		return nil, apperrors.ErrApplicationAlreadyDecided
	}

	// The student number is allocated by the insert itself
	student := &models.Student{
		FirstName:  app.FirstName,
		LastName:   app.LastName,
		Email:      app.Email,
		Phone:      app.Phone,
		Status:     models.StudentActive,
		CampusID:   &app.CampusID,
		ProgramID:  &app.ProgramID,
		ScheduleID: app.ScheduleID,
		StartDate:  app.DesiredStart,
		SapStatus:  models.SapSatisfactory,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	if err := s.applicationRepo.RecordDecision(ctx, app.ID, models.ApplicationAccepted, nil, decidedBy, &student.ID); err != nil {
		return nil, err
	}

	programName := ""
	if program, perr := s.settingsRepo.GetProgramByID(ctx, app.ProgramID); perr == nil {
		programName = program.Name
	}

	msg := email.EnrollmentConfirmation(student.FirstName, student.StudentNumber, programName, student.StartDate.Format("2006-01-02"))
	if err := s.emailService.Send(student.Email, msg.Subject, msg.HTML); err != nil {
		logger.Warn().Err(err).Int64("studentID", student.ID).Msg("Failed to send enrollment confirmation email")
	}

	s.auditService.RecordForStudent(models.AuditActionEnrollment, &decidedBy, student.ID, map[string]interface{}{
		"applicationId": app.ID,
		"studentNumber": student.StudentNumber,
	})

	return student, nil
}

// Deny rejects a pending application. A reason is mandatory and is included
// in the decision email.
func (s *ApplicationService) Deny(ctx context.Context, applicationID, decidedBy int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrDenialReasonRequired
	}

	app, err := s.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.Status != models.ApplicationPending {
		return apperrors.ErrApplicationAlreadyDecided
	}

	if err := s.applicationRepo.RecordDecision(ctx, app.ID, models.ApplicationDenied, &reason, decidedBy, nil); err != nil {
		return err
	}

	programName := ""
	if program, perr := s.settingsRepo.GetProgramByID(ctx, app.ProgramID); perr == nil {
		programName = program.Name
	}

	msg := email.ApplicationDecision(app.FirstName, programName, false, reason)
	if err := s.emailService.Send(app.Email, msg.Subject, msg.HTML); err != nil {
		logger.Warn().Err(err).Int64("applicationID", app.ID).Msg("Failed to send application decision email")
	}

	s.auditService.Record(models.AuditActionApplicationReview, &decidedBy, nil, "application", map[string]interface{}{
		"applicationId": app.ID,
		"decision":      "deny",
	})

	return nil
}

// SendNurtureStep sends one step of the lead nurture sequence to a pending
// applicant. Steps past the end of the sequence clamp to the final message.
func (s *ApplicationService) SendNurtureStep(ctx context.Context, applicationID int64, step int) error {
	app, err := s.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.Status != models.ApplicationPending {
		return apperrors.ErrApplicationAlreadyDecided
	}

	programName := ""
	if program, perr := s.settingsRepo.GetProgramByID(ctx, app.ProgramID); perr == nil {
		programName = program.Name
	}

	msg := email.LeadNurture(app.FirstName, programName, step)
	return s.emailService.Send(app.Email, msg.Subject, msg.HTML)
}
