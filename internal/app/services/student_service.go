package services

import (
	"context"
	"errors"
	"time"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/config"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/email"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// Allowed enrollment status transitions. Students are never deleted, only
// moved along this graph.
var studentStatusTransitions = map[models.StudentStatus][]models.StudentStatus{
	models.StudentActive:    {models.StudentOnLeave, models.StudentWithdrawn, models.StudentGraduated, models.StudentTerminated},
	models.StudentOnLeave:   {models.StudentActive, models.StudentWithdrawn, models.StudentTerminated},
	models.StudentWithdrawn: {models.StudentActive},
}

// StudentService handles student records and enrollment status transitions
type StudentService struct {
	studentRepo  *repositories.StudentRepository
	settingsRepo *repositories.SettingsRepository
	emailService email.Service
	cfg          *config.Config
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	settingsRepo *repositories.SettingsRepository,
	emailService email.Service,
	cfg *config.Config,
) *StudentService {
	return &StudentService{
		studentRepo:  studentRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
		cfg:          cfg,
	}
}

// GetByID retrieves one student
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// ListActive retrieves active students, optionally filtered by campus
// and/or program
func (s *StudentService) ListActive(ctx context.Context, campusID, programID int64) ([]*models.Student, error) {
	return s.studentRepo.GetActive(ctx, campusID, programID)
}

// TransitionStatus moves a student along the enrollment lifecycle.
// Graduation sends the congratulations email.
func (s *StudentService) TransitionStatus(ctx context.Context, studentID int64, target models.StudentStatus) error {
	student, err := s.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	if !transitionAllowed(student.Status, target) {
		return apperrors.ErrInvalidStudentStatus
	}

	if err := s.studentRepo.UpdateStatus(ctx, student.ID, target); err != nil {
		return err
	}

	if target == models.StudentGraduated {
		programName := ""
		if student.ProgramID != nil {
			if program, perr := s.settingsRepo.GetProgramByID(ctx, *student.ProgramID); perr == nil {
				programName = program.Name
			}
		}
		msg := email.Graduation(student.FirstName, programName)
		if serr := s.emailService.Send(student.Email, msg.Subject, msg.HTML); serr != nil {
			logger.Warn().Err(serr).Int64("studentID", student.ID).Msg("Failed to send graduation email")
		}
	}

	return nil
}

// SendAttendanceAlert emails a student who has fallen behind the expected
// hours projection. Returns without sending when the student is on pace.
func (s *StudentService) SendAttendanceAlert(ctx context.Context, studentID int64) (bool, error) {
	student, err := s.GetByID(ctx, studentID)
	if err != nil {
		return false, err
	}

	programHours := s.cfg.Scoring.DefaultProgramHours
	durationWeeks := s.cfg.Scoring.DefaultDurationWeeks
	if student.ProgramID != nil {
		if program, perr := s.settingsRepo.GetProgramByID(ctx, *student.ProgramID); perr == nil {
			programHours = program.TotalHours
			durationWeeks = program.DurationWeeks
		}
	}

	expected := ExpectedHours(programHours, durationWeeks, student.StartDate, time.Now())
	if student.TotalHours >= expected {
		return false, nil
	}

	msg := email.AttendanceAlert(student.FirstName, student.TotalHours, expected)
	if err := s.emailService.Send(student.Email, msg.Subject, msg.HTML); err != nil {
		return false, err
	}
	return true, nil
}

func transitionAllowed(from, to models.StudentStatus) bool {
	for _, allowed := range studentStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
