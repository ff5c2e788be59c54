package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/dberrors"
)

// SettingsService handles school configuration: campuses, programs,
// schedules and document type definitions
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// CreateCampus creates a new campus
func (s *SettingsService) CreateCampus(ctx context.Context, campus *models.Campus) error {
	if strings.TrimSpace(campus.Name) == "" || strings.TrimSpace(campus.Code) == "" {
		return fmt.Errorf("%w: campus name and code are required", apperrors.ErrValidationFailed)
	}

	err := s.settingsRepo.CreateCampus(ctx, campus)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("campus with this code already exists")
		}
		return err
	}
	return nil
}

// GetCampusByID retrieves one campus
func (s *SettingsService) GetCampusByID(ctx context.Context, id int64) (*models.Campus, error) {
	campus, err := s.settingsRepo.GetCampusByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCampusNotFound) {
			return nil, apperrors.ErrCampusNotFound
		}
		return nil, err
	}
	return campus, nil
}

// GetAllCampuses retrieves all campuses
func (s *SettingsService) GetAllCampuses(ctx context.Context) ([]*models.Campus, error) {
	return s.settingsRepo.GetAllCampuses(ctx)
}

// UpdateCampus updates an existing campus
func (s *SettingsService) UpdateCampus(ctx context.Context, campus *models.Campus) error {
	if strings.TrimSpace(campus.Name) == "" || strings.TrimSpace(campus.Code) == "" {
		return fmt.Errorf("%w: campus name and code are required", apperrors.ErrValidationFailed)
	}

	err := s.settingsRepo.UpdateCampus(ctx, campus)
	if err != nil {
		if errors.Is(err, repositories.ErrCampusNotFound) {
			return apperrors.ErrCampusNotFound
		}
		return err
	}
	return nil
}

// DeleteCampus removes a campus with no enrolled students
func (s *SettingsService) DeleteCampus(ctx context.Context, id int64) error {
	count, err := s.settingsRepo.CountStudentsByCampus(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrCampusHasStudents
	}

	err = s.settingsRepo.DeleteCampus(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCampusNotFound) {
			return apperrors.ErrCampusNotFound
		}
		return err
	}
	return nil
}

// CreateProgram creates a new clock-hour program
func (s *SettingsService) CreateProgram(ctx context.Context, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}

	err := s.settingsRepo.CreateProgram(ctx, program)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("program with this code already exists")
		}
		return err
	}
	return nil
}

// GetProgramByID retrieves one program
func (s *SettingsService) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	program, err := s.settingsRepo.GetProgramByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// GetAllPrograms retrieves all programs
func (s *SettingsService) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	return s.settingsRepo.GetAllPrograms(ctx)
}

// UpdateProgram updates an existing program
func (s *SettingsService) UpdateProgram(ctx context.Context, program *models.Program) error {
	if err := validateProgram(program); err != nil {
		return err
	}

	err := s.settingsRepo.UpdateProgram(ctx, program)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return err
	}
	return nil
}

// DeleteProgram removes a program with no enrolled students
func (s *SettingsService) DeleteProgram(ctx context.Context, id int64) error {
	count, err := s.settingsRepo.CountStudentsByProgram(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrProgramHasStudents
	}

	err = s.settingsRepo.DeleteProgram(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProgramNotFound) {
			return apperrors.ErrProgramNotFound
		}
		return err
	}
	return nil
}

// CreateSchedule creates a new schedule template
func (s *SettingsService) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	if strings.TrimSpace(schedule.Name) == "" {
		return fmt.Errorf("%w: schedule name is required", apperrors.ErrValidationFailed)
	}
	return s.settingsRepo.CreateSchedule(ctx, schedule)
}

// GetAllSchedules retrieves all schedule templates
func (s *SettingsService) GetAllSchedules(ctx context.Context) ([]*models.Schedule, error) {
	return s.settingsRepo.GetAllSchedules(ctx)
}

// UpdateSchedule updates an existing schedule template
func (s *SettingsService) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	err := s.settingsRepo.UpdateSchedule(ctx, schedule)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return err
	}
	return nil
}

// DeleteSchedule removes a schedule template
func (s *SettingsService) DeleteSchedule(ctx context.Context, id int64) error {
	err := s.settingsRepo.DeleteSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return err
	}
	return nil
}

// CreateDocumentType creates a new document type definition
func (s *SettingsService) CreateDocumentType(ctx context.Context, docType *models.DocumentType) error {
	if strings.TrimSpace(docType.Name) == "" {
		return fmt.Errorf("%w: document type name is required", apperrors.ErrValidationFailed)
	}
	return s.settingsRepo.CreateDocumentType(ctx, docType)
}

// GetAllDocumentTypes retrieves all document type definitions
func (s *SettingsService) GetAllDocumentTypes(ctx context.Context) ([]*models.DocumentType, error) {
	return s.settingsRepo.GetAllDocumentTypes(ctx)
}

// UpdateDocumentType updates a document type definition
func (s *SettingsService) UpdateDocumentType(ctx context.Context, docType *models.DocumentType) error {
	err := s.settingsRepo.UpdateDocumentType(ctx, docType)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentTypeNotFound) {
			return apperrors.ErrDocumentTypeNotFound
		}
		return err
	}
	return nil
}

// DeleteDocumentType removes a document type with no document records
func (s *SettingsService) DeleteDocumentType(ctx context.Context, id int64) error {
	count, err := s.settingsRepo.CountDocumentRecordsByType(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrDocumentTypeInUse
	}

	err = s.settingsRepo.DeleteDocumentType(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentTypeNotFound) {
			return apperrors.ErrDocumentTypeNotFound
		}
		return err
	}
	return nil
}

func validateProgram(program *models.Program) error {
	if strings.TrimSpace(program.Name) == "" || strings.TrimSpace(program.Code) == "" {
		return fmt.Errorf("%w: program name and code are required", apperrors.ErrValidationFailed)
	}
	if program.TotalHours <= 0 || program.DurationWeeks <= 0 {
		return fmt.Errorf("%w: program hours and duration must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}
