package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridian/campusops/internal/app/models"
)

// Settings error types
var (
	ErrCampusNotFound       = errors.New("campus not found")
	ErrProgramNotFound      = errors.New("program not found")
	ErrScheduleNotFound     = errors.New("schedule not found")
	ErrDocumentTypeNotFound = errors.New("document type not found")
)

// SettingsRepository handles database operations for school configuration:
// campuses, programs, schedules and document type definitions
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// CreateCampus inserts a new campus
func (r *SettingsRepository) CreateCampus(ctx context.Context, campus *models.Campus) error {
	query := `
		INSERT INTO campuses (name, code, address, phone, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		campus.Name, campus.Code, campus.Address, campus.Phone, campus.IsActive,
	).Scan(&campus.ID, &campus.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating campus: %w", err)
	}

	return nil
}

// GetCampusByID retrieves a campus by ID
func (r *SettingsRepository) GetCampusByID(ctx context.Context, id int64) (*models.Campus, error) {
	query := `SELECT id, name, code, address, phone, is_active, created_at FROM campuses WHERE id = $1`

	var c models.Campus
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Code, &c.Address, &c.Phone, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCampusNotFound
		}
		return nil, fmt.Errorf("error retrieving campus: %w", err)
	}

	return &c, nil
}

// GetAllCampuses retrieves all campuses ordered by name
func (r *SettingsRepository) GetAllCampuses(ctx context.Context) ([]*models.Campus, error) {
	query := `SELECT id, name, code, address, phone, is_active, created_at FROM campuses ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campuses []*models.Campus
	for rows.Next() {
		var c models.Campus
		err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Address, &c.Phone, &c.IsActive, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		campuses = append(campuses, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campuses, nil
}

// UpdateCampus updates an existing campus
func (r *SettingsRepository) UpdateCampus(ctx context.Context, campus *models.Campus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE campuses
		SET name = $1, code = $2, address = $3, phone = $4, is_active = $5
		WHERE id = $6`,
		campus.Name, campus.Code, campus.Address, campus.Phone, campus.IsActive, campus.ID)
	if err != nil {
		return fmt.Errorf("error updating campus: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCampusNotFound
	}

	return nil
}

// CountStudentsByCampus counts students enrolled at a campus
func (r *SettingsRepository) CountStudentsByCampus(ctx context.Context, campusID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE campus_id = $1`, campusID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting campus students: %w", err)
	}
	return count, nil
}

// DeleteCampus removes a campus
func (r *SettingsRepository) DeleteCampus(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM campuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting campus: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCampusNotFound
	}

	return nil
}

// CreateProgram inserts a new program
func (r *SettingsRepository) CreateProgram(ctx context.Context, program *models.Program) error {
	query := `
		INSERT INTO programs (name, code, total_hours, duration_weeks, sap_evaluation_interval, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		program.Name, program.Code, program.TotalHours, program.DurationWeeks,
		program.SapEvaluationInterval, program.IsActive,
	).Scan(&program.ID, &program.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating program: %w", err)
	}

	return nil
}

// GetProgramByID retrieves a program by ID
func (r *SettingsRepository) GetProgramByID(ctx context.Context, id int64) (*models.Program, error) {
	query := `
		SELECT id, name, code, total_hours, duration_weeks, sap_evaluation_interval, is_active, created_at
		FROM programs
		WHERE id = $1
	`

	var p models.Program
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Code, &p.TotalHours, &p.DurationWeeks,
		&p.SapEvaluationInterval, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	return &p, nil
}

// GetAllPrograms retrieves all programs ordered by name
func (r *SettingsRepository) GetAllPrograms(ctx context.Context) ([]*models.Program, error) {
	query := `
		SELECT id, name, code, total_hours, duration_weeks, sap_evaluation_interval, is_active, created_at
		FROM programs
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var programs []*models.Program
	for rows.Next() {
		var p models.Program
		err := rows.Scan(&p.ID, &p.Name, &p.Code, &p.TotalHours, &p.DurationWeeks,
			&p.SapEvaluationInterval, &p.IsActive, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		programs = append(programs, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}

// UpdateProgram updates an existing program
func (r *SettingsRepository) UpdateProgram(ctx context.Context, program *models.Program) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE programs
		SET name = $1, code = $2, total_hours = $3, duration_weeks = $4,
			sap_evaluation_interval = $5, is_active = $6
		WHERE id = $7`,
		program.Name, program.Code, program.TotalHours, program.DurationWeeks,
		program.SapEvaluationInterval, program.IsActive, program.ID)
	if err != nil {
		return fmt.Errorf("error updating program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// CountStudentsByProgram counts students enrolled in a program
func (r *SettingsRepository) CountStudentsByProgram(ctx context.Context, programID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE program_id = $1`, programID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting program students: %w", err)
	}
	return count, nil
}

// DeleteProgram removes a program
func (r *SettingsRepository) DeleteProgram(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrProgramNotFound
	}

	return nil
}

// CreateSchedule inserts a new schedule template
func (r *SettingsRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	query := `
		INSERT INTO schedules (name, start_time, end_time, days, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		schedule.Name, schedule.StartTime, schedule.EndTime, schedule.Days, schedule.IsActive,
	).Scan(&schedule.ID, &schedule.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating schedule: %w", err)
	}

	return nil
}

// GetScheduleByID retrieves a schedule by ID
func (r *SettingsRepository) GetScheduleByID(ctx context.Context, id int64) (*models.Schedule, error) {
	query := `SELECT id, name, start_time, end_time, days, is_active, created_at FROM schedules WHERE id = $1`

	var s models.Schedule
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Days, &s.IsActive, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("error retrieving schedule: %w", err)
	}

	return &s, nil
}

// GetAllSchedules retrieves all schedule templates ordered by name
func (r *SettingsRepository) GetAllSchedules(ctx context.Context) ([]*models.Schedule, error) {
	query := `SELECT id, name, start_time, end_time, days, is_active, created_at FROM schedules ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.Schedule
	for rows.Next() {
		var s models.Schedule
		err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Days, &s.IsActive, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// UpdateSchedule updates an existing schedule template
func (r *SettingsRepository) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE schedules
		SET name = $1, start_time = $2, end_time = $3, days = $4, is_active = $5
		WHERE id = $6`,
		schedule.Name, schedule.StartTime, schedule.EndTime, schedule.Days, schedule.IsActive, schedule.ID)
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// DeleteSchedule removes a schedule template
func (r *SettingsRepository) DeleteSchedule(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// CreateDocumentType inserts a new document type definition
func (r *SettingsRepository) CreateDocumentType(ctx context.Context, docType *models.DocumentType) error {
	query := `
		INSERT INTO document_types (name, description, required, expiry_days, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		docType.Name, docType.Description, docType.Required, docType.ExpiryDays, docType.IsActive,
	).Scan(&docType.ID, &docType.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating document type: %w", err)
	}

	return nil
}

// GetDocumentTypeByID retrieves a document type by ID
func (r *SettingsRepository) GetDocumentTypeByID(ctx context.Context, id int64) (*models.DocumentType, error) {
	query := `SELECT id, name, description, required, expiry_days, is_active, created_at FROM document_types WHERE id = $1`

	var dt models.DocumentType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&dt.ID, &dt.Name, &dt.Description, &dt.Required, &dt.ExpiryDays, &dt.IsActive, &dt.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentTypeNotFound
		}
		return nil, fmt.Errorf("error retrieving document type: %w", err)
	}

	return &dt, nil
}

// GetAllDocumentTypes retrieves all document type definitions ordered by name
func (r *SettingsRepository) GetAllDocumentTypes(ctx context.Context) ([]*models.DocumentType, error) {
	query := `SELECT id, name, description, required, expiry_days, is_active, created_at FROM document_types ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.DocumentType
	for rows.Next() {
		var dt models.DocumentType
		err := rows.Scan(&dt.ID, &dt.Name, &dt.Description, &dt.Required, &dt.ExpiryDays, &dt.IsActive, &dt.CreatedAt)
		if err != nil {
			return nil, err
		}
		types = append(types, &dt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// UpdateDocumentType updates a document type definition
func (r *SettingsRepository) UpdateDocumentType(ctx context.Context, docType *models.DocumentType) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE document_types
		SET name = $1, description = $2, required = $3, expiry_days = $4, is_active = $5
		WHERE id = $6`,
		docType.Name, docType.Description, docType.Required, docType.ExpiryDays, docType.IsActive, docType.ID)
	if err != nil {
		return fmt.Errorf("error updating document type: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDocumentTypeNotFound
	}

	return nil
}

// CountDocumentRecordsByType counts document records referencing a type
func (r *SettingsRepository) CountDocumentRecordsByType(ctx context.Context, typeID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM document_records WHERE document_type_id = $1`, typeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting document records: %w", err)
	}
	return count, nil
}

// DeleteDocumentType removes a document type definition
func (r *SettingsRepository) DeleteDocumentType(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM document_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting document type: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDocumentTypeNotFound
	}

	return nil
}

// CountRequiredDocumentTypes counts active required document types. This is
// the denominator of the document sub-score.
func (r *SettingsRepository) CountRequiredDocumentTypes(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM document_types WHERE required = TRUE AND is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting required document types: %w", err)
	}
	return count, nil
}
