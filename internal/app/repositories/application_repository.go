package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridian/campusops/internal/app/models"
)

// Application error types
var (
	ErrApplicationNotFound = errors.New("application not found")
)

// ApplicationRepository handles database operations for admissions applications
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

const applicationColumns = `
	id, first_name, last_name, email, phone, campus_id, program_id,
	schedule_id, desired_start, status, decision_reason, decided_by,
	decided_at, student_id, created_at
`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Phone,
		&a.CampusID,
		&a.ProgramID,
		&a.ScheduleID,
		&a.DesiredStart,
		&a.Status,
		&a.DecisionReason,
		&a.DecidedBy,
		&a.DecidedAt,
		&a.StudentID,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new pending application
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications (
			first_name, last_name, email, phone, campus_id, program_id,
			schedule_id, desired_start, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		app.FirstName,
		app.LastName,
		app.Email,
		app.Phone,
		app.CampusID,
		app.ProgramID,
		app.ScheduleID,
		app.DesiredStart,
		models.ApplicationPending,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating application: %w", err)
	}

	app.Status = models.ApplicationPending
	return nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return app, nil
}

// GetByStatus retrieves applications filtered by status; empty status
// returns everything, newest first.
func (r *ApplicationRepository) GetByStatus(ctx context.Context, status models.ApplicationStatus) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// RecordDecision stores the accept/deny outcome on a pending application
func (r *ApplicationRepository) RecordDecision(ctx context.Context, id int64, status models.ApplicationStatus, reason *string, decidedBy int64, studentID *int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE applications
		SET status = $1, decision_reason = $2, decided_by = $3, decided_at = $4, student_id = $5
		WHERE id = $6`,
		status, reason, decidedBy, time.Now(), studentID, id)
	if err != nil {
		return fmt.Errorf("error recording application decision: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
