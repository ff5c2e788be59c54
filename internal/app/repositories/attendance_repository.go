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

// Attendance error types
var (
	ErrSessionNotFound = errors.New("attendance session not found")
)

const sessionColumns = `id, student_id, clock_in, clock_out, total_hours, theory_hours,
	practical_hours, theory_percent, is_correction, correction_note,
	approved_by, approved_at, created_at`

// AttendanceRepository handles database operations for attendance sessions
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
	}
}

func scanSession(row pgx.Row) (*models.AttendanceSession, error) {
	var s models.AttendanceSession
	err := row.Scan(
		&s.ID,
		&s.StudentID,
		&s.ClockIn,
		&s.ClockOut,
		&s.TotalHours,
		&s.TheoryHours,
		&s.PracticalHours,
		&s.TheoryPercent,
		&s.IsCorrection,
		&s.CorrectionNote,
		&s.ApprovedBy,
		&s.ApprovedAt,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new session opened at clock-in
func (r *AttendanceRepository) Create(ctx context.Context, session *models.AttendanceSession) error {
	query := `
		INSERT INTO attendance_sessions (student_id, clock_in, is_correction, correction_note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		session.StudentID,
		session.ClockIn,
		session.IsCorrection,
		session.CorrectionNote,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating attendance session: %w", err)
	}

	return nil
}

// CreateCompleted inserts a fully formed session in one statement. Used for
// correction requests, which carry both timestamps and the hour split up front.
func (r *AttendanceRepository) CreateCompleted(ctx context.Context, session *models.AttendanceSession) error {
	query := `
		INSERT INTO attendance_sessions (
			student_id, clock_in, clock_out, total_hours, theory_hours,
			practical_hours, theory_percent, is_correction, correction_note
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		session.StudentID,
		session.ClockIn,
		session.ClockOut,
		session.TotalHours,
		session.TheoryHours,
		session.PracticalHours,
		session.TheoryPercent,
		session.IsCorrection,
		session.CorrectionNote,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating attendance record: %w", err)
	}

	return nil
}

// GetByID retrieves a session by ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.AttendanceSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM attendance_sessions WHERE id = $1`

	session, err := scanSession(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance session: %w", err)
	}

	return session, nil
}

// GetOpenByStudentID finds the student's session still waiting for a
// clock-out, or nil when none is open
func (r *AttendanceRepository) GetOpenByStudentID(ctx context.Context, studentID int64) (*models.AttendanceSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE student_id = $1 AND clock_out IS NULL AND is_correction = FALSE
		ORDER BY clock_in DESC
		LIMIT 1`

	session, err := scanSession(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving open session: %w", err)
	}

	return session, nil
}

// Complete closes an open session with the clock-out timestamp and the
// derived hour split
func (r *AttendanceRepository) Complete(ctx context.Context, session *models.AttendanceSession) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE attendance_sessions
		SET clock_out = $1, total_hours = $2, theory_hours = $3,
			practical_hours = $4, theory_percent = $5
		WHERE id = $6 AND clock_out IS NULL`,
		session.ClockOut,
		session.TotalHours,
		session.TheoryHours,
		session.PracticalHours,
		session.TheoryPercent,
		session.ID)
	if err != nil {
		return fmt.Errorf("error completing attendance session: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// ApproveCorrection records the approval on a pending correction row.
// Non-correction rows and corrections already approved are skipped.
func (r *AttendanceRepository) ApproveCorrection(ctx context.Context, id, approvedBy int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE attendance_sessions
		SET approved_by = $1, approved_at = $2
		WHERE id = $3 AND is_correction = TRUE AND approved_by IS NULL`,
		approvedBy, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error approving correction: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// GetByStudentID retrieves all sessions for a student, newest first
func (r *AttendanceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.AttendanceSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE student_id = $1
		ORDER BY clock_in DESC`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.AttendanceSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetPendingCorrections retrieves correction rows still waiting for approval
func (r *AttendanceRepository) GetPendingCorrections(ctx context.Context) ([]*models.AttendanceSession, error) {
	query := `SELECT ` + sessionColumns + `
		FROM attendance_sessions
		WHERE is_correction = TRUE AND approved_by IS NULL
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.AttendanceSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
