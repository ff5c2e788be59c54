package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridian/campusops/internal/app/models"
)

// Student error types
var (
	ErrStudentNotFound = errors.New("student not found")
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	id, student_number, first_name, last_name, email, phone, status,
	campus_id, program_id, schedule_id, start_date,
	total_hours, theory_hours, practical_hours, sap_status,
	created_at, updated_at
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(
		&s.ID,
		&s.StudentNumber,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Status,
		&s.CampusID,
		&s.ProgramID,
		&s.ScheduleID,
		&s.StartDate,
		&s.TotalHours,
		&s.TheoryHours,
		&s.PracticalHours,
		&s.SapStatus,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

const studentInsertQuery = `
	INSERT INTO students (
		student_number, first_name, last_name, email, phone, status,
		campus_id, program_id, schedule_id, start_date, sap_status
	)
	VALUES (
		(SELECT $1::text || lpad((COALESCE(MAX(split_part(student_number, '-', 2)::int), 0) + 1)::text, 4, '0')
		 FROM students WHERE student_number LIKE $1::text || '%'),
		$2, $3, $4, $5, $6, $7, $8, $9, $10, $11
	)
	RETURNING id, student_number, created_at, updated_at
`

// Create inserts a new student and sets the generated ID and student
// number. The number is allocated inside the insert statement as max
// existing sequence for the enrollment year plus one, so concurrent
// enrollments do not race on a separately read count.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	prefix := studentNumberPrefix(student.StartDate.Year())

	err := r.db.QueryRow(ctx, studentInsertQuery,
		prefix,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Phone,
		student.Status,
		student.CampusID,
		student.ProgramID,
		student.ScheduleID,
		student.StartDate,
		student.SapStatus,
	).Scan(&student.ID, &student.StudentNumber, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetActive retrieves all active students, optionally filtered by campus
// and/or program. Zero values mean no filter.
func (r *StudentRepository) GetActive(ctx context.Context, campusID, programID int64) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE status = $1`
	args := []interface{}{models.StudentActive}

	if campusID > 0 {
		args = append(args, campusID)
		query += fmt.Sprintf(" AND campus_id = $%d", len(args))
	}
	if programID > 0 {
		args = append(args, programID)
		query += fmt.Sprintf(" AND program_id = $%d", len(args))
	}
	query += " ORDER BY last_name, first_name"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// UpdateStatus transitions a student's enrollment status
func (r *StudentRepository) UpdateStatus(ctx context.Context, id int64, status models.StudentStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating student status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// UpdateSapStatus sets the student's current SAP status
func (r *StudentRepository) UpdateSapStatus(ctx context.Context, id int64, status models.SapStatus) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE students SET sap_status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating student SAP status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// studentNumberPrefix is the enrollment-year prefix of a student number;
// the sequence part after the dash is allocated by the insert statement.
func studentNumberPrefix(year int) string {
	return fmt.Sprintf("%d-", year)
}

// AddHours accumulates posted attendance hours onto the student record
func (r *StudentRepository) AddHours(ctx context.Context, id int64, total, theory, practical float64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE students
		SET total_hours = total_hours + $1,
			theory_hours = theory_hours + $2,
			practical_hours = practical_hours + $3,
			updated_at = NOW()
		WHERE id = $4`,
		total, theory, practical, id)
	if err != nil {
		return fmt.Errorf("error adding student hours: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
