package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridian/campusops/internal/app/models"
)

// SAP error types
var (
	ErrSapEvaluationNotFound = errors.New("SAP evaluation not found")
)

// SapRepository handles database operations for SAP evaluations.
// Evaluations are append-only; there is deliberately no update or delete.
type SapRepository struct {
	db *pgxpool.Pool
}

// NewSapRepository creates a new SAP repository
func NewSapRepository(db *pgxpool.Pool) *SapRepository {
	return &SapRepository{
		db: db,
	}
}

const sapColumns = `
	id, student_id, status, completion_rate, hours_attempted,
	hours_completed, notes, evaluated_by, evaluated_at
`

func scanSapEvaluation(row pgx.Row) (*models.SapEvaluation, error) {
	var e models.SapEvaluation
	err := row.Scan(
		&e.ID,
		&e.StudentID,
		&e.Status,
		&e.CompletionRate,
		&e.HoursAttempted,
		&e.HoursCompleted,
		&e.Notes,
		&e.EvaluatedBy,
		&e.EvaluatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Append inserts a new evaluation checkpoint
func (r *SapRepository) Append(ctx context.Context, eval *models.SapEvaluation) error {
	query := `
		INSERT INTO sap_evaluations (
			student_id, status, completion_rate, hours_attempted,
			hours_completed, notes, evaluated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, evaluated_at
	`

	err := r.db.QueryRow(ctx, query,
		eval.StudentID,
		eval.Status,
		eval.CompletionRate,
		eval.HoursAttempted,
		eval.HoursCompleted,
		eval.Notes,
		eval.EvaluatedBy,
	).Scan(&eval.ID, &eval.EvaluatedAt)
	if err != nil {
		return fmt.Errorf("error appending SAP evaluation: %w", err)
	}

	return nil
}

// GetLatestByStudentID retrieves the most recent evaluation for a student,
// or nil if the student has never been evaluated
func (r *SapRepository) GetLatestByStudentID(ctx context.Context, studentID int64) (*models.SapEvaluation, error) {
	query := `
		SELECT ` + sapColumns + `
		FROM sap_evaluations
		WHERE student_id = $1
		ORDER BY evaluated_at DESC
		LIMIT 1
	`

	eval, err := scanSapEvaluation(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving latest SAP evaluation: %w", err)
	}

	return eval, nil
}

// GetByStudentID retrieves the full evaluation history for a student,
// newest first
func (r *SapRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.SapEvaluation, error) {
	query := `
		SELECT ` + sapColumns + `
		FROM sap_evaluations
		WHERE student_id = $1
		ORDER BY evaluated_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evals []*models.SapEvaluation
	for rows.Next() {
		eval, err := scanSapEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evals = append(evals, eval)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return evals, nil
}
