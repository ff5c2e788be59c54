package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meridian/campusops/internal/app/models"
)

// AuditLogRepository handles database operations for the audit trail
type AuditLogRepository struct {
	db *pgxpool.Pool
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *pgxpool.Pool) *AuditLogRepository {
	return &AuditLogRepository{
		db: db,
	}
}

// Append inserts an audit trail row
func (r *AuditLogRepository) Append(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (user_id, action, student_id, target, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.Action,
		entry.StudentID,
		entry.Target,
		entry.Metadata,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error appending audit log entry: %w", err)
	}

	return nil
}

// List retrieves audit rows newest first, optionally filtered by action
// and/or student, with offset pagination
func (r *AuditLogRepository) List(ctx context.Context, action string, studentID *int64, offset, limit int) ([]*models.AuditLogEntry, int64, error) {
	baseQuery := `FROM audit_log WHERE 1=1`
	params := []interface{}{}
	paramCount := 0

	if action != "" {
		paramCount++
		baseQuery += fmt.Sprintf(" AND action = $%d", paramCount)
		params = append(params, action)
	}
	if studentID != nil {
		paramCount++
		baseQuery += fmt.Sprintf(" AND student_id = $%d", paramCount)
		params = append(params, *studentID)
	}

	var total int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, params...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting audit log entries: %w", err)
	}

	query := `SELECT id, user_id, action, student_id, target, metadata, created_at ` +
		baseQuery +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", paramCount+1, paramCount+2)
	params = append(params, limit, offset)

	rows, err := r.db.Query(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*models.AuditLogEntry
	for rows.Next() {
		var e models.AuditLogEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.StudentID, &e.Target, &e.Metadata, &e.CreatedAt)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
