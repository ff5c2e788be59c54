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

// Document error types
var (
	ErrDocumentNotFound = errors.New("document record not found")
)

// DocumentRepository handles database operations for document records
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

const documentColumns = `
	d.id, d.student_id, d.document_type_id, d.status, d.file_name,
	d.expires_at, d.rejection_reason, d.reviewed_by, d.reviewed_at, d.uploaded_at
`

func scanDocument(row pgx.Row) (*models.DocumentRecord, error) {
	var d models.DocumentRecord
	err := row.Scan(
		&d.ID,
		&d.StudentID,
		&d.DocumentTypeID,
		&d.Status,
		&d.FileName,
		&d.ExpiresAt,
		&d.RejectionReason,
		&d.ReviewedBy,
		&d.ReviewedAt,
		&d.UploadedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a freshly uploaded document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.DocumentRecord) error {
	query := `
		INSERT INTO document_records (student_id, document_type_id, status, file_name, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query,
		doc.StudentID,
		doc.DocumentTypeID,
		models.DocumentUploaded,
		doc.FileName,
		doc.ExpiresAt,
	).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("error creating document record: %w", err)
	}

	doc.Status = models.DocumentUploaded
	return nil
}

// GetByID retrieves a document record by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.DocumentRecord, error) {
	query := `SELECT ` + documentColumns + ` FROM document_records d WHERE d.id = $1`

	doc, err := scanDocument(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error retrieving document record: %w", err)
	}

	return doc, nil
}

// GetByStudentID retrieves all document records for a student with the
// document type inlined
func (r *DocumentRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.DocumentRecord, error) {
	query := `
		SELECT ` + documentColumns + `,
			t.id, t.name, t.description, t.required, t.expiry_days, t.is_active, t.created_at
		FROM document_records d
		JOIN document_types t ON t.id = d.document_type_id
		WHERE d.student_id = $1
		ORDER BY d.uploaded_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.DocumentRecord
	for rows.Next() {
		var d models.DocumentRecord
		var t models.DocumentType
		err := rows.Scan(
			&d.ID,
			&d.StudentID,
			&d.DocumentTypeID,
			&d.Status,
			&d.FileName,
			&d.ExpiresAt,
			&d.RejectionReason,
			&d.ReviewedBy,
			&d.ReviewedAt,
			&d.UploadedAt,
			&t.ID,
			&t.Name,
			&t.Description,
			&t.Required,
			&t.ExpiryDays,
			&t.IsActive,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		d.DocumentType = &t
		docs = append(docs, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

// UpdateStatus moves a document record to a new review status
func (r *DocumentRepository) UpdateStatus(ctx context.Context, id int64, status models.DocumentStatus, reason *string, reviewedBy int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE document_records
		SET status = $1, rejection_reason = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $5`,
		status, reason, reviewedBy, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error updating document status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// CountApprovedNonExpired counts a student's documents that are approved
// and either never expire or expire after the given time
func (r *DocumentRepository) CountApprovedNonExpired(ctx context.Context, studentID int64, now time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM document_records
		WHERE student_id = $1
		AND status = $2
		AND (expires_at IS NULL OR expires_at > $3)`,
		studentID, models.DocumentApproved, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting approved documents: %w", err)
	}

	return count, nil
}
