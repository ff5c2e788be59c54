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

// Financial error types
var (
	ErrAwardNotFound        = errors.New("financial aid award not found")
	ErrDisbursementNotFound = errors.New("disbursement not found")
	ErrLedgerEntryNotFound  = errors.New("ledger entry not found")
)

// FinancialRepository handles database operations for the financial aid
// and student-account ledger tables
type FinancialRepository struct {
	db *pgxpool.Pool
}

// NewFinancialRepository creates a new financial repository
func NewFinancialRepository(db *pgxpool.Pool) *FinancialRepository {
	return &FinancialRepository{
		db: db,
	}
}

// GetLatestVerification retrieves the most recent (by academic year)
// verification record for a student, or nil when none exists
func (r *FinancialRepository) GetLatestVerification(ctx context.Context, studentID int64) (*models.FinancialAidRecord, error) {
	query := `
		SELECT id, student_id, academic_year, verification_required,
			verification_status, isir_received, created_at, updated_at
		FROM financial_aid_records
		WHERE student_id = $1
		ORDER BY academic_year DESC
		LIMIT 1
	`

	var rec models.FinancialAidRecord
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&rec.ID,
		&rec.StudentID,
		&rec.AcademicYear,
		&rec.VerificationRequired,
		&rec.VerificationStatus,
		&rec.IsirReceived,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving verification record: %w", err)
	}

	return &rec, nil
}

// UpsertVerification creates or refreshes the verification record for a
// student and academic year
func (r *FinancialRepository) UpsertVerification(ctx context.Context, rec *models.FinancialAidRecord) error {
	query := `
		INSERT INTO financial_aid_records (
			student_id, academic_year, verification_required,
			verification_status, isir_received
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id, academic_year) DO UPDATE SET
			verification_required = EXCLUDED.verification_required,
			verification_status = EXCLUDED.verification_status,
			isir_received = EXCLUDED.isir_received,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		rec.StudentID,
		rec.AcademicYear,
		rec.VerificationRequired,
		rec.VerificationStatus,
		rec.IsirReceived,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting verification record: %w", err)
	}

	return nil
}

// CreateAward inserts a financial aid award
func (r *FinancialRepository) CreateAward(ctx context.Context, award *models.FinancialAidAward) error {
	query := `
		INSERT INTO financial_aid_awards (student_id, academic_year, source, amount, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		award.StudentID,
		award.AcademicYear,
		award.Source,
		award.Amount,
		award.CreatedBy,
	).Scan(&award.ID, &award.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating award: %w", err)
	}

	return nil
}

// GetAwardByID retrieves an award by ID
func (r *FinancialRepository) GetAwardByID(ctx context.Context, id int64) (*models.FinancialAidAward, error) {
	query := `
		SELECT id, student_id, academic_year, source, amount, created_by, created_at
		FROM financial_aid_awards
		WHERE id = $1
	`

	var a models.FinancialAidAward
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StudentID, &a.AcademicYear, &a.Source, &a.Amount, &a.CreatedBy, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAwardNotFound
		}
		return nil, fmt.Errorf("error retrieving award: %w", err)
	}

	return &a, nil
}

// CreateDisbursement schedules an aid release
func (r *FinancialRepository) CreateDisbursement(ctx context.Context, d *models.Disbursement) error {
	query := `
		INSERT INTO disbursements (award_id, student_id, amount, scheduled_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		d.AwardID, d.StudentID, d.Amount, d.ScheduledDate, models.DisbursementScheduled,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("error creating disbursement: %w", err)
	}

	d.Status = models.DisbursementScheduled
	return nil
}

// GetDisbursementByID retrieves a disbursement by ID
func (r *FinancialRepository) GetDisbursementByID(ctx context.Context, id int64) (*models.Disbursement, error) {
	query := `
		SELECT id, award_id, student_id, amount, scheduled_date, status, released_at, released_by
		FROM disbursements
		WHERE id = $1
	`

	var d models.Disbursement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.AwardID, &d.StudentID, &d.Amount, &d.ScheduledDate, &d.Status, &d.ReleasedAt, &d.ReleasedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDisbursementNotFound
		}
		return nil, fmt.Errorf("error retrieving disbursement: %w", err)
	}

	return &d, nil
}

// ReleaseDisbursement marks a scheduled disbursement as released. Rows in
// any other state are left untouched and reported as not found.
func (r *FinancialRepository) ReleaseDisbursement(ctx context.Context, id, releasedBy int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE disbursements
		SET status = $1, released_at = $2, released_by = $3
		WHERE id = $4 AND status = $5`,
		models.DisbursementReleased, time.Now(), releasedBy, id, models.DisbursementScheduled)
	if err != nil {
		return fmt.Errorf("error releasing disbursement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDisbursementNotFound
	}

	return nil
}

// CreateLedgerEntry posts a charge or payment row
func (r *FinancialRepository) CreateLedgerEntry(ctx context.Context, e *models.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (student_id, kind, description, amount, method, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		e.StudentID, e.Kind, e.Description, e.Amount, e.Method, e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating ledger entry: %w", err)
	}

	return nil
}

// GetLedgerEntryByID retrieves a ledger entry by ID
func (r *FinancialRepository) GetLedgerEntryByID(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	query := `
		SELECT id, student_id, kind, description, amount, method, voided,
			void_reason, voided_by, voided_at, created_by, created_at
		FROM ledger_entries
		WHERE id = $1
	`

	var e models.LedgerEntry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.StudentID, &e.Kind, &e.Description, &e.Amount, &e.Method,
		&e.Voided, &e.VoidReason, &e.VoidedBy, &e.VoidedAt, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("error retrieving ledger entry: %w", err)
	}

	return &e, nil
}

// GetLedgerByStudentID retrieves all ledger rows for a student, voided
// included, oldest first to read as a statement
func (r *FinancialRepository) GetLedgerByStudentID(ctx context.Context, studentID int64) ([]*models.LedgerEntry, error) {
	query := `
		SELECT id, student_id, kind, description, amount, method, voided,
			void_reason, voided_by, voided_at, created_by, created_at
		FROM ledger_entries
		WHERE student_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.LedgerEntry
	for rows.Next() {
		var e models.LedgerEntry
		err := rows.Scan(
			&e.ID, &e.StudentID, &e.Kind, &e.Description, &e.Amount, &e.Method,
			&e.Voided, &e.VoidReason, &e.VoidedBy, &e.VoidedAt, &e.CreatedBy, &e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// VoidLedgerEntry soft-voids an entry. Already-voided rows are left alone
// so the void audit fields are written exactly once.
func (r *FinancialRepository) VoidLedgerEntry(ctx context.Context, id int64, reason string, voidedBy int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE ledger_entries
		SET voided = TRUE, void_reason = $1, voided_by = $2, voided_at = $3
		WHERE id = $4 AND voided = FALSE`,
		reason, voidedBy, time.Now(), id)
	if err != nil {
		return fmt.Errorf("error voiding ledger entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrLedgerEntryNotFound
	}

	return nil
}

// GetBalance recomputes the student account balance from source rows:
// charges minus payments minus released aid, voided rows excluded.
func (r *FinancialRepository) GetBalance(ctx context.Context, studentID int64) (*models.AccountBalance, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM ledger_entries
				WHERE student_id = $1 AND kind = 'CHARGE' AND voided = FALSE), 0),
			COALESCE((SELECT SUM(amount) FROM ledger_entries
				WHERE student_id = $1 AND kind = 'PAYMENT' AND voided = FALSE), 0),
			COALESCE((SELECT SUM(amount) FROM disbursements
				WHERE student_id = $1 AND status = 'RELEASED'), 0)
	`

	balance := &models.AccountBalance{StudentID: studentID}
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&balance.TotalCharges,
		&balance.TotalPayments,
		&balance.TotalAidPosted,
	)
	if err != nil {
		return nil, fmt.Errorf("error computing account balance: %w", err)
	}

	balance.CurrentBalance = balance.TotalCharges - balance.TotalPayments - balance.TotalAidPosted
	return balance, nil
}
