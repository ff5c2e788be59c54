package services

import (
	"context"
	"errors"
	"strings"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/email"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// FinancialService handles financial aid verification, awards,
// disbursements and the student account ledger
type FinancialService struct {
	financialRepo *repositories.FinancialRepository
	studentRepo   *repositories.StudentRepository
	emailService  email.Service
	auditService  *AuditService
}

// NewFinancialService creates a new financial service instance
func NewFinancialService(
	financialRepo *repositories.FinancialRepository,
	studentRepo *repositories.StudentRepository,
	emailService email.Service,
	auditService *AuditService,
) *FinancialService {
	return &FinancialService{
		financialRepo: financialRepo,
		studentRepo:   studentRepo,
		emailService:  emailService,
		auditService:  auditService,
	}
}

func (s *FinancialService) requireStudent(ctx context.Context, studentID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// UpsertVerification creates or refreshes a student's verification record
// for an academic year
func (s *FinancialService) UpsertVerification(ctx context.Context, rec *models.FinancialAidRecord) error {
	if _, err := s.requireStudent(ctx, rec.StudentID); err != nil {
		return err
	}
	return s.financialRepo.UpsertVerification(ctx, rec)
}

// GetLatestVerification retrieves the most recent verification record for
// a student, or nil when none exists
func (s *FinancialService) GetLatestVerification(ctx context.Context, studentID int64) (*models.FinancialAidRecord, error) {
	if _, err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.financialRepo.GetLatestVerification(ctx, studentID)
}

// CreateAward records a financial aid award for a student
func (s *FinancialService) CreateAward(ctx context.Context, award *models.FinancialAidAward) error {
	if award.Amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if _, err := s.requireStudent(ctx, award.StudentID); err != nil {
		return err
	}
	return s.financialRepo.CreateAward(ctx, award)
}

// ScheduleDisbursement schedules a release against an existing award
func (s *FinancialService) ScheduleDisbursement(ctx context.Context, d *models.Disbursement) error {
	if d.Amount <= 0 {
		return apperrors.ErrInvalidAmount
	}

	award, err := s.financialRepo.GetAwardByID(ctx, d.AwardID)
	if err != nil {
		if errors.Is(err, repositories.ErrAwardNotFound) {
			return apperrors.ErrAwardNotFound
		}
		return err
	}

	d.StudentID = award.StudentID
	return s.financialRepo.CreateDisbursement(ctx, d)
}

// ReleaseDisbursement releases one scheduled disbursement and notifies the
// student
func (s *FinancialService) ReleaseDisbursement(ctx context.Context, disbursementID, releasedBy int64) error {
	d, err := s.financialRepo.GetDisbursementByID(ctx, disbursementID)
	if err != nil {
		if errors.Is(err, repositories.ErrDisbursementNotFound) {
			return apperrors.ErrDisbursementNotFound
		}
		return err
	}

	if err := s.financialRepo.ReleaseDisbursement(ctx, d.ID, releasedBy); err != nil {
		if errors.Is(err, repositories.ErrDisbursementNotFound) {
			// Row exists but is not in the scheduled state
			return apperrors.NewConflictError("disbursement is not scheduled")
		}
		return err
	}

	s.notifyDisbursement(ctx, d)

	s.auditService.RecordForStudent(models.AuditActionDisbursement, &releasedBy, d.StudentID, map[string]interface{}{
		"disbursementId": d.ID,
		"amount":         d.Amount,
	})

	return nil
}

// BatchRelease releases a set of scheduled disbursements. Best-effort:
// each id succeeds or fails independently.
func (s *FinancialService) BatchRelease(ctx context.Context, disbursementIDs []int64, releasedBy int64) (*dto.BulkResultResponse, error) {
	result := runBulk("disbursement", disbursementIDs, func(id int64) error {
		return s.ReleaseDisbursement(ctx, id, releasedBy)
	})
	return result, nil
}

func (s *FinancialService) notifyDisbursement(ctx context.Context, d *models.Disbursement) {
	student, err := s.studentRepo.GetByID(ctx, d.StudentID)
	if err != nil {
		return
	}
	source := ""
	if award, aerr := s.financialRepo.GetAwardByID(ctx, d.AwardID); aerr == nil {
		source = award.Source
	}
	msg := email.DisbursementNotice(student.FirstName, d.Amount, source)
	if err := s.emailService.Send(student.Email, msg.Subject, msg.HTML); err != nil {
		logger.Warn().Err(err).Int64("disbursementID", d.ID).Msg("Failed to send disbursement notice")
	}
}

// PostCharge posts a charge to the student account ledger
func (s *FinancialService) PostCharge(ctx context.Context, entry *models.LedgerEntry) error {
	entry.Kind = models.LedgerCharge
	return s.postLedgerEntry(ctx, entry, false)
}

// PostPayment posts a payment to the student account ledger and sends the
// payment confirmation email
func (s *FinancialService) PostPayment(ctx context.Context, entry *models.LedgerEntry) error {
	entry.Kind = models.LedgerPayment
	return s.postLedgerEntry(ctx, entry, true)
}

func (s *FinancialService) postLedgerEntry(ctx context.Context, entry *models.LedgerEntry, confirm bool) error {
	if entry.Amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if strings.TrimSpace(entry.Description) == "" {
		return apperrors.NewBadRequestError("description is required")
	}

	student, err := s.requireStudent(ctx, entry.StudentID)
	if err != nil {
		return err
	}

	if err := s.financialRepo.CreateLedgerEntry(ctx, entry); err != nil {
		return err
	}

	if confirm {
		msg := email.PaymentConfirmation(student.FirstName, entry.Amount, entry.Method)
		if serr := s.emailService.Send(student.Email, msg.Subject, msg.HTML); serr != nil {
			logger.Warn().Err(serr).Int64("entryID", entry.ID).Msg("Failed to send payment confirmation")
		}
	}

	s.auditService.RecordForStudent(models.AuditActionLedgerPost, &entry.CreatedBy, entry.StudentID, map[string]interface{}{
		"entryId": entry.ID,
		"kind":    entry.Kind,
		"amount":  entry.Amount,
	})

	return nil
}

// VoidLedgerEntry soft-voids a ledger entry. The row stays for the audit
// trail and contributes zero to balance recomputation.
func (s *FinancialService) VoidLedgerEntry(ctx context.Context, entryID int64, reason string, voidedBy int64) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.NewBadRequestError("void reason is required")
	}

	entry, err := s.financialRepo.GetLedgerEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repositories.ErrLedgerEntryNotFound) {
			return apperrors.ErrLedgerEntryNotFound
		}
		return err
	}
	if entry.Voided {
		return apperrors.ErrLedgerEntryVoided
	}

	if err := s.financialRepo.VoidLedgerEntry(ctx, entryID, reason, voidedBy); err != nil {
		if errors.Is(err, repositories.ErrLedgerEntryNotFound) {
			return apperrors.ErrLedgerEntryVoided
		}
		return err
	}

	s.auditService.RecordForStudent(models.AuditActionLedgerVoid, &voidedBy, entry.StudentID, map[string]interface{}{
		"entryId": entry.ID,
		"reason":  reason,
	})

	return nil
}

// GetLedger retrieves the full statement for a student, voided rows included
func (s *FinancialService) GetLedger(ctx context.Context, studentID int64) ([]*models.LedgerEntry, error) {
	if _, err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.financialRepo.GetLedgerByStudentID(ctx, studentID)
}

// GetBalance recomputes the student account balance from source rows
func (s *FinancialService) GetBalance(ctx context.Context, studentID int64) (*models.AccountBalance, error) {
	if _, err := s.requireStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.financialRepo.GetBalance(ctx, studentID)
}
