package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/email"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// DocumentService handles compliance document records and their review
// lifecycle
type DocumentService struct {
	documentRepo *repositories.DocumentRepository
	studentRepo  *repositories.StudentRepository
	settingsRepo *repositories.SettingsRepository
	emailService email.Service
	auditService *AuditService
}

// NewDocumentService creates a new document service instance
func NewDocumentService(
	documentRepo *repositories.DocumentRepository,
	studentRepo *repositories.StudentRepository,
	settingsRepo *repositories.SettingsRepository,
	emailService email.Service,
	auditService *AuditService,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		studentRepo:  studentRepo,
		settingsRepo: settingsRepo,
		emailService: emailService,
		auditService: auditService,
	}
}

// Upload records a freshly uploaded document. When the document type
// defines an expiry window and no explicit expiry was given, the expiry
// date is derived from the upload time.
func (s *DocumentService) Upload(ctx context.Context, doc *models.DocumentRecord) error {
	if _, err := s.studentRepo.GetByID(ctx, doc.StudentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}

	docType, err := s.settingsRepo.GetDocumentTypeByID(ctx, doc.DocumentTypeID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentTypeNotFound) {
			return apperrors.ErrDocumentTypeNotFound
		}
		return err
	}

	if doc.ExpiresAt == nil && docType.ExpiryDays != nil {
		expires := time.Now().AddDate(0, 0, *docType.ExpiryDays)
		doc.ExpiresAt = &expires
	}

	return s.documentRepo.Create(ctx, doc)
}

// GetStudentDocuments retrieves a student's document records with the
// type definitions inlined
func (s *DocumentService) GetStudentDocuments(ctx context.Context, studentID int64) ([]*models.DocumentRecord, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return s.documentRepo.GetByStudentID(ctx, studentID)
}

// Approve marks a document record approved
func (s *DocumentService) Approve(ctx context.Context, documentID, reviewedBy int64) error {
	doc, err := s.getDocument(ctx, documentID)
	if err != nil {
		return err
	}

	if err := s.documentRepo.UpdateStatus(ctx, doc.ID, models.DocumentApproved, nil, reviewedBy); err != nil {
		return err
	}

	s.auditService.RecordForStudent(models.AuditActionDocumentReview, &reviewedBy, doc.StudentID, map[string]interface{}{
		"documentId": doc.ID,
		"decision":   "approve",
	})

	return nil
}

// Reject marks a document record rejected. A reason is mandatory and is
// included in the rejection email to the student.
func (s *DocumentService) Reject(ctx context.Context, documentID, reviewedBy int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.ErrRejectionReasonRequired
	}

	doc, err := s.getDocument(ctx, documentID)
	if err != nil {
		return err
	}

	if err := s.documentRepo.UpdateStatus(ctx, doc.ID, models.DocumentRejected, &reason, reviewedBy); err != nil {
		return err
	}

	student, err := s.studentRepo.GetByID(ctx, doc.StudentID)
	if err == nil {
		typeName := ""
		if docType, terr := s.settingsRepo.GetDocumentTypeByID(ctx, doc.DocumentTypeID); terr == nil {
			typeName = docType.Name
		}
		msg := email.DocumentRejection(student.FirstName, typeName, reason)
		if serr := s.emailService.Send(student.Email, msg.Subject, msg.HTML); serr != nil {
			logger.Warn().Err(serr).Int64("documentID", doc.ID).Msg("Failed to send document rejection email")
		}
	}

	s.auditService.RecordForStudent(models.AuditActionDocumentReview, &reviewedBy, doc.StudentID, map[string]interface{}{
		"documentId": doc.ID,
		"decision":   "reject",
	})

	return nil
}

// BulkUpdateStatus moves a set of document records to the given status.
// Best-effort: each id succeeds or fails independently and failures never
// roll back the ids that already succeeded.
func (s *DocumentService) BulkUpdateStatus(ctx context.Context, documentIDs []int64, status models.DocumentStatus, reviewedBy int64) (*dto.BulkResultResponse, error) {
	if !validBulkStatus(status) {
		return nil, apperrors.ErrInvalidDocumentStatus
	}

	result := runBulk("document", documentIDs, func(id int64) error {
		return s.documentRepo.UpdateStatus(ctx, id, status, nil, reviewedBy)
	})

	s.auditService.Record(models.AuditActionDocumentReview, &reviewedBy, nil, "bulk", map[string]interface{}{
		"status":    string(status),
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	})

	return result, nil
}

// RequestDocument emails a student asking them to submit a document type
func (s *DocumentService) RequestDocument(ctx context.Context, studentID, documentTypeID int64) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}

	docType, err := s.settingsRepo.GetDocumentTypeByID(ctx, documentTypeID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentTypeNotFound) {
			return apperrors.ErrDocumentTypeNotFound
		}
		return err
	}

	msg := email.DocumentRequest(student.FirstName, docType.Name)
	return s.emailService.Send(student.Email, msg.Subject, msg.HTML)
}

func (s *DocumentService) getDocument(ctx context.Context, documentID int64) (*models.DocumentRecord, error) {
	doc, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func validBulkStatus(status models.DocumentStatus) bool {
	switch status {
	case models.DocumentUploaded, models.DocumentUnderReview,
		models.DocumentApproved, models.DocumentRejected, models.DocumentExpired:
		return true
	}
	return false
}
