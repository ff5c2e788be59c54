package services

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/logger"
)

const auditQueueSize = 256

// AuditService records audit trail entries asynchronously. Writes are
// best-effort: the primary operation never waits on them and never fails
// because of them. Dropped entries are counted and logged so the drop rate
// stays observable.
type AuditService struct {
	auditRepo *repositories.AuditLogRepository
	queue     chan *models.AuditLogEntry
	dropped   atomic.Int64
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewAuditService creates the audit service and starts its writer
func NewAuditService(auditRepo *repositories.AuditLogRepository) *AuditService {
	s := &AuditService{
		auditRepo: auditRepo,
		queue:     make(chan *models.AuditLogEntry, auditQueueSize),
	}
	s.wg.Add(1)
	go s.writeLoop()
	return s
}

func (s *AuditService) writeLoop() {
	defer s.wg.Done()
	for entry := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.auditRepo.Append(ctx, entry)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Str("action", entry.Action).Msg("Failed to write audit log entry")
		}
	}
}

// Record enqueues an audit entry without blocking. When the queue is full
// the entry is dropped and the drop counter advances.
func (s *AuditService) Record(action string, userID, studentID *int64, target string, metadata interface{}) {
	entry := &models.AuditLogEntry{
		UserID:    userID,
		Action:    action,
		StudentID: studentID,
		Target:    target,
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			logger.Warn().Err(err).Str("action", action).Msg("Failed to marshal audit metadata")
		} else {
			entry.Metadata = raw
		}
	}

	select {
	case s.queue <- entry:
	default:
		dropped := s.dropped.Add(1)
		logger.Warn().Str("action", action).Int64("droppedTotal", dropped).Msg("Audit queue full, entry dropped")
	}
}

// RecordForStudent is a convenience wrapper targeting one student
func (s *AuditService) RecordForStudent(action string, userID *int64, studentID int64, metadata interface{}) {
	s.Record(action, userID, &studentID, "student", metadata)
}

// DroppedCount reports how many entries were lost to a full queue
func (s *AuditService) DroppedCount() int64 {
	return s.dropped.Load()
}

// List retrieves audit entries, newest first
func (s *AuditService) List(ctx context.Context, action string, studentID *int64, offset, limit int) ([]*models.AuditLogEntry, int64, error) {
	return s.auditRepo.List(ctx, action, studentID, offset, limit)
}

// Close drains the queue and stops the writer. Called on shutdown.
func (s *AuditService) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}
