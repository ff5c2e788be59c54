package services

import (
	"errors"

	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/config"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/auth"
	"github.com/meridian/campusops/internal/pkg/email"
)

// Services holds all the service instances
type Services struct {
	AuthService        *AuthService
	ApplicationService *ApplicationService
	StudentService     *StudentService
	AttendanceService  *AttendanceService
	DocumentService    *DocumentService
	SapService         *SapService
	FinancialService   *FinancialService
	ReadinessService   *ReadinessService
	ExportService      *ExportService
	AuditService       *AuditService
	SettingsService    *SettingsService
}

// NewServices initializes all services with their dependencies
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.Service,
	cfg *config.Config,
) *Services {
	auditService := NewAuditService(repos.AuditLogRepository)

	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.TokenRepository,
			jwtService,
		),
		ApplicationService: NewApplicationService(
			repos.ApplicationRepository,
			repos.StudentRepository,
			repos.SettingsRepository,
			emailService,
			auditService,
		),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.SettingsRepository,
			emailService,
			cfg,
		),
		AttendanceService: NewAttendanceService(
			repos.AttendanceRepository,
			repos.StudentRepository,
			emailService,
			auditService,
		),
		DocumentService: NewDocumentService(
			repos.DocumentRepository,
			repos.StudentRepository,
			repos.SettingsRepository,
			emailService,
			auditService,
		),
		SapService: NewSapService(
			repos.SapRepository,
			repos.StudentRepository,
			emailService,
			auditService,
		),
		FinancialService: NewFinancialService(
			repos.FinancialRepository,
			repos.StudentRepository,
			emailService,
			auditService,
		),
		ReadinessService: NewReadinessService(
			repos.StudentRepository,
			repos.DocumentRepository,
			repos.SapRepository,
			repos.FinancialRepository,
			repos.SettingsRepository,
			cfg,
		),
		ExportService: NewExportService(
			repos.StudentRepository,
			repos.DocumentRepository,
			repos.SapRepository,
			repos.FinancialRepository,
			repos.AttendanceRepository,
			repos.AuditLogRepository,
			repos.SettingsRepository,
			auditService,
		),
		AuditService:    auditService,
		SettingsService: NewSettingsService(repos.SettingsRepository),
	}
}

// Close shuts down background workers owned by the services
func (s *Services) Close() {
	s.AuditService.Close()
}

// mapStudentNotFound translates the repository sentinel into the API error
// so student lookups surface as 404 rather than an infrastructure failure
func mapStudentNotFound(err error) error {
	if errors.Is(err, repositories.ErrStudentNotFound) {
		return apperrors.ErrStudentNotFound
	}
	return err
}
