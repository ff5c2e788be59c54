package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	StudentRepository     *StudentRepository
	ApplicationRepository *ApplicationRepository
	DocumentRepository    *DocumentRepository
	SapRepository         *SapRepository
	FinancialRepository   *FinancialRepository
	AttendanceRepository  *AttendanceRepository
	AuditLogRepository    *AuditLogRepository
	SettingsRepository    *SettingsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		StudentRepository:     NewStudentRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		DocumentRepository:    NewDocumentRepository(db),
		SapRepository:         NewSapRepository(db),
		FinancialRepository:   NewFinancialRepository(db),
		AttendanceRepository:  NewAttendanceRepository(db),
		AuditLogRepository:    NewAuditLogRepository(db),
		SettingsRepository:    NewSettingsRepository(db),
	}
}
