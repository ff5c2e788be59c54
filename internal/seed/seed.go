package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/meridian/campusops/internal/app/models"
	appRepos "github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/dberrors"
)

// CreateDefaultData seeds the reference data a fresh installation needs:
// a campus, the standard required document types, and an admin account.
// Errors are collected rather than failing startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	settingsRepo := appRepos.NewSettingsRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Default campus ---
	mainCampus := &appModels.Campus{Name: "Main Campus", Code: "MAIN", IsActive: true}
	if err := settingsRepo.CreateCampus(ctx, mainCampus); err != nil {
		if !dberrors.IsUniqueViolation(err) {
			lgr.Error().Err(err).Msg("Error creating default campus")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Required document types ---
	docTypes := []*appModels.DocumentType{
		{Name: "Government ID", Description: "Valid government-issued photo identification", Required: true, IsActive: true},
		{Name: "High School Diploma", Description: "Diploma or equivalency certificate", Required: true, IsActive: true},
		{Name: "Enrollment Agreement", Description: "Signed enrollment agreement", Required: true, IsActive: true},
	}

	existing, err := settingsRepo.GetAllDocumentTypes(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing document types")
		finalErr = errors.Join(finalErr, err)
	} else if len(existing) == 0 {
		for _, dt := range docTypes {
			if err := settingsRepo.CreateDocumentType(ctx, dt); err != nil {
				lgr.Error().Err(err).Str("name", dt.Name).Msg("Error creating document type")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Default admin user ---
	const adminEmail = "admin@campusops.app"

	exists, err := userRepo.EmailExists(ctx, adminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing admin password")
			finalErr = errors.Join(finalErr, err)
		} else {
			admin := &appModels.User{
				Email:     adminEmail,
				Password:  string(hashedPassword),
				FirstName: "System",
				LastName:  "Administrator",
				RoleType:  appModels.RoleAdmin,
				IsActive:  true,
			}

			if err := userRepo.Create(ctx, admin); err != nil {
				lgr.Error().Err(err).Msg("Error creating admin user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
