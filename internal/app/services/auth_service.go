package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/meridian/campusops/internal/app/models"
	"github.com/meridian/campusops/internal/app/models/dto"
	"github.com/meridian/campusops/internal/app/repositories"
	"github.com/meridian/campusops/internal/pkg/apperrors"
	"github.com/meridian/campusops/internal/pkg/auth"
	"github.com/meridian/campusops/internal/pkg/logger"
)

// AuthService handles staff authentication and account management
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a staff user and issues a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.IsActive {
		return nil, nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	return tokens, user, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The used
// token is revoked (single-use rotation).
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetTokenUserID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes all of the user's refresh tokens
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
}

// CreateUser registers a staff account with a hashed password
func (s *AuthService) CreateUser(ctx context.Context, user *models.User, plainPassword string) error {
	if !validRoleType(user.RoleType) {
		return fmt.Errorf("%w: unknown role type", apperrors.ErrValidationFailed)
	}

	exists, err := s.userRepo.EmailExists(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(plainPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed
	user.IsActive = true

	return s.userRepo.Create(ctx, user)
}

// GetProfile retrieves the authenticated user's account
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ListUsers retrieves all staff accounts
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// SetUserActive enables or disables a staff account. Disabling also revokes
// the account's refresh tokens.
func (s *AuthService) SetUserActive(ctx context.Context, userID int64, active bool) error {
	if err := s.userRepo.SetActive(ctx, userID, active); err != nil {
		return err
	}
	if !active {
		if err := s.tokenRepo.RevokeAllUserTokens(ctx, userID); err != nil {
			logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to revoke tokens for disabled user")
		}
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

func validRoleType(role models.RoleType) bool {
	switch role {
	case models.RoleAdmin, models.RoleRegistrar, models.RoleFinancialAid,
		models.RoleInstructor, models.RoleAuditor:
		return true
	}
	return false
}
