package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/platform/config"
	"github.com/SscSPs/workorder_tracker/internal/utils"
)

// tokenService implements TokenSvcFacade
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new token service
func NewTokenService(cfg *config.Config, options ...ServiceOption) portssvc.TokenSvcFacade {
	return &tokenService{
		BaseService: newBaseService(nil, options),
		cfg:         cfg,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed JWT for the user
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	if user == nil || user.UserID == "" {
		return "", time.Time{}, apperrors.NewValidationFailedError("user is required")
	}
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate JWT", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("generate access token: %w", err)
	}
	return token, expiresAt, nil
}

// ParseAccessToken validates token and returns the user ID it was issued for
func (s *tokenService) ParseAccessToken(ctx context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		s.LogDebug(ctx, "Rejected access token", slog.String("error", err.Error()))
		return "", apperrors.NewUnauthorizedError("invalid token")
	}
	if claims.Subject == "" {
		return "", apperrors.NewUnauthorizedError("token has no subject")
	}
	return claims.Subject, nil
}
