package services

import (
	"context"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.User, error)
}

// UserWriterSvc defines the admin provisioning operations
type UserWriterSvc interface {
	CreateUser(ctx context.Context, actorUserID string, req dto.CreateUserRequest) (*domain.User, error)
	UpdateUserRole(ctx context.Context, actorUserID string, targetUserID string, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, actorUserID string, targetUserID string) error
}

// UserAuthSvc verifies credentials
type UserAuthSvc interface {
	// AuthenticateUser checks an email/password pair. Any mismatch yields apperrors.ErrUnauthorized.
	AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

// TokenSvcFacade issues and verifies bearer tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ParseAccessToken validates a token and returns its subject (the user ID).
	ParseAccessToken(ctx context.Context, token string) (string, error)
}
