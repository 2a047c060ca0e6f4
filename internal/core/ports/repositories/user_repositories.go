package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// UserReader defines read operations for user profiles
type UserReader interface {
	// FindUserByID retrieves a profile by its ID. Returns apperrors.ErrNotFound when missing.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a profile by login email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users ordered by creation time.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// ListUserIDsByRoles returns the IDs of every user holding one of the roles.
	ListUserIDsByRoles(ctx context.Context, roles []domain.Role) ([]string, error)
}

// UserWriter defines write operations for user profiles
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdateUserRole(ctx context.Context, userID string, role domain.Role, now time.Time) error
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
