package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/SscSPs/workorder_tracker/internal/utils"
	"github.com/google/uuid"
)

const entityUser = "user"

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService
func NewUserService(access portssvc.CapabilityResolver, userRepo portsrepo.UserRepositoryFacade, options ...ServiceOption) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(access, options),
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.User, error) {
	if _, err := s.require(ctx, actorUserID, domain.CapManageUsers); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.ListUsers(ctx, limit, offset)
}

func (s *userService) CreateUser(ctx context.Context, actorUserID string, req dto.CreateUserRequest) (*domain.User, error) {
	actor, err := s.require(ctx, actorUserID, domain.CapManageUsers)
	if err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown role %q", req.Role))
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperrors.NewValidationFailedError("email and password are required")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	s.Publish(ctx, domain.Event{
		Type:       domain.EventUserCreated,
		ActorID:    actor.UserID,
		EntityType: entityUser,
		EntityID:   user.UserID,
		After:      dto.ToUserResponse(&user),
	})
	return &user, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, actorUserID string, targetUserID string, role domain.Role) (*domain.User, error) {
	actor, err := s.require(ctx, actorUserID, domain.CapManageUsers)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("unknown role %q", role))
	}
	if actor.UserID == targetUserID && role != actor.Role {
		return nil, apperrors.NewConflictError("admins cannot change their own role")
	}

	user, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	before := dto.ToUserResponse(user)

	now := s.Now()
	if err := s.userRepo.UpdateUserRole(ctx, targetUserID, role, now); err != nil {
		s.LogError(ctx, err, "Failed to update user role", slog.String("user_id", targetUserID))
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = now

	s.Publish(ctx, domain.Event{
		Type:       domain.EventUserRoleChanged,
		ActorID:    actor.UserID,
		EntityType: entityUser,
		EntityID:   targetUserID,
		Before:     before,
		After:      dto.ToUserResponse(user),
	})
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, actorUserID string, targetUserID string) error {
	actor, err := s.require(ctx, actorUserID, domain.CapManageUsers)
	if err != nil {
		return err
	}
	if actor.UserID == targetUserID {
		return apperrors.NewConflictError("admins cannot delete themselves")
	}
	if err := s.userRepo.DeleteUser(ctx, targetUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", targetUserID))
		}
		return err
	}
	s.Publish(ctx, domain.Event{
		Type:       domain.EventUserDeleted,
		ActorID:    actor.UserID,
		EntityType: entityUser,
		EntityID:   targetUserID,
	})
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}
