package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/middleware"
)

// accessService resolves actors from their profile and checks capabilities against the role policy.
type accessService struct {
	userRepo portsrepo.UserReader
}

// NewAccessService creates a new CapabilityResolver backed by the user profiles
func NewAccessService(userRepo portsrepo.UserReader) portssvc.CapabilityResolver {
	return &accessService{userRepo: userRepo}
}

var _ portssvc.CapabilityResolver = (*accessService)(nil)

func (s *accessService) ResolveActor(ctx context.Context, userID string) (*domain.Actor, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("no authenticated user")
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("user has no profile")
		}
		return nil, err
	}
	if !user.Role.IsValid() {
		// A corrupt role grants nothing.
		middleware.GetLoggerFromCtx(ctx).Warn("Profile carries unknown role", slog.String("user_id", userID), slog.String("role", string(user.Role)))
		return nil, apperrors.NewForbiddenError("unknown role")
	}
	return &domain.Actor{UserID: user.UserID, Role: user.Role}, nil
}

func (s *accessService) Require(ctx context.Context, userID string, capability domain.Capability) (*domain.Actor, error) {
	actor, err := s.ResolveActor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.Can(capability) {
		return nil, apperrors.NewForbiddenError(fmt.Sprintf("role %s may not %s", actor.Role, capability))
	}
	return actor, nil
}
