package services

import (
	"context"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// CapabilityResolver is the single place where an actor's role is resolved and
// checked against the role policy.
type CapabilityResolver interface {
	// ResolveActor loads the actor's profile. An empty user ID or a missing profile
	// yields apperrors.ErrUnauthorized.
	ResolveActor(ctx context.Context, userID string) (*domain.Actor, error)

	// Require resolves the actor and fails with apperrors.ErrForbidden when the role
	// lacks the capability.
	Require(ctx context.Context, userID string, capability domain.Capability) (*domain.Actor, error)
}
