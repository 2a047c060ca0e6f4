package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	"github.com/SscSPs/workorder_tracker/internal/core/services"
	"github.com/SscSPs/workorder_tracker/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccessService_ResolveActor(t *testing.T) {
	userRepo := new(MockUserRepository)
	givenActor(userRepo, "mm-1", domain.RoleMiddleManager)
	userRepo.On("FindUserByID", mock.Anything, "no-profile").Return(nil, apperrors.NewNotFoundError("user not found"))
	userRepo.On("FindUserByID", mock.Anything, "broken").Return(&domain.User{UserID: "broken", Role: "SUPERUSER"}, nil)
	userRepo.On("FindUserByID", mock.Anything, "db-down").Return(nil, errors.New("connection refused"))

	access := services.NewAccessService(userRepo)
	ctx := context.Background()

	actor, err := access.ResolveActor(ctx, "mm-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{UserID: "mm-1", Role: domain.RoleMiddleManager}, *actor)

	_, err = access.ResolveActor(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = access.ResolveActor(ctx, "no-profile")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = access.ResolveActor(ctx, "broken")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = access.ResolveActor(ctx, "db-down")
	assert.EqualError(t, err, "connection refused")
}

func TestAccessService_Require(t *testing.T) {
	userRepo := new(MockUserRepository)
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleMiddleManager, domain.RolePersonnel} {
		givenActor(userRepo, string(role), role)
	}
	access := services.NewAccessService(userRepo)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleMiddleManager, domain.RolePersonnel} {
		for _, capability := range domain.AllCapabilities {
			_, err := access.Require(context.Background(), string(role), capability)
			if domain.RoleHasCapability(role, capability) {
				assert.NoError(t, err, "%s/%s", role, capability)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden, "%s/%s", role, capability)
			}
		}
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "workorder-test"}
	tokens := services.NewTokenService(cfg)
	ctx := context.Background()

	token, expiresAt, err := tokens.GenerateAccessToken(ctx, &domain.User{UserID: "user-1"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := tokens.ParseAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)

	other := services.NewTokenService(&config.Config{JWTSecret: "other-secret", JWTExpiryDuration: time.Hour})
	_, err = other.ParseAccessToken(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
