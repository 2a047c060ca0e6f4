package dto

import (
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
)

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MeResponse describes the caller and what they are allowed to do.
type MeResponse struct {
	UserID       string              `json:"userID"`
	Email        string              `json:"email"`
	FullName     *string             `json:"fullName,omitempty"`
	Role         domain.Role         `json:"role"`
	Capabilities []domain.Capability `json:"capabilities"`
}

// ToMeResponse builds a MeResponse from a profile.
func ToMeResponse(user *domain.User) MeResponse {
	return MeResponse{
		UserID:       user.UserID,
		Email:        user.Email,
		FullName:     user.FullName,
		Role:         user.Role,
		Capabilities: domain.CapabilitiesOf(user.Role),
	}
}
