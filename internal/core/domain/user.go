package domain

import "time"

// User is an account together with its profile (role and display name).
type User struct {
	UserID       string    `json:"userID" db:"user_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     *string   `json:"fullName,omitempty" db:"full_name"`
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// Actor is the resolved identity performing an operation.
type Actor struct {
	UserID string
	Role   Role
}

// Can reports whether the actor's role grants capability.
func (a Actor) Can(capability Capability) bool {
	return RoleHasCapability(a.Role, capability)
}
