package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of transport/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
)

// Valid reports whether the role is one of the enumerated application roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleModerator:
		return true
	default:
		return false
	}
}

// User is the minimal profile held alongside a bearer token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session pairs the opaque bearer token issued by the upstream API with the
// decoded user profile. Invariant: User is populated iff Token is non-empty
// and decoded successfully; decode failure destroys the session.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DecodedToken holds the identity claims extracted from a bearer token.
// It is derived from the token on each read and never mutated directly.
type DecodedToken struct {
	UserID    string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's expiry claim is in the past.
// Tokens without an expiry claim never expire here; the upstream API
// remains the authority for rejecting them.
func (d DecodedToken) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}
