package model

import "time"

// User is a dashboard account as the upstream API returns it. Role values
// follow the auth domain's enumeration; the API is the authority on which
// roles exist for a given account.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=super_admin admin moderator"`
}

type UpdateUserRequest struct {
	Name string `json:"name,omitempty" validate:"omitempty,max=100"`
	Role string `json:"role,omitempty" validate:"omitempty,oneof=super_admin admin moderator"`
}
