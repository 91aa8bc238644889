package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest - POST /api/user/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}

// LoginRequest - POST /api/user/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 100)),
	)
}

// UpdateUserRequest - PATCH /api/user/current, every field optional.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// UserResponse is the public user representation.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is returned by login.
type TokenResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// ToResponse converts a User entity to its public shape.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
	}
}
