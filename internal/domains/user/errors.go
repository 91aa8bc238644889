package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// Service-level errors
var (
	ErrInvalidCredentials = errors.New("username or password is wrong")
	ErrInvalidToken       = errors.New("invalid or revoked token")
)
