package user

import "context"

// Service is the business logic contract for users.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Get(ctx context.Context, username string) (*UserResponse, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (*UserResponse, error)

	// Logout clears the stored session token and returns the username.
	Logout(ctx context.Context, username string) (string, error)

	// VerifyToken resolves a raw session token to (username, role).
	// A token that does not match the one stored on the user row is
	// treated as revoked.
	VerifyToken(ctx context.Context, token string) (string, string, error)
}
