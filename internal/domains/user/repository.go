package user

import "context"

// Repository is the data access contract for users.
type Repository interface {
	// Create inserts a new user and returns its id.
	// Returns ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, u *User) (int64, error)

	// FindByUsername returns ErrUserNotFound when no row matches.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// CountByUsername reports how many users carry the given username.
	CountByUsername(ctx context.Context, username string) (int, error)

	// Update persists name/password changes for the given username.
	Update(ctx context.Context, u *User) error

	// SetToken stores (or clears, when token is nil) the session token.
	SetToken(ctx context.Context, username string, token *string) error
}
