package user

import "time"

// User is the domain entity, mapped 1:1 to the users table.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`

	// Never expose the hash in JSON
	Password string `db:"password" json:"-"`

	Name string `db:"name" json:"name"`
	Role Role   `db:"role" json:"role"`

	// Token is the active session token. Nil when logged out; logout
	// clears it, which revokes the issued token.
	Token *string `db:"token" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Role enum
type Role string

const (
	RoleUser  Role = "user"  // Regular member
	RoleAdmin Role = "admin" // Category management access
)

// IsValid reports whether the role is a known one.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// String implements Stringer interface
func (r Role) String() string {
	return string(r)
}
