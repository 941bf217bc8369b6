package auth

import "context"

// UserStore describes the persistence operations required by the auth
// subsystem. Implementations stay ignorant of hashing policy; Create receives
// a user whose PasswordHash was produced upstream.
type UserStore interface {
	// Create persists a new user, assigning ID and timestamps. A user with
	// the same email maps to ErrAlreadyExists.
	Create(ctx context.Context, u *User) error
	// Find returns the user by id, or ErrNotFound.
	Find(ctx context.Context, id string) (*User, error)
	// FindByEmail returns the user by exact email match, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
