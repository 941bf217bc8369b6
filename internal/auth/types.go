package auth

import "time"

// User represents a registered citizen or responder account. PasswordHash is
// the only credential material ever stored; the plaintext never leaves the
// signup/login path.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	Role         string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
