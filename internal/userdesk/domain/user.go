package domain

import "time"

type User struct {
	ID                int64
	Username          string
	PasswordHash      string  // bcrypt encoded, never the plaintext
	IsAdmin           bool
	ProfilePictureURL *string // nil when unset
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewUser is the input for creating an account. Password is plaintext and is
// hashed by the service before it reaches the store.
type NewUser struct {
	Username          string
	Password          string
	IsAdmin           bool
	ProfilePictureURL *string
}

type BootstrapData struct {
	AdminUsername          string
	AdminPassword          string
	AdminProfilePictureURL string
}
