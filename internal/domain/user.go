package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
// The password is stored only as a bcrypt hash, never plaintext.
type User struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
// Email is an exact-match unique key; Create returns ErrDuplicateEmail
// when a record with the same email already exists.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
