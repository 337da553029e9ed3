package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	FirstName    string    `json:"first_name" db:"first_name"` // Given name
	LastName     string    `json:"last_name" db:"last_name"`   // Family name
	Email        string    `json:"email" db:"email"`           // Login email, not unique
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// FullName joins first and last name the way the feed displays authors.
func (u *UserDB) FullName() string {
	return u.FirstName + " " + u.LastName
}
