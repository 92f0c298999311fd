package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user. The zodiac sign is derived from the
// birthdate once at signup and never recomputed afterwards.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Hidden from JSON responses
	Birthdate    time.Time  `json:"birthdate" db:"birthdate"`
	ZodiacSign   string     `json:"zodiac_sign" db:"zodiac_sign"`
	LastLogin    *time.Time `json:"last_login" db:"last_login"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
