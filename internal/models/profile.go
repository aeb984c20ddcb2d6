package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a registered user record in the database.
type ProfileDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                     // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username, 3+ chars, alnum and underscore
	PasswordHash string    `json:"-" db:"password_hash"`           // Hashed password
	Bio          *string   `json:"bio" db:"bio"`                   // Optional profile bio
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`     // Optional avatar URL
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}
