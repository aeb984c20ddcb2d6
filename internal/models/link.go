package models

import (
	"time"

	"github.com/google/uuid"
)

// LinkDB represents a shareable message-receiving link.
type LinkDB struct {
	ID          uuid.UUID `json:"id" db:"id"`                     // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Owner profile id
	UniqueSlug  string    `json:"unique_slug" db:"unique_slug"`   // Globally unique path segment
	Title       *string   `json:"title" db:"title"`               // Optional display title
	CustomPhoto *string   `json:"custom_photo" db:"custom_photo"` // Optional photo URL
	IsActive    bool      `json:"is_active" db:"is_active"`       // Inactive links accept no messages
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}

// LinkPreview is the public view of a link resolved by slug,
// joined with owner profile fields shown on the message page.
type LinkPreview struct {
	LinkID        uuid.UUID `json:"link_id" db:"link_id"`
	OwnerID       uuid.UUID `json:"-" db:"owner_id"`
	UniqueSlug    string    `json:"unique_slug" db:"unique_slug"`
	Title         *string   `json:"title" db:"title"`
	CustomPhoto   *string   `json:"custom_photo" db:"custom_photo"`
	OwnerUsername string    `json:"owner_username" db:"owner_username"`
	OwnerBio      *string   `json:"owner_bio" db:"owner_bio"`
	OwnerAvatar   *string   `json:"owner_avatar" db:"owner_avatar"`
}
