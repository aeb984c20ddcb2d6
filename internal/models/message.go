package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageDB represents an anonymous message sent through a link.
// A message past ExpiresAt is logically deleted: it never appears in
// active listings even though the row may still exist.
type MessageDB struct {
	ID          uuid.UUID `json:"id" db:"id"`                     // Primary key
	LinkID      uuid.UUID `json:"link_id" db:"link_id"`           // Receiving link
	MessageText string    `json:"message_text" db:"message_text"` // 1..1000 chars
	SenderIP    string    `json:"-" db:"sender_ip"`               // Sender identity, IP or pseudo id
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	ExpiresAt   time.Time `json:"expires_at" db:"expires_at"`     // CreatedAt + 24h
}
