package models

import "time"

// LoginAttemptDB represents the failed-login ledger record for a username.
// One row per username, created lazily on the first failure and deleted
// entirely on a successful login.
type LoginAttemptDB struct {
	Username     string     `json:"username" db:"username"`           // Primary key
	AttemptCount int        `json:"attempt_count" db:"attempt_count"` // Consecutive failed attempts since last reset
	LastAttempt  time.Time  `json:"last_attempt" db:"last_attempt"`   // Instant of the last failed attempt
	BlockedUntil *time.Time `json:"blocked_until" db:"blocked_until"` // Set iff attempt_count >= 3 at last failure
}
