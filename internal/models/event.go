package models

// MessageAcceptedEvent is published to Kafka after a message has been
// durably stored, for downstream notification consumers.
type MessageAcceptedEvent struct {
	EventID   string `json:"event_id"`  // Unique event id, used as the Kafka key
	MessageID string `json:"message_id"`
	LinkID    string `json:"link_id"`
	OwnerID   string `json:"owner_id"`
	Timestamp int64  `json:"timestamp"` // Unix seconds of the accepted send
}

// DashboardStats aggregates the owner-facing counters shown on the
// dashboard landing page.
type DashboardStats struct {
	TotalLinks     int         `json:"total_links"`
	ActiveMessages int         `json:"active_messages"`
	Recent         []MessageDB `json:"recent"` // Newest active messages first
}
