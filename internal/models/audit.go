package models

// AuditEvent represents an audit trail entry published to Kafka
type AuditEvent struct {
	EventID   string `json:"event_id"`  // Unique event identifier
	Timestamp int64  `json:"timestamp"` // Unix timestamp of the event
	UserID    string `json:"user_id"`   // User the event concerns
	Action    string `json:"action"`    // What happened, e.g. "user_registered"
}
