package model

import "time"

// NotificationStatus controls whether a notification is surfaced to users.
type NotificationStatus string

const (
	NotificationStatusActive   NotificationStatus = "active"
	NotificationStatusInactive NotificationStatus = "inactive"
)

// Notification is an announcement shown alongside the query list.
// Read-only from this service's perspective.
type Notification struct {
	ID        int64              `json:"id"`
	Type      string             `json:"type"`
	Message   string             `json:"message"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"timestamp"`
}
