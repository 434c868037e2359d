package model

import (
	"encoding/json"
	"time"
)

// NotificationType identifies what produced a notification.
type NotificationType string

const (
	NotificationPurchase            NotificationType = "purchase"
	NotificationSuggestionReceived  NotificationType = "suggestion_received"
	NotificationSuggestionApproved  NotificationType = "suggestion_approved"
	NotificationSuggestionRejected  NotificationType = "suggestion_rejected"
	NotificationLogin               NotificationType = "login"
	NotificationPointsEarned        NotificationType = "points_earned"
)

// Notification is an informational record in a user's log. It is created by
// many features as a side effect and mutated only to flip Read.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
	Data      json.RawMessage  `json:"data,omitempty"`
}
