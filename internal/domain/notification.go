package domain

import "time"

// NotificationKind selects the delivery channel.
type NotificationKind string

const (
	NotificationEmail NotificationKind = "EMAIL"
	NotificationInApp NotificationKind = "IN_APP"
)

// Notification is a stored in-app notification for a user.
type Notification struct {
	ID        uint             `json:"id"`
	UserID    uint             `json:"user_id"`
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
	ReadAt    *time.Time       `json:"read_at,omitempty"`
}
