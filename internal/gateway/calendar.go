package gateway

import (
	"context"
	"errors"
	"time"
)

var ErrEventNotFound = errors.New("calendar event not found")

type EventStatus string

const (
	EventScheduled EventStatus = "SCHEDULED"
	EventCancelled EventStatus = "CANCELLED"
)

// Event is a meeting booked with the external calendar provider.
type Event struct {
	ID             string      `json:"id"`
	ExternalID     string      `json:"external_id,omitempty"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	StartTime      time.Time   `json:"start_time"`
	EndTime        time.Time   `json:"end_time"`
	OrganizerEmail string      `json:"organizer_email"`
	Attendees      []string    `json:"attendees"`
	Status         EventStatus `json:"status"`
	Provider       string      `json:"provider"`
	CreatedAt      time.Time   `json:"created_at"`
	CancelledAt    *time.Time  `json:"cancelled_at,omitempty"`
}

// Calendar is the boundary to an external scheduling provider. Calls are
// blocking remote operations with no automatic retry; a failure is the
// caller's to handle.
type Calendar interface {
	ScheduleMeeting(ctx context.Context, title, description string, startTime, endTime time.Time, organizerEmail string, attendeeEmails []string) (Event, error)
	CancelMeeting(ctx context.Context, eventID string) (bool, error)
	UpdateMeeting(ctx context.Context, eventID string, newStartTime, newEndTime time.Time) (Event, error)
	IsAvailable(ctx context.Context, attendeeEmail string, startTime, endTime time.Time) (bool, error)
}
