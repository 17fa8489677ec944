package domain

import "time"

type SupportRequestStatus string

const (
	SupportPending   SupportRequestStatus = "PENDING"
	SupportAssigned  SupportRequestStatus = "ASSIGNED"
	SupportScheduled SupportRequestStatus = "SCHEDULED"
	SupportResolved  SupportRequestStatus = "RESOLVED"
)

// SupportRequest is a team's ask for mentoring. Once a mentor call is booked
// through the calendar gateway the external event ID is kept for cancellation.
type SupportRequest struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Status          SupportRequestStatus `json:"status"`
	TeamID          uint                 `json:"team_id"`
	MentorID        *uint                `json:"mentor_id,omitempty"`
	CalendarEventID string               `json:"calendar_event_id,omitempty"`
	ScheduledAt     *time.Time           `json:"scheduled_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func (r *SupportRequest) IsPending() bool {
	return r.Status == SupportPending
}

func (r *SupportRequest) IsAssigned() bool {
	return r.Status == SupportAssigned || r.Status == SupportScheduled
}

func (r *SupportRequest) IsResolved() bool {
	return r.Status == SupportResolved
}
