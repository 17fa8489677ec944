package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockCalendar keeps events in memory and simulates network latency. The
// latency is injected so tests run with zero delay.
type MockCalendar struct {
	latency time.Duration

	mu     sync.Mutex
	events map[string]Event
}

func NewMockCalendar(latency time.Duration) *MockCalendar {
	return &MockCalendar{
		latency: latency,
		events:  make(map[string]Event),
	}
}

func (c *MockCalendar) ScheduleMeeting(ctx context.Context, title, description string, startTime, endTime time.Time, organizerEmail string, attendeeEmails []string) (Event, error) {
	if err := c.simulateNetworkDelay(ctx); err != nil {
		return Event{}, err
	}

	event := Event{
		ID:             fmt.Sprintf("event_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		Title:          title,
		Description:    description,
		StartTime:      startTime,
		EndTime:        endTime,
		OrganizerEmail: organizerEmail,
		Attendees:      append([]string{organizerEmail}, attendeeEmails...),
		Status:         EventScheduled,
		Provider:       "mock",
		CreatedAt:      time.Now(),
	}

	c.mu.Lock()
	c.events[event.ID] = event
	c.mu.Unlock()

	zap.L().Info("mock calendar event created", zap.String("event_id", event.ID))

	return event, nil
}

func (c *MockCalendar) CancelMeeting(ctx context.Context, eventID string) (bool, error) {
	if err := c.simulateNetworkDelay(ctx); err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	event, ok := c.events[eventID]
	if !ok {
		return false, nil
	}

	now := time.Now()
	event.Status = EventCancelled
	event.CancelledAt = &now
	c.events[eventID] = event

	zap.L().Info("mock calendar event cancelled", zap.String("event_id", eventID))

	return true, nil
}

func (c *MockCalendar) UpdateMeeting(ctx context.Context, eventID string, newStartTime, newEndTime time.Time) (Event, error) {
	if err := c.simulateNetworkDelay(ctx); err != nil {
		return Event{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	event, ok := c.events[eventID]
	if !ok {
		return Event{}, ErrEventNotFound
	}

	event.StartTime = newStartTime
	event.EndTime = newEndTime
	c.events[eventID] = event

	return event, nil
}

// IsAvailable reports whether the attendee has no scheduled event overlapping
// the window.
func (c *MockCalendar) IsAvailable(ctx context.Context, attendeeEmail string, startTime, endTime time.Time) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, event := range c.events {
		if event.Status != EventScheduled {
			continue
		}
		if !c.hasAttendee(event, attendeeEmail) {
			continue
		}
		if event.StartTime.Before(endTime) && startTime.Before(event.EndTime) {
			return false, nil
		}
	}

	return true, nil
}

func (c *MockCalendar) hasAttendee(event Event, email string) bool {
	for _, a := range event.Attendees {
		if a == email {
			return true
		}
	}
	return false
}

func (c *MockCalendar) simulateNetworkDelay(ctx context.Context) error {
	if c.latency <= 0 {
		return nil
	}

	select {
	case <-time.After(c.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
