package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCalendar_ScheduleMeeting(t *testing.T) {
	c := NewMockCalendar(0)
	start := time.Now().Add(time.Hour)
	end := start.Add(time.Hour)

	event, err := c.ScheduleMeeting(context.Background(), "Support Call", "details", start, end,
		"mentor@example.com", []string{"leader@example.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventScheduled, event.Status)
	assert.Equal(t, "mock", event.Provider)
	assert.Equal(t, []string{"mentor@example.com", "leader@example.com"}, event.Attendees)
}

func TestMockCalendar_CancelMeeting(t *testing.T) {
	t.Run("cancels a scheduled event", func(t *testing.T) {
		c := NewMockCalendar(0)
		event, err := c.ScheduleMeeting(context.Background(), "Call", "", time.Now(), time.Now().Add(time.Hour),
			"mentor@example.com", nil)
		require.NoError(t, err)

		cancelled, err := c.CancelMeeting(context.Background(), event.ID)

		require.NoError(t, err)
		assert.True(t, cancelled)
	})

	t.Run("unknown event", func(t *testing.T) {
		c := NewMockCalendar(0)

		cancelled, err := c.CancelMeeting(context.Background(), "event_missing")

		require.NoError(t, err)
		assert.False(t, cancelled)
	})
}

func TestMockCalendar_UpdateMeeting(t *testing.T) {
	c := NewMockCalendar(0)
	event, err := c.ScheduleMeeting(context.Background(), "Call", "", time.Now(), time.Now().Add(time.Hour),
		"mentor@example.com", nil)
	require.NoError(t, err)

	newStart := time.Now().Add(24 * time.Hour)
	newEnd := newStart.Add(time.Hour)
	updated, err := c.UpdateMeeting(context.Background(), event.ID, newStart, newEnd)

	require.NoError(t, err)
	assert.Equal(t, newStart, updated.StartTime)
	assert.Equal(t, newEnd, updated.EndTime)

	_, err = c.UpdateMeeting(context.Background(), "event_missing", newStart, newEnd)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestMockCalendar_IsAvailable(t *testing.T) {
	c := NewMockCalendar(0)
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	_, err := c.ScheduleMeeting(context.Background(), "Call", "", start, end,
		"mentor@example.com", []string{"leader@example.com"})
	require.NoError(t, err)

	t.Run("overlapping window", func(t *testing.T) {
		available, err := c.IsAvailable(context.Background(), "mentor@example.com", start.Add(30*time.Minute), end.Add(30*time.Minute))

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("disjoint window", func(t *testing.T) {
		available, err := c.IsAvailable(context.Background(), "mentor@example.com", end, end.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("other attendee", func(t *testing.T) {
		available, err := c.IsAvailable(context.Background(), "stranger@example.com", start, end)

		require.NoError(t, err)
		assert.True(t, available)
	})
}

func TestMockCalendar_ContextCancellation(t *testing.T) {
	c := NewMockCalendar(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ScheduleMeeting(ctx, "Call", "", time.Now(), time.Now().Add(time.Hour), "mentor@example.com", nil)

	assert.ErrorIs(t, err, context.Canceled)
}
