package notification

import (
	"context"
	"fmt"

	"github.com/hackhub/hackhub-api/internal/domain"
)

// NotificationStore persists in-app notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, notification domain.Notification) (domain.Notification, error)
}

// Pusher delivers a notification to a user's live connection, if any.
type Pusher interface {
	Push(userID uint, notification domain.Notification)
}

// InAppStrategy stores the notification and pushes it to the recipient's
// websocket stream when they are connected.
type InAppStrategy struct {
	store  NotificationStore
	pusher Pusher
}

func NewInAppStrategy(store NotificationStore, pusher Pusher) *InAppStrategy {
	return &InAppStrategy{
		store:  store,
		pusher: pusher,
	}
}

func (s *InAppStrategy) Send(ctx context.Context, message string, recipient domain.User) error {
	created, err := s.store.CreateNotification(ctx, domain.Notification{
		UserID:  recipient.ID,
		Kind:    domain.NotificationInApp,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("s.store.CreateNotification -> %w", err)
	}

	if s.pusher != nil {
		s.pusher.Push(recipient.ID, created)
	}

	return nil
}

func (s *InAppStrategy) Kind() domain.NotificationKind {
	return domain.NotificationInApp
}
