package service

import (
	"context"
	"fmt"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/notification"
)

type NotificationRepository interface {
	FindNotificationsByUserID(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uint) error
}

type NotificationUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// NotificationService exposes a user's stored notifications and a direct
// send path. Direct sends go through the channel dispatcher, so an unknown
// kind falls back to email the same way lifecycle notifications do.
type NotificationService struct {
	repo       NotificationRepository
	userRepo   NotificationUserRepository
	dispatcher *notification.Dispatcher
}

func NewNotificationService(
	repo NotificationRepository,
	userRepo NotificationUserRepository,
	dispatcher *notification.Dispatcher,
) *NotificationService {
	return &NotificationService{
		repo:       repo,
		userRepo:   userRepo,
		dispatcher: dispatcher,
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uint) ([]domain.Notification, error) {
	notifications, err := s.repo.FindNotificationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindNotificationsByUserID -> %w", err)
	}

	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uint) error {
	if err := s.repo.MarkNotificationRead(ctx, id, userID); err != nil {
		return fmt.Errorf("s.repo.MarkNotificationRead -> %w", err)
	}

	return nil
}

// Send delivers a message to one user over the requested channel.
func (s *NotificationService) Send(ctx context.Context, kind domain.NotificationKind, message string, recipientID uint) error {
	recipient, err := s.userRepo.FindByID(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	s.dispatcher.Send(ctx, kind, message, recipient)

	return nil
}
