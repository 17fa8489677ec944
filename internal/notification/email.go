package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/hackhub/hackhub-api/internal/domain"
)

// EmailStrategy simulates an email send. A real mail provider would slot in
// behind the same Strategy interface.
type EmailStrategy struct{}

func NewEmailStrategy() *EmailStrategy {
	return &EmailStrategy{}
}

func (s *EmailStrategy) Send(_ context.Context, message string, recipient domain.User) error {
	zap.L().Info("sending email notification",
		zap.String("to", recipient.Email),
		zap.String("message", message))

	return nil
}

func (s *EmailStrategy) Kind() domain.NotificationKind {
	return domain.NotificationEmail
}
