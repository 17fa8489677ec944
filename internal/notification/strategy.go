package notification

import (
	"context"

	"go.uber.org/zap"

	"github.com/hackhub/hackhub-api/internal/domain"
)

// Strategy delivers a message to a user over one channel.
type Strategy interface {
	Send(ctx context.Context, message string, recipient domain.User) error
	Kind() domain.NotificationKind
}

// Dispatcher routes a notification to the strategy matching its kind.
// Sending is fire-and-forget: delivery failures are logged, never returned,
// and an unknown kind falls back to email.
type Dispatcher struct {
	strategies map[domain.NotificationKind]Strategy
	fallback   Strategy
}

func NewDispatcher(strategies ...Strategy) *Dispatcher {
	d := &Dispatcher{
		strategies: make(map[domain.NotificationKind]Strategy, len(strategies)),
	}
	for _, s := range strategies {
		d.strategies[s.Kind()] = s
		if s.Kind() == domain.NotificationEmail {
			d.fallback = s
		}
	}

	return d
}

func (d *Dispatcher) Send(ctx context.Context, kind domain.NotificationKind, message string, recipient domain.User) {
	strategy, ok := d.strategies[kind]
	if !ok {
		strategy = d.fallback
	}
	if strategy == nil {
		zap.L().Warn("no notification strategy registered",
			zap.String("kind", string(kind)),
			zap.Uint("user_id", recipient.ID))
		return
	}

	if err := strategy.Send(ctx, message, recipient); err != nil {
		zap.L().Error("failed to send notification",
			zap.String("kind", string(strategy.Kind())),
			zap.Uint("user_id", recipient.ID),
			zap.Error(err))
	}
}

func (d *Dispatcher) SendToAll(ctx context.Context, kind domain.NotificationKind, message string, recipients []*domain.User) {
	for _, r := range recipients {
		d.Send(ctx, kind, message, *r)
	}
}
